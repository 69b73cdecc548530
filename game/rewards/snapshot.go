package rewards

import (
	"sort"

	"github.com/rodoshi16/UTMIST-AI2/common/utils/vector"
)

// ObjectState is the closed set of discrete fighter states. Terms branch on
// state values, never on concrete types; a new animation state is a new
// constant here, not a new type.
type ObjectState int

const (
	StateIdle ObjectState = iota
	StateWalking
	StateJumping
	StateAttacking
	StateStunned
	StateTaunting
	StateKO
)

func (s ObjectState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateAttacking:
		return "attacking"
	case StateStunned:
		return "stunned"
	case StateTaunting:
		return "taunting"
	case StateKO:
		return "ko"
	}
	return "unknown"
}

// Object is the per-tick view of one simulated fighter. DamageDealt and
// DamageTaken are deltas for the current tick, not running totals.
type Object struct {
	Position     vector.Vector2
	PrevPosition vector.Vector2
	State        ObjectState
	DamageDealt  float64
	DamageTaken  float64
	KeysHeld     int
}

// Snapshot is the immutable per-tick view of simulation state handed to the
// reward engine. The environment builds one snapshot per tick, after physics
// integration and before it advances its previous-position bookkeeping; every
// term evaluated that tick observes the same snapshot.
type Snapshot struct {
	objects map[string]Object
	dt      float64
}

// MakeSnapshot copies the object map; later mutations of the caller's map do
// not leak into the snapshot.
func MakeSnapshot(objects map[string]Object, dt float64) Snapshot {
	copied := make(map[string]Object, len(objects))
	for name, obj := range objects {
		copied[name] = obj
	}

	return Snapshot{
		objects: copied,
		dt:      dt,
	}
}

func (s Snapshot) Dt() float64 {
	return s.dt
}

func (s Snapshot) Object(name string) (Object, bool) {
	obj, ok := s.objects[name]
	return obj, ok
}

func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
