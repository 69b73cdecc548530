package rewards

import (
	"fmt"

	"github.com/rodoshi16/UTMIST-AI2/common/utils/vector"
)

// TermFunc is a pure shaping signal: snapshot in, scalar out. Terms report a
// missing referenced object by wrapping ErrMissingObject; the manager
// recovers that to a neutral contribution instead of aborting the tick.
type TermFunc func(snap Snapshot) (float64, error)

func requireObject(snap Snapshot, name string) (Object, error) {
	obj, ok := snap.Object(name)
	if !ok {
		return Object{}, fmt.Errorf("%w: %s", ErrMissingObject, name)
	}
	return obj, nil
}

// TargetHeight penalizes vertical distance from a target height with
// -(y - target)^2. Zero at the target, symmetric, smooth everywhere.
func TargetHeight(object string, target float64) TermFunc {
	return func(snap Snapshot) (float64, error) {
		obj, err := requireObject(snap, object)
		if err != nil {
			return 0, err
		}

		delta := obj.Position.GetY() - target
		return -(delta * delta), nil
	}
}

// HeadToMiddle rewards horizontal progress toward the arena center line,
// expressed as the potential gain toward x=0 of the x-axis projection
// (equivalently |prev_x| - |x|).
func HeadToMiddle(object string) TermFunc {
	return func(snap Snapshot) (float64, error) {
		obj, err := requireObject(snap, object)
		if err != nil {
			return 0, err
		}

		prev := vector.MakeVector2(obj.PrevPosition.GetX(), 0)
		curr := vector.MakeVector2(obj.Position.GetX(), 0)
		return PotentialGain(prev, curr, vector.MakeNullVector2()), nil
	}
}

// HeadToOpponent rewards closing the full 2D distance to the opponent. The
// value is the distance delta itself, so equal-magnitude closing steps score
// the same whether the motion was horizontal, vertical or diagonal.
func HeadToOpponent(object string, opponent string) TermFunc {
	return func(snap Snapshot) (float64, error) {
		obj, err := requireObject(snap, object)
		if err != nil {
			return 0, err
		}
		opp, err := requireObject(snap, opponent)
		if err != nil {
			return 0, err
		}

		return PotentialGain(obj.PrevPosition, obj.Position, opp.Position), nil
	}
}

// InState is a 1.0 indicator for a desired discrete state. Registered dense,
// it integrates to weight*dt per tick spent in the state; with a negative
// weight it doubles as a state penalty (e.g. discouraging attack spam).
func InState(object string, desired ObjectState) TermFunc {
	return func(snap Snapshot) (float64, error) {
		obj, err := requireObject(snap, object)
		if err != nil {
			return 0, err
		}

		if obj.State == desired {
			return 1, nil
		}
		return 0, nil
	}
}

// DangerZone is a 1.0 indicator for the fighter floating above the blast
// line ceiling.
func DangerZone(object string, ceiling float64) TermFunc {
	return func(snap Snapshot) (float64, error) {
		obj, err := requireObject(snap, object)
		if err != nil {
			return 0, err
		}

		if obj.Position.GetY() > ceiling {
			return 1, nil
		}
		return 0, nil
	}
}

// DamageInteraction is the net damage exchange of the current tick: damage
// dealt minus damage taken. The snapshot fields are per-tick deltas, so this
// registers as an event term.
func DamageInteraction(object string) TermFunc {
	return func(snap Snapshot) (float64, error) {
		obj, err := requireObject(snap, object)
		if err != nil {
			return 0, err
		}

		return obj.DamageDealt - obj.DamageTaken, nil
	}
}

// HoldingKeys is a 1.0 indicator for holding more than max inputs at once.
func HoldingKeys(object string, max int) TermFunc {
	return func(snap Snapshot) (float64, error) {
		obj, err := requireObject(snap, object)
		if err != nil {
			return 0, err
		}

		if obj.KeysHeld > max {
			return 1, nil
		}
		return 0, nil
	}
}

// OnWin is the win indicator used with signal registration: the term itself
// always evaluates to 1, and only contributes on ticks where its signal
// fired.
func OnWin() TermFunc {
	return func(snap Snapshot) (float64, error) {
		return 1, nil
	}
}
