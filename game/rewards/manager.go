package rewards

import (
	"errors"
	"fmt"

	"github.com/rodoshi16/UTMIST-AI2/common/utils"
)

var (
	ErrTermExists          = errors.New("reward term already registered")
	ErrTermNotFound        = errors.New("reward term not found")
	ErrInvalidTickDuration = errors.New("tick duration must be strictly positive")
	ErrMissingObject       = errors.New("object missing from snapshot")
)

// Mode selects how a term's weighted value is integrated over time.
type Mode int

const (
	// ModeDense terms are continuous rates; their contribution is scaled by
	// the tick duration.
	ModeDense Mode = iota
	// ModeEvent terms are one-off values applied as-is.
	ModeEvent
)

type registration struct {
	name      string
	fn        TermFunc
	weight    float64
	mode      Mode
	signalKey string
}

// Manager owns the named reward terms and computes the aggregate training
// signal once per tick. Registration and weight changes are configuration
// calls made outside the per-tick hot path; the manager itself holds no
// locks, so callers must not race them against Compute.
type Manager struct {
	terms   []*registration
	index   map[string]*registration
	pending map[string]bool
}

func NewManager() *Manager {
	return &Manager{
		terms:   make([]*registration, 0),
		index:   make(map[string]*registration),
		pending: make(map[string]bool),
	}
}

func (m *Manager) register(reg *registration) error {
	if reg.name == "" {
		return errors.New("reward term name is required")
	}
	if reg.fn == nil {
		return errors.New("reward term function is required")
	}
	if _, exists := m.index[reg.name]; exists {
		return fmt.Errorf("%w: %s", ErrTermExists, reg.name)
	}

	m.terms = append(m.terms, reg)
	m.index[reg.name] = reg
	return nil
}

// Register adds a per-tick term under a unique name. A duplicate name is a
// configuration error and leaves the original registration intact; two
// same-named terms silently shadowing one another is exactly the failure
// mode this registry exists to reject.
func (m *Manager) Register(name string, fn TermFunc, weight float64, mode Mode) error {
	return m.register(&registration{
		name:   name,
		fn:     fn,
		weight: weight,
		mode:   mode,
	})
}

// RegisterSignal adds an event term that only evaluates on ticks where its
// signal was posted since the previous Compute. Signal terms share the term
// namespace.
func (m *Manager) RegisterSignal(name string, signalKey string, fn TermFunc, weight float64) error {
	if signalKey == "" {
		return errors.New("signal key is required")
	}
	return m.register(&registration{
		name:      name,
		fn:        fn,
		weight:    weight,
		mode:      ModeEvent,
		signalKey: signalKey,
	})
}

// SetWeight updates a registered term's weight in place. Setting 0 ablates
// the term without removing its identity; the term still evaluates and still
// appears in the breakdown.
func (m *Manager) SetWeight(name string, weight float64) error {
	reg, ok := m.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTermNotFound, name)
	}
	reg.weight = weight
	return nil
}

// Names returns the registered term names in registration order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.terms))
	for _, reg := range m.terms {
		names = append(names, reg.name)
	}
	return names
}

// PostSignal marks a signal as fired; the next Compute consumes it.
func (m *Manager) PostSignal(key string) {
	m.pending[key] = true
}

// Compute evaluates every registered term against the snapshot, scales each
// value by weight (and by dt for dense terms), and returns the total with a
// per-term breakdown. A term referencing an object absent from the snapshot
// contributes 0.0 and logs a warning; nothing a term does can abort the
// tick. All pending signals are consumed, whether or not a term was keyed to
// them.
func (m *Manager) Compute(snap Snapshot) (float64, map[string]float64, error) {
	if snap.Dt() <= 0 {
		return 0, nil, fmt.Errorf("%w: dt=%f", ErrInvalidTickDuration, snap.Dt())
	}

	total := 0.0
	breakdown := make(map[string]float64, len(m.terms))

	for _, reg := range m.terms {
		if reg.signalKey != "" && !m.pending[reg.signalKey] {
			breakdown[reg.name] = 0
			continue
		}

		value, err := reg.fn(snap)
		if err != nil {
			if errors.Is(err, ErrMissingObject) {
				utils.Warn("rewards", fmt.Sprintf("term %s: %s", reg.name, err.Error()))
			} else {
				utils.Warn("rewards", fmt.Sprintf("term %s failed: %s", reg.name, err.Error()))
			}
			breakdown[reg.name] = 0
			continue
		}

		scale := reg.weight
		if reg.mode == ModeDense {
			scale *= snap.Dt()
		}

		contribution := value * scale
		breakdown[reg.name] = contribution
		total += contribution
	}

	for key := range m.pending {
		delete(m.pending, key)
	}

	return total, breakdown, nil
}
