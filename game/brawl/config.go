package brawl

import (
	"github.com/rodoshi16/UTMIST-AI2/game/rewards"
)

// Weights is the tunable shaping configuration for a bout. Negative values
// are legitimate (penalty shaping); the sweep explores some of them.
type Weights struct {
	TargetHeight      float64
	HeadToMiddle      float64
	HeadToOpponent    float64
	Taunt             float64
	DangerZone        float64
	DamageInteraction float64
	PenalizeAttack    float64
	HoldingKeys       float64
	OnWin             float64
}

func DefaultWeights() Weights {
	return Weights{
		TargetHeight:      0.05,
		HeadToMiddle:      0.1,
		HeadToOpponent:    0.5,
		Taunt:             0.2,
		DangerZone:        -0.5,
		DamageInteraction: 1.0,
		PenalizeAttack:    -0.04,
		HoldingKeys:       -0.1,
		OnWin:             50,
	}
}

// BuildManager assembles the canonical reward configuration for a bout's
// object names and arena constants. Registration failures here are
// programming errors (a duplicate name in a fixed list), surfaced to the
// caller before any training starts.
func BuildManager(w Weights) (*rewards.Manager, error) {
	manager := rewards.NewManager()

	type termRegistration struct {
		name   string
		fn     rewards.TermFunc
		weight float64
		mode   rewards.Mode
	}

	registrations := []termRegistration{
		{"target_height", rewards.TargetHeight("player", FloorHeight), w.TargetHeight, rewards.ModeDense},
		{"head_to_middle", rewards.HeadToMiddle("player"), w.HeadToMiddle, rewards.ModeEvent},
		{"head_to_opponent", rewards.HeadToOpponent("player", "opponent"), w.HeadToOpponent, rewards.ModeEvent},
		{"taunt", rewards.InState("player", rewards.StateTaunting), w.Taunt, rewards.ModeDense},
		{"danger_zone", rewards.DangerZone("player", DangerCeiling), w.DangerZone, rewards.ModeDense},
		{"damage_interaction", rewards.DamageInteraction("player"), w.DamageInteraction, rewards.ModeEvent},
		{"penalize_attack", rewards.InState("player", rewards.StateAttacking), w.PenalizeAttack, rewards.ModeDense},
		{"holding_keys", rewards.HoldingKeys("player", 3), w.HoldingKeys, rewards.ModeDense},
	}

	for _, reg := range registrations {
		if err := manager.Register(reg.name, reg.fn, reg.weight, reg.mode); err != nil {
			return nil, err
		}
	}

	if err := manager.RegisterSignal("on_win", WinSignal, rewards.OnWin(), w.OnWin); err != nil {
		return nil, err
	}

	return manager, nil
}
