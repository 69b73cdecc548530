package rewards_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodoshi16/UTMIST-AI2/common/utils/vector"
	"github.com/rodoshi16/UTMIST-AI2/game/rewards"
)

func playerAt(prevX, prevY, x, y float64) map[string]rewards.Object {
	return map[string]rewards.Object{
		"player": {
			Position:     vector.MakeVector2(x, y),
			PrevPosition: vector.MakeVector2(prevX, prevY),
		},
	}
}

func TestTargetHeight(t *testing.T) {
	term := rewards.TargetHeight("player", 4)

	examples := []struct {
		Name     string
		Y        float64
		Expected float64
	}{
		{Name: "at target", Y: 4, Expected: 0},
		{Name: "one above", Y: 5, Expected: -1},
		{Name: "one below", Y: 3, Expected: -1},
		{Name: "three above", Y: 7, Expected: -9},
		{Name: "three below", Y: 1, Expected: -9},
	}

	for _, example := range examples {
		snap := rewards.MakeSnapshot(playerAt(0, 0, 0, example.Y), 0.016)
		value, err := term(snap)
		assert.NoError(t, err, example.Name)
		assert.Equal(t, example.Expected, value, example.Name)
	}
}

func TestHeadToMiddleTowardCenter(t *testing.T) {
	// Player moves from x=6 to x=5: one unit of progress toward the middle.
	term := rewards.HeadToMiddle("player")

	snap := rewards.MakeSnapshot(playerAt(6, 0, 5, 0), 0.016)
	value, err := term(snap)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, value, 1e-12)
}

func TestHeadToMiddleContinuousAtCenter(t *testing.T) {
	// Crossing x=0 must not flip the reward sign: the same leftward step
	// scores identically whether it starts right of, on, or across the
	// center line. A sign-multiplier formulation fails this.
	term := rewards.HeadToMiddle("player")

	step := 0.1
	for _, startX := range []float64{0.05, 0.0, -0.05} {
		snap := rewards.MakeSnapshot(playerAt(startX, 0, startX-step, 0), 0.016)
		value, err := term(snap)
		assert.NoError(t, err)

		expected := math.Abs(startX) - math.Abs(startX-step)
		assert.InDelta(t, expected, value, 1e-12)
	}

	// And the limit from both sides of an epsilon crossing agrees.
	for _, eps := range []float64{1e-3, 1e-6, 1e-9} {
		snap := rewards.MakeSnapshot(playerAt(-eps, 0, eps, 0), 0.016)
		value, err := term(snap)
		assert.NoError(t, err)
		assert.InDelta(t, 0.0, value, 1e-12)
	}
}

func TestHeadToOpponentClosingDistance(t *testing.T) {
	// Opponent at (10,0); player moves from (0,0) to (1,0): distance drops
	// from 10 to 9.
	term := rewards.HeadToOpponent("player", "opponent")

	objects := playerAt(0, 0, 1, 0)
	objects["opponent"] = rewards.Object{Position: vector.MakeVector2(10, 0)}

	snap := rewards.MakeSnapshot(objects, 0.016)
	value, err := term(snap)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, value, 1e-12)
}

func TestHeadToOpponentDirectionIndependent(t *testing.T) {
	term := rewards.HeadToOpponent("player", "opponent")

	// Three approaches reducing the distance to the opponent by the same
	// amount must earn the same reward.
	cases := []struct {
		Name       string
		Prev, Curr vector.Vector2
		Opponent   vector.Vector2
	}{
		{Name: "horizontal", Prev: vector.MakeVector2(0, 0), Curr: vector.MakeVector2(1, 0), Opponent: vector.MakeVector2(5, 0)},
		{Name: "vertical", Prev: vector.MakeVector2(0, 0), Curr: vector.MakeVector2(0, 1), Opponent: vector.MakeVector2(0, 5)},
		{Name: "diagonal", Prev: vector.MakeVector2(0, 0), Curr: vector.MakeVector2(1, 1).SetMag(1), Opponent: vector.MakeVector2(5, 5).SetMag(5)},
	}

	values := make([]float64, 0, len(cases))
	for _, c := range cases {
		snap := rewards.MakeSnapshot(map[string]rewards.Object{
			"player":   {Position: c.Curr, PrevPosition: c.Prev},
			"opponent": {Position: c.Opponent},
		}, 0.016)

		value, err := term(snap)
		assert.NoError(t, err, c.Name)
		values = append(values, value)
	}

	assert.InDelta(t, values[0], values[1], 1e-9)
	assert.InDelta(t, values[0], values[2], 1e-9)
}

func TestInState(t *testing.T) {
	term := rewards.InState("player", rewards.StateTaunting)

	taunting := map[string]rewards.Object{"player": {State: rewards.StateTaunting}}
	value, err := term(rewards.MakeSnapshot(taunting, 0.016))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, value)

	idle := map[string]rewards.Object{"player": {State: rewards.StateIdle}}
	value, err = term(rewards.MakeSnapshot(idle, 0.016))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, value)
}

func TestDangerZone(t *testing.T) {
	term := rewards.DangerZone("player", 12)

	above := rewards.MakeSnapshot(playerAt(0, 0, 0, 13), 0.016)
	value, err := term(above)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, value)

	below := rewards.MakeSnapshot(playerAt(0, 0, 0, 11), 0.016)
	value, err = term(below)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, value)
}

func TestDamageInteraction(t *testing.T) {
	term := rewards.DamageInteraction("player")

	snap := rewards.MakeSnapshot(map[string]rewards.Object{
		"player": {DamageDealt: 7, DamageTaken: 3},
	}, 0.016)

	value, err := term(snap)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, value)
}

func TestHoldingKeys(t *testing.T) {
	term := rewards.HoldingKeys("player", 3)

	spamming := rewards.MakeSnapshot(map[string]rewards.Object{"player": {KeysHeld: 4}}, 0.016)
	value, err := term(spamming)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, value)

	normal := rewards.MakeSnapshot(map[string]rewards.Object{"player": {KeysHeld: 3}}, 0.016)
	value, err = term(normal)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, value)
}

func TestTermsReportMissingObjects(t *testing.T) {
	empty := rewards.MakeSnapshot(map[string]rewards.Object{}, 0.016)

	terms := map[string]rewards.TermFunc{
		"target_height":      rewards.TargetHeight("player", 4),
		"head_to_middle":     rewards.HeadToMiddle("player"),
		"head_to_opponent":   rewards.HeadToOpponent("player", "opponent"),
		"taunt":              rewards.InState("player", rewards.StateTaunting),
		"danger_zone":        rewards.DangerZone("player", 12),
		"damage_interaction": rewards.DamageInteraction("player"),
		"holding_keys":       rewards.HoldingKeys("player", 3),
	}

	for name, term := range terms {
		_, err := term(empty)
		assert.ErrorIs(t, err, rewards.ErrMissingObject, name)
	}
}
