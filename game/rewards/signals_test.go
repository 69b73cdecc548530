package rewards_test

import (
	"testing"

	notify "github.com/bitly/go-notify"
	"github.com/stretchr/testify/assert"

	"github.com/rodoshi16/UTMIST-AI2/game/rewards"
)

func TestSignalBridgeForwardsNotifyEvents(t *testing.T) {
	manager := rewards.NewManager()
	assert.NoError(t, manager.RegisterSignal("on_win", "test_win_signal", rewards.OnWin(), 50))

	bridge := rewards.ListenSignals("test_win_signal")
	defer bridge.Stop()

	// Nothing posted yet.
	bridge.Drain(manager)
	total, _, err := manager.Compute(fightSnapshot(0.016))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)

	assert.NoError(t, notify.Post("test_win_signal", nil))

	bridge.Drain(manager)
	total, breakdown, err := manager.Compute(fightSnapshot(0.016))
	assert.NoError(t, err)
	assert.Equal(t, 50.0, total)
	assert.Equal(t, 50.0, breakdown["on_win"])
}
