package rewards

import (
	notify "github.com/bitly/go-notify"
)

// SignalBridge subscribes to go-notify events and forwards them into a
// Manager as pending signals. The environment posts events wherever they
// happen (notify.Post("win_signal", nil)); the training loop drains the
// bridge right before Compute, keeping signal delivery on the tick thread.
type SignalBridge struct {
	channels map[string]chan interface{}
}

func ListenSignals(keys ...string) *SignalBridge {
	bridge := &SignalBridge{
		channels: make(map[string]chan interface{}, len(keys)),
	}

	for _, key := range keys {
		ch := make(chan interface{}, 16)
		notify.Start(key, ch)
		bridge.channels[key] = ch
	}

	return bridge
}

// Drain marks every signal received since the previous drain as pending on
// the manager. Never blocks.
func (b *SignalBridge) Drain(m *Manager) {
	for key, ch := range b.channels {
		drained := false
		for !drained {
			select {
			case <-ch:
				m.PostSignal(key)
			default:
				drained = true
			}
		}
	}
}

func (b *SignalBridge) Stop() {
	for key, ch := range b.channels {
		notify.Stop(key, ch)
	}
}
