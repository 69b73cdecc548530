package brawl

import (
	"github.com/rodoshi16/UTMIST-AI2/common/recording"
	"github.com/rodoshi16/UTMIST-AI2/game/rewards"
)

// Episode is the outcome of one bout run through the reward engine.
type Episode struct {
	RunID  string
	Total  float64
	Ticks  int
	Winner string
}

// Run plays a bout to completion (or maxTicks), computing the reward once
// per tick. Per-tick ordering: step the simulation, drain pending signals,
// compute the reward against the fresh snapshot, record it, and only then
// commit the tick's previous-position bookkeeping.
func Run(bout *Bout, manager *rewards.Manager, bridge *rewards.SignalBridge, recorder recording.Recorder, runID string, maxTicks int) (Episode, error) {
	episode := Episode{RunID: runID}

	for !bout.Over() && bout.Ticknum() < maxTicks {
		snap := bout.Step()

		bridge.Drain(manager)

		total, breakdown, err := manager.Compute(snap)
		if err != nil {
			return episode, err
		}

		if err := recorder.RecordTick(runID, recording.TickTrace{
			Tick:      bout.Ticknum(),
			Dt:        snap.Dt(),
			Total:     total,
			Breakdown: breakdown,
		}); err != nil {
			return episode, err
		}

		episode.Total += total
		episode.Ticks++

		bout.CommitTick()
	}

	episode.Winner = bout.Winner()
	return episode, nil
}
