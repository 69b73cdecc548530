package trace

import (
	"fmt"
	"strconv"

	uuid "github.com/satori/go.uuid"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/rodoshi16/UTMIST-AI2/common/influxdb"
	"github.com/rodoshi16/UTMIST-AI2/common/recording"
	"github.com/rodoshi16/UTMIST-AI2/common/utils"
	"github.com/rodoshi16/UTMIST-AI2/game/brawl"
	"github.com/rodoshi16/UTMIST-AI2/game/rewards"
)

// reportingRecorder tees every tick trace to the wrapped recorder and to the
// metrics client, so reward curves can be watched live while the trace file
// is written.
type reportingRecorder struct {
	inner   recording.Recorder
	metrics *influxdb.Client
	ticks   *influxdb.Counter
}

func (r *reportingRecorder) RecordTick(runID string, trace recording.TickTrace) error {
	r.metrics.ReportTickTrace(trace)
	r.ticks.Add(1)
	return r.inner.RecordTick(runID, trace)
}

func (r *reportingRecorder) Close() {
	r.inner.Close()
}

func TraceAction(dt float64, maxTicks int, traceFile string, debug func(str string)) {
	if dt <= 0 {
		utils.FailWith(bettererrors.
			New("Invalid tick duration").
			SetContext("dt", strconv.FormatFloat(dt, 'f', -1, 64)))
	}

	manager, err := brawl.BuildManager(brawl.DefaultWeights())
	if err != nil {
		utils.FailWith(bettererrors.
			New("Could not build reward configuration").
			With(bettererrors.NewFromErr(err)))
	}

	bridge := rewards.ListenSignals(brawl.WinSignal)
	defer bridge.Stop()

	metrics, err := influxdb.NewClient("ai2-trace")
	if err != nil {
		utils.WarnWith(bettererrors.
			New("Metrics reporting disabled").
			With(bettererrors.NewFromErr(err)))
	}
	defer metrics.TearDown()

	ticks := influxdb.NewCounter()
	metrics.Loop(func() {
		metrics.WriteAppMetric("tickrate", map[string]interface{}{
			"ticks": ticks.GetAndReset(),
		})
	})

	recorder := &reportingRecorder{
		inner:   recording.MakeRewardTraceRecorder(traceFile),
		metrics: metrics,
		ticks:   ticks,
	}
	defer recorder.Close()

	runID := uuid.NewV4().String()
	debug("tracing run " + runID)

	episode, err := brawl.Run(brawl.NewBout(dt), manager, bridge, recorder, runID, maxTicks)
	if err != nil {
		utils.FailWith(bettererrors.
			New("Bout failed").
			SetContext("run", runID).
			With(bettererrors.NewFromErr(err)))
	}

	fmt.Printf("run %s: winner=%s ticks=%d episode_reward=%.4f\n", episode.RunID, episode.Winner, episode.Ticks, episode.Total)
}
