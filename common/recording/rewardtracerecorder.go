package recording

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/rodoshi16/UTMIST-AI2/common/utils"
)

// RewardTraceRecorder appends one JSON line per tick to a trace file. Each
// line carries the run id, the tick's total and the per-term breakdown, which
// is what downstream reward-curve tooling consumes.
type RewardTraceRecorder struct {
	file   *os.File
	writer *bufio.Writer
}

type traceLine struct {
	RunID string `json:"run_id"`
	TickTrace
}

func MakeRewardTraceRecorder(filename string) Recorder {
	createFileIfNotExists(filename)

	file, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY, 0644)
	utils.Check(err, "Could not open trace file "+filename)

	return &RewardTraceRecorder{
		file:   file,
		writer: bufio.NewWriter(file),
	}
}

func (r *RewardTraceRecorder) RecordTick(runID string, trace TickTrace) error {
	line, err := json.Marshal(traceLine{
		RunID:     runID,
		TickTrace: trace,
	})
	if err != nil {
		return err
	}

	if _, err := r.writer.Write(line); err != nil {
		return err
	}
	return r.writer.WriteByte('\n')
}

func (r *RewardTraceRecorder) Close() {
	err := r.writer.Flush()
	utils.Check(err, "Could not flush trace file")

	err = r.file.Close()
	utils.Check(err, "Could not close trace file")

	utils.Debug("RewardTraceRecorder", "wrote reward trace "+r.file.Name())
}
