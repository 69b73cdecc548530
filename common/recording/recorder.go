package recording

import (
	"os"

	"github.com/rodoshi16/UTMIST-AI2/common/utils"
)

// TickTrace is one tick's reward outcome, as written to trace files and
// shipped to observability sinks.
type TickTrace struct {
	Tick      int                `json:"tick"`
	Dt        float64            `json:"dt"`
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
}

type Recorder interface {
	RecordTick(runID string, trace TickTrace) error
	Close()
}

func createFileIfNotExists(path string) {
	var _, err = os.Stat(path)

	// create file if not exists
	if os.IsNotExist(err) {
		var file, err = os.Create(path)
		utils.Check(err, "Could not create file")

		defer file.Close()
	}
}
