package sweep_test

import (
	"encoding/csv"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodoshi16/UTMIST-AI2/ai2/action/sweep"
)

func TestExpandGrid(t *testing.T) {
	configs := sweep.ExpandGrid()

	// 2 x 2 x 2 search space, unique run ids.
	assert.Len(t, configs, 8)

	seen := make(map[string]bool)
	for _, config := range configs {
		assert.False(t, seen[config.RunID])
		seen[config.RunID] = true
	}
}

func TestEvaluateConfig(t *testing.T) {
	configs := sweep.ExpandGrid()

	bouts := 0
	result, err := sweep.Evaluate(configs[0], 0.016, 2, 10000, func() { bouts++ })
	assert.NoError(t, err)

	assert.Equal(t, 2, bouts)
	assert.Equal(t, 2, result.Wins)
	assert.True(t, result.MeanTicks > 0)
}

func TestBestResult(t *testing.T) {
	results := []sweep.Result{
		{MeanReward: 1.5},
		{MeanReward: 8.25},
		{MeanReward: -2},
	}

	assert.Equal(t, 8.25, sweep.BestResult(results).MeanReward)
}

func TestWriteResults(t *testing.T) {
	filename := path.Join(t.TempDir(), "results.csv")

	results := []sweep.Result{
		{
			Config:     sweep.Config{RunID: "abc", DamageInteraction: 1, DangerZone: -0.5, PenalizeAttack: -0.04},
			MeanReward: 12.5,
			MeanTicks:  420,
			Wins:       3,
		},
	}

	assert.NoError(t, sweep.WriteResults(filename, results))

	file, err := os.Open(filename)
	assert.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "run_id", records[0][0])
	assert.Equal(t, "abc", records[1][0])
	assert.Equal(t, "12.5000", records[1][4])
}
