package sweep

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/cheggaaa/pb"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/rodoshi16/UTMIST-AI2/common/recording"
	"github.com/rodoshi16/UTMIST-AI2/common/utils"
	"github.com/rodoshi16/UTMIST-AI2/game/brawl"
	"github.com/rodoshi16/UTMIST-AI2/game/rewards"
)

// Search space over reward weights, matching the historical grid search:
// damage interaction and danger zone shaping strengths, plus the attack
// spam penalty.
var (
	damageInteractionSpace = []float64{0.5, 1.0}
	dangerZoneSpace        = []float64{-0.1, -0.5}
	penalizeAttackSpace    = []float64{-0.1, -0.04}
)

type Config struct {
	RunID             string
	DamageInteraction float64
	DangerZone        float64
	PenalizeAttack    float64
}

type Result struct {
	Config

	MeanReward float64
	MeanTicks  float64
	Wins       int
}

// ExpandGrid returns the cartesian product of the weight search space, one
// run id per configuration.
func ExpandGrid() []Config {
	configs := make([]Config, 0, len(damageInteractionSpace)*len(dangerZoneSpace)*len(penalizeAttackSpace))

	for _, dmg := range damageInteractionSpace {
		for _, dz := range dangerZoneSpace {
			for _, atk := range penalizeAttackSpace {
				configs = append(configs, Config{
					RunID:             uuid.NewV4().String(),
					DamageInteraction: dmg,
					DangerZone:        dz,
					PenalizeAttack:    atk,
				})
			}
		}
	}

	return configs
}

func (c Config) weights() brawl.Weights {
	weights := brawl.DefaultWeights()
	weights.DamageInteraction = c.DamageInteraction
	weights.DangerZone = c.DangerZone
	weights.PenalizeAttack = c.PenalizeAttack
	return weights
}

// Evaluate runs `bouts` episodes under one weight configuration and averages
// the episode rewards.
func Evaluate(config Config, dt float64, bouts int, maxTicks int, onBoutDone func()) (Result, error) {
	result := Result{Config: config}

	manager, err := brawl.BuildManager(config.weights())
	if err != nil {
		return result, err
	}

	bridge := rewards.ListenSignals(brawl.WinSignal)
	defer bridge.Stop()

	totalReward := 0.0
	totalTicks := 0

	for i := 0; i < bouts; i++ {
		episode, err := brawl.Run(brawl.NewBout(dt), manager, bridge, recording.MakeEmptyRecorder(), config.RunID, maxTicks)
		if err != nil {
			return result, err
		}

		totalReward += episode.Total
		totalTicks += episode.Ticks
		if episode.Winner == "player" {
			result.Wins++
		}

		if onBoutDone != nil {
			onBoutDone()
		}
	}

	result.MeanReward = totalReward / float64(bouts)
	result.MeanTicks = float64(totalTicks) / float64(bouts)
	return result, nil
}

func SweepAction(dt float64, bouts int, maxTicks int, outFile string, debug func(str string)) {
	if bouts <= 0 {
		utils.FailWith(bettererrors.
			New("Invalid sweep parameters").
			SetContext("bouts", strconv.Itoa(bouts)))
	}

	configs := ExpandGrid()
	debug(fmt.Sprintf("sweeping %d weight configurations, %d bouts each", len(configs), bouts))

	bar := pb.StartNew(len(configs) * bouts)

	results := make([]Result, 0, len(configs))
	for _, config := range configs {
		result, err := Evaluate(config, dt, bouts, maxTicks, func() { bar.Increment() })
		if err != nil {
			utils.FailWith(bettererrors.
				New("Sweep configuration failed").
				SetContext("run", config.RunID).
				With(bettererrors.NewFromErr(err)))
		}
		results = append(results, result)
	}

	bar.Finish()

	err := WriteResults(outFile, results)
	if err != nil {
		utils.FailWith(bettererrors.
			New("Could not write sweep results").
			SetContext("file", outFile).
			With(bettererrors.NewFromErr(err)))
	}

	best := BestResult(results)
	fmt.Println("")
	fmt.Println(chalk.Green.Color("🏆 Best configuration:"))
	fmt.Printf("  run %s\n", best.RunID)
	fmt.Printf("  damage_interaction=%.2f danger_zone=%.2f penalize_attack=%.2f\n", best.DamageInteraction, best.DangerZone, best.PenalizeAttack)
	fmt.Printf("  mean_reward=%.4f over %d wins\n", best.MeanReward, best.Wins)

	utils.Debug("sweep", "results written to "+outFile)
}

// BestResult picks the configuration with the highest mean episode reward.
func BestResult(results []Result) Result {
	best := results[0]
	for _, result := range results[1:] {
		if result.MeanReward > best.MeanReward {
			best = result
		}
	}
	return best
}

func WriteResults(filename string, results []Result) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"run_id", "damage_interaction", "danger_zone", "penalize_attack", "mean_reward", "mean_ticks", "wins"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range results {
		record := []string{
			result.RunID,
			strconv.FormatFloat(result.DamageInteraction, 'f', 4, 64),
			strconv.FormatFloat(result.DangerZone, 'f', 4, 64),
			strconv.FormatFloat(result.PenalizeAttack, 'f', 4, 64),
			strconv.FormatFloat(result.MeanReward, 'f', 4, 64),
			strconv.FormatFloat(result.MeanTicks, 'f', 1, 64),
			strconv.Itoa(result.Wins),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
