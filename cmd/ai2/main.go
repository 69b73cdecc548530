package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/rodoshi16/UTMIST-AI2/ai2/action/sweep"
	"github.com/rodoshi16/UTMIST-AI2/ai2/action/trace"
)

func main() {
	app := makeapp()
	app.Run(os.Args)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "ai2"
	app.Description = "UTMIST AI² reward engine tooling"

	app.Commands = []cli.Command{
		{
			Name:    "sweep",
			Aliases: []string{"s"},
			Usage:   "Grid search over reward weights",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "dt", Value: 0.016, Usage: "Tick duration in seconds"},
				cli.IntFlag{Name: "bouts", Value: 3, Usage: "Bouts per weight configuration"},
				cli.IntFlag{Name: "max-ticks", Value: 20000, Usage: "Tick cap per bout"},
				cli.StringFlag{Name: "out", Value: "sweep_results.csv", Usage: "Destination CSV file"},
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			},
			Action: func(c *cli.Context) error {
				sweep.SweepAction(
					c.Float64("dt"),
					c.Int("bouts"),
					c.Int("max-ticks"),
					c.String("out"),
					makedebug(c.Bool("debug")),
				)
				return nil
			},
		},
		{
			Name:    "trace",
			Aliases: []string{"t"},
			Usage:   "Run one bout and record the per-tick reward breakdown",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "dt", Value: 0.016, Usage: "Tick duration in seconds"},
				cli.IntFlag{Name: "max-ticks", Value: 20000, Usage: "Tick cap for the bout"},
				cli.StringFlag{Name: "trace-file", Value: "reward_trace.jsonl", Usage: "Destination trace file"},
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			},
			Action: func(c *cli.Context) error {
				trace.TraceAction(
					c.Float64("dt"),
					c.Int("max-ticks"),
					c.String("trace-file"),
					makedebug(c.Bool("debug")),
				)
				return nil
			},
		},
	}

	return app
}

func makedebug(enabled bool) func(str string) {
	if !enabled {
		return func(str string) {}
	}

	return func(str string) {
		fmt.Printf("[debug] %s\n", str)
	}
}
