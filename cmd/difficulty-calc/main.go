// Copyright (c) 2021 The Ion Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/ion-network/iond/corelog"
	"gitlab.com/ion-network/iond/node/chaindata"
	"gitlab.com/ion-network/iond/types/chaincfg"
	"gitlab.com/ion-network/iond/types/pow"
)

func main() {
	app := &App{}
	cliApp := &cli.App{
		Name:   "difficulty-calc",
		Usage:  "inspect and simulate the difficulty retargeting rules",
		Flags:  app.InitFlags(),
		Before: app.InitCfg,
		Commands: []*cli.Command{
			{
				Name:   "limits",
				Usage:  "print the difficulty ceilings of every network",
				Action: app.LimitsCmd,
			},
			{
				Name:   "simulate",
				Usage:  "replay the retargeting rules over a synthetic chain into a CSV file",
				Action: app.SimulateCmd,
				Flags:  app.SimulateFlags(),
			},
			{
				Name:   "stats",
				Usage:  "summarize a previously simulated CSV file",
				Action: app.StatsCmd,
			},
		},
	}

	err := cliApp.Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type App struct {
	config Config
	log    zerolog.Logger
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "./config.yaml",
			Usage:   "path to configuration",
		},
		&cli.StringFlag{
			Name:    "net",
			Aliases: []string{"n"},
			Value:   "",
			EnvVars: []string{"IOND_NET"},
			Usage:   "network name, will override value from config file",
		},
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	var err error
	app.config, err = parseConfig(c.String("config"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if net := c.String("net"); net != "" {
		app.config.Net = net
	}
	if app.config.NetParams() == nil {
		return cli.NewExitError(fmt.Errorf("unknown network %q", app.config.Net), 1)
	}

	level, err := zerolog.ParseLevel(app.config.LogLevel)
	if err != nil {
		level = corelog.DefaultLevel
	}
	app.log = corelog.New("difficulty-calc", level, app.config.Log)
	chaindata.UseLogger(app.log)

	return nil
}

// LimitsCmd prints the compact bits, the decoded target and the expected
// work per block at the ceiling for every network and ceiling kind.
func (app *App) LimitsCmd(*cli.Context) error {
	nets := []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNetParams,
		&chaincfg.DevNetParams,
		&chaincfg.RegTestParams,
	}

	for _, params := range nets {
		printLimit(params.Name, "pow", params.Consensus.PowLimitBits)
		printLimit(params.Name, "pos", params.Consensus.PosLimitBits)
		printLimit(params.Name, "hybrid-pow", params.Consensus.HybridPowLimitBits)
	}

	return nil
}

func printLimit(net, kind string, bits uint32) {
	fmt.Printf("%-8s %-11s bits=%08x target=%064x work=%s\n",
		net, kind, bits, pow.CompactToBig(bits), pow.CalcWork(bits))
}

func (app *App) SimulateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:    "blocks",
			Aliases: []string{"b"},
			Value:   0,
			Usage:   "number of blocks to simulate, will override value from config file",
		},
		&cli.StringFlag{
			Name:    "data-file",
			Aliases: []string{"f"},
			Value:   "",
			EnvVars: []string{"IOND_DATA_FILE"},
			Usage:   "path to CSV output, will override value from config file",
		},
	}
}

// SimulateCmd replays the retargeting rules over a synthetic chain built
// with the configured spacings and writes one CSV row per block.
func (app *App) SimulateCmd(c *cli.Context) error {
	cfg := app.config.Simulation
	if blocks := c.Int64("blocks"); blocks > 0 {
		cfg.Blocks = int32(blocks)
	}
	if dataFile := c.String("data-file"); dataFile != "" {
		cfg.DataFile = dataFile
	}

	params := app.config.NetParams()
	rows := NewSimulator(params, cfg).Run(cfg.Blocks)

	if err := NewCSVStorage(cfg.DataFile).SaveRows(rows); err != nil {
		return cli.NewExitError(err, 1)
	}

	app.log.Info().
		Str("net", params.Name).
		Int("blocks", len(rows)).
		Str("dataFile", cfg.DataFile).
		Msg("simulation finished")
	return nil
}

// StatsCmd reads a simulated CSV file back and prints the per-kind block
// counts along with the hardest and easiest targets seen.  Targets are
// fixed-width hex, so plain string comparison orders them numerically.
func (app *App) StatsCmd(*cli.Context) error {
	rows, err := NewCSVStorage(app.config.Simulation.DataFile).FetchData()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if len(rows) == 0 {
		return cli.NewExitError(fmt.Errorf("no rows in %s", app.config.Simulation.DataFile), 1)
	}

	counts := map[string]int{}
	hardest, easiest := rows[0], rows[0]
	for _, row := range rows {
		counts[row.Kind]++
		if row.Target < hardest.Target {
			hardest = row
		}
		if row.Target > easiest.Target {
			easiest = row
		}
	}

	fmt.Printf("blocks: %d\n", len(rows))
	for kind, count := range counts {
		fmt.Printf("%-4s blocks: %d\n", kind, count)
	}
	fmt.Printf("hardest: height=%d bits=%s target=%s\n", hardest.Height, hardest.Bits, hardest.Target)
	fmt.Printf("easiest: height=%d bits=%s target=%s\n", easiest.Height, easiest.Bits, easiest.Target)
	return nil
}
