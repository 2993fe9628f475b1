package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd runs a batch simulation described by an HCL file
type SimulateCmd struct {
	Config  string `kong:"default='blackjack.hcl',type='path',help='HCL simulation config (defaults apply if the file is missing)'"`
	Rounds  int    `kong:"help='Override the number of rounds'"`
	Seed    *int64 `kong:"help='Override the RNG seed (0 picks a random seed)'"`
	Workers int    `kong:"help='Override the worker count'"`
	Out     string `kong:"type='path',help='Also write a JSON summary to this file'"`
	Verbose bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Rounds != 0 {
		cfg.Simulation.Rounds = c.Rounds
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := shared.SetupLogger(shared.Level(c.Verbose, cfg.Level()))
	simCfg, err := simulator.FromConfig(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	result, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintln(os.Stdout, renderReport(result))

	if c.Out != "" {
		if err := fileutil.WriteJSON(c.Out, result.Summary(), 0o644); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		logger.Info("Wrote summary", "path", c.Out)
	}
	return nil
}
