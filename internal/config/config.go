// Package config loads HCL descriptions of simulation runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/strategy"
)

// Config represents a complete simulation configuration
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Dealer     *DealerSettings     `hcl:"dealer,block"`
	Seats      []SeatConfig        `hcl:"seat,block"`
}

// SimulationSettings controls the size and reproducibility of a run
type SimulationSettings struct {
	Rounds   int    `hcl:"rounds,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// DealerSettings configures the dealer seat
type DealerSettings struct {
	Name     string `hcl:"name,optional"`
	HitBelow int    `hcl:"hit_below,optional"`
}

// SeatConfig defines one player seat and the strategy that plays it
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	StandOn  int    `hcl:"stand_on,optional"`
}

const (
	defaultRounds   = 10000
	defaultLogLevel = "info"
	maxWorkers      = 8
)

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{
		Seats: []SeatConfig{
			{Name: "Alice", Strategy: "basic"},
			{Name: "Bob", Strategy: "threshold", StandOn: strategy.DefaultStandOn},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Rounds == 0 {
		c.Simulation.Rounds = defaultRounds
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = min(runtime.NumCPU(), maxWorkers)
	}
	if c.Simulation.LogLevel == "" {
		c.Simulation.LogLevel = defaultLogLevel
	}

	if c.Dealer == nil {
		c.Dealer = &DealerSettings{}
	}
	if c.Dealer.Name == "" {
		c.Dealer.Name = game.DefaultDealerName
	}
	if c.Dealer.HitBelow == 0 {
		c.Dealer.HitBelow = game.DefaultDealerThreshold
	}

	for i := range c.Seats {
		if c.Seats[i].Strategy == "" {
			c.Seats[i].Strategy = "basic"
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Rounds < 1 {
		return fmt.Errorf("invalid rounds: %d", c.Simulation.Rounds)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Simulation.Workers)
	}
	if _, err := log.ParseLevel(c.Simulation.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.Simulation.LogLevel, err)
	}
	if c.Dealer.HitBelow < 1 || c.Dealer.HitBelow > game.MaxValue {
		return fmt.Errorf("invalid dealer hit_below: %d", c.Dealer.HitBelow)
	}

	if len(c.Seats) == 0 {
		return errors.New("at least one seat is required")
	}
	seen := map[string]bool{c.Dealer.Name: true}
	for _, seat := range c.Seats {
		if seen[seat.Name] {
			return fmt.Errorf("duplicate seat name: %q", seat.Name)
		}
		seen[seat.Name] = true
		if _, err := strategy.New(seat.Strategy, seat.StandOn); err != nil {
			return fmt.Errorf("seat %q: %w", seat.Name, err)
		}
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Simulation.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
