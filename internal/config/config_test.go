package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
simulation {
  rounds    = 500
  seed      = 42
  workers   = 2
  log_level = "debug"
}

dealer {
  name      = "House"
  hit_below = 17
}

seat "Alice" {
  strategy = "threshold"
  stand_on = 15
}

seat "Bob" {
  strategy = "mimic"
}

seat "Carol" {}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 500, cfg.Simulation.Rounds)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 2, cfg.Simulation.Workers)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, "House", cfg.Dealer.Name)
	assert.Equal(t, 17, cfg.Dealer.HitBelow)

	require.Len(t, cfg.Seats, 3)
	assert.Equal(t, SeatConfig{Name: "Alice", Strategy: "threshold", StandOn: 15}, cfg.Seats[0])
	assert.Equal(t, "mimic", cfg.Seats[1].Strategy)
	assert.Equal(t, "basic", cfg.Seats[2].Strategy, "strategy defaults to basic")
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`seat "Alice" {}`), "minimal.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, defaultRounds, cfg.Simulation.Rounds)
	assert.GreaterOrEqual(t, cfg.Simulation.Workers, 1)
	assert.LessOrEqual(t, cfg.Simulation.Workers, maxWorkers)
	assert.Equal(t, log.InfoLevel, cfg.Level())
	assert.Equal(t, game.DefaultDealerName, cfg.Dealer.Name)
	assert.Equal(t, game.DefaultDealerThreshold, cfg.Dealer.HitBelow)
}

func TestParseRejectsBadHCL(t *testing.T) {
	_, err := Parse([]byte(`simulation {`), "broken.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte(`simulation { rounds = "many" }`), "typed.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no seats", `simulation { rounds = 10 }`},
		{"negative rounds", `
simulation { rounds = -1 }
seat "Alice" {}`},
		{"unknown strategy", `seat "Alice" { strategy = "card-counting" }`},
		{"stand_on out of range", `seat "Alice" {
  strategy = "threshold"
  stand_on = 30
}`},
		{"dealer threshold out of range", `
dealer { hit_below = 22 }
seat "Alice" {}`},
		{"seat named like dealer", `seat "Dealer" {}`},
		{"duplicate seat", `
seat "Alice" {}
seat "Alice" {}`},
		{"bad log level", `
simulation { log_level = "loud" }
seat "Alice" {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Simulation.Rounds)
}
