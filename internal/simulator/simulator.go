package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// Seat pairs a player name with the strategy that plays it
type Seat struct {
	Name     string
	Strategy strategy.Strategy
}

// Config holds configuration for running simulations
type Config struct {
	Rounds         int
	Seed           int64
	Workers        int
	Seats          []Seat
	DealerName     string
	DealerHitBelow int
	Logger         *log.Logger
	Clock          quartz.Clock
}

// FromConfig builds a simulator configuration from a loaded HCL config.
func FromConfig(cfg *config.Config, logger *log.Logger) (Config, error) {
	seats := make([]Seat, len(cfg.Seats))
	for i, s := range cfg.Seats {
		strat, err := strategy.New(s.Strategy, s.StandOn)
		if err != nil {
			return Config{}, fmt.Errorf("seat %q: %w", s.Name, err)
		}
		seats[i] = Seat{Name: s.Name, Strategy: strat}
	}

	return Config{
		Rounds:         cfg.Simulation.Rounds,
		Seed:           cfg.Simulation.Seed,
		Workers:        cfg.Simulation.Workers,
		Seats:          seats,
		DealerName:     cfg.Dealer.Name,
		DealerHitBelow: cfg.Dealer.HitBelow,
		Logger:         logger,
	}, nil
}

// Result is the outcome of a simulation run
type Result struct {
	Stats   *statistics.Statistics
	Seed    int64
	Elapsed time.Duration
}

// RoundsPerSecond returns throughput, or zero if no time elapsed
func (r Result) RoundsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Stats.Rounds) / r.Elapsed.Seconds()
}

// Simulator plays many independent blackjack rounds
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.DealerName == "" {
		config.DealerName = game.DefaultDealerName
	}
	if config.DealerHitBelow == 0 {
		config.DealerHitBelow = game.DefaultDealerThreshold
	}
	config.Seed = randutil.Seed(config.Seed)
	return &Simulator{config: config}
}

// Run splits the rounds across workers, each driving its own Game, and
// merges their statistics. The same seed and worker count always produce the
// same result.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Rounds < 1 {
		return nil, fmt.Errorf("invalid rounds: %d", s.config.Rounds)
	}
	if len(s.config.Seats) == 0 {
		return nil, errors.New("no seats configured")
	}
	if s.config.DealerHitBelow < 1 || s.config.DealerHitBelow > game.MaxValue {
		return nil, fmt.Errorf("invalid dealer threshold: %d", s.config.DealerHitBelow)
	}

	start := s.config.Clock.Now("simulator", "start")
	workers := min(s.config.Workers, s.config.Rounds)
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	s.config.Logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"seats", len(s.config.Seats),
		"workers", workers,
		"seed", s.config.Seed)

	results := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		g.Go(func() error {
			stats, err := s.runWorker(ctx, w, rounds)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, r := range results {
		stats.Merge(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	result := &Result{
		Stats:   stats,
		Seed:    s.config.Seed,
		Elapsed: s.config.Clock.Since(start, "simulator", "end"),
	}
	s.config.Logger.Info("Simulation complete",
		"rounds", stats.Rounds,
		"elapsed", result.Elapsed,
		"dealer_bust_rate", fmt.Sprintf("%.3f", stats.DealerBustRate()))
	return result, nil
}

// runWorker plays rounds on a single Game owned by this goroutine.
func (s *Simulator) runWorker(ctx context.Context, worker, rounds int) (*statistics.Statistics, error) {
	stats := statistics.New()
	if rounds == 0 {
		return stats, nil
	}

	rng := randutil.Stream(s.config.Seed, worker)
	names := make([]string, len(s.config.Seats))
	for i, seat := range s.config.Seats {
		names[i] = seat.Name
	}

	logger := s.config.Logger.With("worker", worker)
	table, err := game.NewGame(names,
		game.WithDeck(deck.NewDeck(rng)),
		game.WithDealerName(s.config.DealerName),
		game.WithDealerPolicy(game.HitBelow(s.config.DealerHitBelow)),
		game.WithIDGenerator(gameid.NewGenerator(rng, s.config.Clock)),
		game.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if round > 0 {
			table.Reset()
		}

		outcomes := PlayRound(table, s.config.Seats)
		stats.AddRound(outcomes, table.Dealer().Busted)
	}

	logger.Debug("Worker finished", "rounds", rounds)
	return stats, nil
}

// PlayRound asks each seat's strategy for decisions until the round is over
// and returns the outcomes. Seats must be in table order.
func PlayRound(table *game.Game, seats []Seat) []game.Outcome {
	for table.State() == game.PlayerTurn {
		idx := table.CurrentPlayerIndex()
		table.Act(seats[idx].Strategy.Decide(table.Snapshot(), idx))
	}
	return table.DetermineWinners()
}
