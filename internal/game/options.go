package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/gameid"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

// gameConfig holds all optional configuration for creating a game.
type gameConfig struct {
	rng        *rand.Rand
	deck       *deck.Deck // If provided, overrides rng for deck creation
	policy     DealerPolicy
	dealerName string
	logger     *log.Logger
	ids        *gameid.Generator
}

// WithRNG sets the random source used to shuffle the deck. Without it a
// time-seeded source is used.
func WithRNG(rng *rand.Rand) Option {
	return func(c *gameConfig) {
		c.rng = rng
	}
}

// WithDeck sets a specific deck, e.g. a stacked deck for scripted rounds.
// This overrides WithRNG for deck creation.
func WithDeck(d *deck.Deck) Option {
	return func(c *gameConfig) {
		c.deck = d
	}
}

// WithDealerPolicy replaces the dealer's house rule (default HitBelow16).
func WithDealerPolicy(policy DealerPolicy) Option {
	return func(c *gameConfig) {
		c.policy = policy
	}
}

// WithDealerName renames the dealer seat.
func WithDealerName(name string) Option {
	return func(c *gameConfig) {
		c.dealerName = name
	}
}

// WithLogger sets the logger used for debug tracing of the round.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithIDGenerator sets the generator for round IDs.
func WithIDGenerator(ids *gameid.Generator) Option {
	return func(c *gameConfig) {
		c.ids = ids
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}
