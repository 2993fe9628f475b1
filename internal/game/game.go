package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
)

// State is the phase of a round.
type State int

const (
	PlayerTurn State = iota
	DealerTurn
	GameOver
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Action is a decision available to the active player.
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

var (
	ErrNoPlayers     = errors.New("at least one player is required")
	ErrEmptyName     = errors.New("participant name must not be empty")
	ErrDuplicateName = errors.New("participant names must be unique")
)

// Game runs one blackjack round at a time for a fixed set of players against
// a policy-driven dealer. It performs no locking: callers must serialise all
// calls. Commands issued in the wrong phase are ignored.
type Game struct {
	id      string
	round   int
	deck    *deck.Deck
	players []*Participant
	dealer  *Participant
	policy  DealerPolicy
	current int
	state   State
	ids     *gameid.Generator
	logger  *log.Logger
}

// NewGame seats the named players, deals the opening hands and leaves the
// first player to act.
//
//	g, err := game.NewGame([]string{"Alice", "Bob"}, game.WithRNG(randutil.New(42)))
func NewGame(playerNames []string, opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		policy:     HitBelow16,
		dealerName: DefaultDealerName,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateNames(playerNames, cfg.dealerName); err != nil {
		return nil, fmt.Errorf("invalid table: %w", err)
	}

	if cfg.deck == nil {
		if cfg.rng == nil {
			cfg.rng = randutil.New(time.Now().UnixNano())
		}
		cfg.deck = deck.NewDeck(cfg.rng)
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	if cfg.ids == nil {
		cfg.ids = gameid.NewGenerator(nil, nil)
	}
	if cfg.policy == nil {
		cfg.policy = HitBelow16
	}

	players := make([]*Participant, len(playerNames))
	for i, name := range playerNames {
		players[i] = NewParticipant(name)
	}

	g := &Game{
		deck:    cfg.deck,
		players: players,
		dealer:  NewParticipant(cfg.dealerName),
		policy:  cfg.policy,
		ids:     cfg.ids,
		logger:  cfg.logger,
	}
	g.startRound()

	return g, nil
}

func validateNames(playerNames []string, dealerName string) error {
	if len(playerNames) == 0 {
		return ErrNoPlayers
	}
	if dealerName == "" {
		return fmt.Errorf("dealer: %w", ErrEmptyName)
	}

	seen := map[string]bool{dealerName: true}
	for i, name := range playerNames {
		if name == "" {
			return fmt.Errorf("seat %d: %w", i, ErrEmptyName)
		}
		if seen[name] {
			return fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		seen[name] = true
	}
	return nil
}

// startRound deals the opening hands. The dealer's second card is turned face
// down before it joins the hand.
func (g *Game) startRound() {
	g.round++
	g.id = g.ids.Generate()
	g.current = 0
	g.state = PlayerTurn

	for _, p := range g.players {
		p.Hit(g.deck.Deal())
		p.Hit(g.deck.Deal())
	}

	g.dealer.Hit(g.deck.Deal())
	hole := g.deck.Deal()
	hole.Flip()
	g.dealer.Hit(hole)

	g.logger.Debug("Round started",
		"id", g.id,
		"round", g.round,
		"players", len(g.players),
		"upcard", g.dealer.Hand.cards[0],
		"deck_remaining", g.deck.Remaining())
}

// PlayerHit deals a card to the active player. A bust or a total of exactly
// 21 ends that player's turn. Ignored outside PlayerTurn.
func (g *Game) PlayerHit() {
	if g.state != PlayerTurn {
		return
	}

	p := g.players[g.current]
	reshuffles := g.deck.Reshuffles()
	card := g.deck.Deal()
	p.Hit(card)
	if g.deck.Reshuffles() != reshuffles {
		g.logger.Debug("Deck exhausted, reshuffled", "id", g.id)
	}

	value := p.Hand.Value()
	g.logger.Debug("Player hit", "id", g.id, "player", p.Name, "card", card, "value", value, "busted", p.Busted)

	if p.Busted || value == MaxValue {
		g.advance()
	}
}

// PlayerStand ends the active player's turn. Ignored outside PlayerTurn.
func (g *Game) PlayerStand() {
	if g.state != PlayerTurn {
		return
	}

	p := g.players[g.current]
	p.Stand()
	g.logger.Debug("Player stood", "id", g.id, "player", p.Name, "value", p.Hand.Value())

	g.advance()
}

// Act applies a player decision; it is shorthand for PlayerHit or PlayerStand.
func (g *Game) Act(action Action) {
	switch action {
	case Hit:
		g.PlayerHit()
	case Stand:
		g.PlayerStand()
	}
}

// advance moves to the next player, or plays out the dealer once every player
// has finished.
func (g *Game) advance() {
	g.current++
	if g.current < len(g.players) {
		return
	}

	g.state = DealerTurn
	g.policy(g.dealer, g.deck)
	g.state = GameOver

	g.logger.Debug("Dealer finished",
		"id", g.id,
		"hand", g.dealer.Hand.String(),
		"value", g.dealer.Hand.Value(),
		"busted", g.dealer.Busted)
}

// Reset starts a new round with the same seats: the deck is refilled and
// reshuffled, every hand is cleared and the opening cards are dealt again.
// Valid in any state.
func (g *Game) Reset() {
	g.deck.Reset()
	for _, p := range g.players {
		p.Reset()
	}
	g.dealer.Reset()
	g.startRound()
}

// ID returns the identifier of the current round.
func (g *Game) ID() string {
	return g.id
}

// Round returns the 1-based number of the current round.
func (g *Game) Round() int {
	return g.round
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Players returns copies of the player seats in table order.
func (g *Game) Players() []Participant {
	players := make([]Participant, len(g.players))
	for i, p := range g.players {
		players[i] = p.Clone()
	}
	return players
}

// Dealer returns a copy of the dealer seat.
func (g *Game) Dealer() Participant {
	return g.dealer.Clone()
}

// CurrentPlayerIndex returns the index of the active player. It equals the
// number of players once the player phase is over.
func (g *Game) CurrentPlayerIndex() int {
	return g.current
}

// CurrentPlayer returns a copy of the active player, or false outside
// PlayerTurn.
func (g *Game) CurrentPlayer() (Participant, bool) {
	if g.state != PlayerTurn {
		return Participant{}, false
	}
	return g.players[g.current].Clone(), true
}

// DeckRemaining returns the number of cards left before the deck refills.
func (g *Game) DeckRemaining() int {
	return g.deck.Remaining()
}
