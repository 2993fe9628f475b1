// Package strategy provides scripted player decisions used to drive rounds
// without a human at the table.
package strategy

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Strategy decides what the active player does next.
type Strategy interface {
	Name() string
	Decide(view game.View, seat int) game.Action
}

// Names lists the strategies known to New.
var Names = []string{"threshold", "mimic", "basic"}

// DefaultStandOn is the threshold used when none is configured.
const DefaultStandOn = 17

// New creates a strategy by name. standOn only applies to "threshold"; zero
// selects DefaultStandOn.
func New(name string, standOn int) (Strategy, error) {
	switch name {
	case "threshold":
		if standOn == 0 {
			standOn = DefaultStandOn
		}
		if standOn < 1 || standOn > game.MaxValue {
			return nil, fmt.Errorf("stand_on %d out of range 1..%d", standOn, game.MaxValue)
		}
		return Threshold{StandOn: standOn}, nil
	case "mimic":
		return Threshold{StandOn: game.DefaultDealerThreshold, name: "mimic"}, nil
	case "basic":
		return Basic{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Threshold hits while the hand is below StandOn.
type Threshold struct {
	StandOn int
	name    string
}

func (t Threshold) Name() string {
	if t.name != "" {
		return t.name
	}
	return fmt.Sprintf("threshold(%d)", t.StandOn)
}

func (t Threshold) Decide(view game.View, seat int) game.Action {
	if view.Players[seat].Value < t.StandOn {
		return game.Hit
	}
	return game.Stand
}

// Basic is a reduced basic strategy using only hit and stand: it looks at the
// dealer's up-card and whether the hand is soft.
type Basic struct{}

func (Basic) Name() string { return "basic" }

func (Basic) Decide(view game.View, seat int) game.Action {
	p := view.Players[seat]
	up := 10
	if card, ok := view.UpCard(); ok {
		up = card.Value()
	}

	if p.Soft {
		if p.Value >= 19 || (p.Value == 18 && up <= 8) {
			return game.Stand
		}
		return game.Hit
	}

	switch {
	case p.Value >= 17:
		return game.Stand
	case p.Value >= 13 && dealerWeak(up):
		return game.Stand
	case p.Value == 12 && up >= 4 && up <= 6:
		return game.Stand
	default:
		return game.Hit
	}
}

func dealerWeak(up int) bool {
	return up >= int(deck.Two) && up <= int(deck.Six)
}
