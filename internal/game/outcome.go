package game

import "fmt"

// OutcomeKind classifies a player's result against the dealer.
type OutcomeKind int

const (
	OutcomeBust OutcomeKind = iota
	OutcomeDealerBust
	OutcomeWin
	OutcomeLose
	OutcomePush
)

// String returns the string representation of an outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeBust:
		return "bust"
	case OutcomeDealerBust:
		return "dealerBust"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomePush:
		return "push"
	default:
		return "unknown"
	}
}

// Outcome is one player's result for a finished round.
type Outcome struct {
	Player      string
	Kind        OutcomeKind
	PlayerValue int
	DealerValue int
}

// Net returns the even-money result in betting units: +1, -1 or 0.
func (o Outcome) Net() int {
	switch o.Kind {
	case OutcomeDealerBust, OutcomeWin:
		return 1
	case OutcomeBust, OutcomeLose:
		return -1
	default:
		return 0
	}
}

// String returns a one-line summary of the result
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeBust:
		return fmt.Sprintf("%s busted with %d, dealer wins", o.Player, o.PlayerValue)
	case OutcomeDealerBust:
		return fmt.Sprintf("dealer busted with %d, %s wins", o.DealerValue, o.Player)
	case OutcomeWin:
		return fmt.Sprintf("%s wins, %d vs %d", o.Player, o.PlayerValue, o.DealerValue)
	case OutcomeLose:
		return fmt.Sprintf("dealer wins against %s, %d vs %d", o.Player, o.DealerValue, o.PlayerValue)
	default:
		return fmt.Sprintf("%s pushes with dealer on %d", o.Player, o.PlayerValue)
	}
}

// Evaluate compares a player's final hand against the dealer's. Busts are
// decided before values: a busted player loses even if the dealer busts too.
func Evaluate(player, dealer Participant) Outcome {
	o := Outcome{
		Player:      player.Name,
		PlayerValue: player.Hand.Value(),
		DealerValue: dealer.Hand.Value(),
	}

	switch {
	case player.Busted:
		o.Kind = OutcomeBust
	case dealer.Busted:
		o.Kind = OutcomeDealerBust
	case o.PlayerValue > o.DealerValue:
		o.Kind = OutcomeWin
	case o.PlayerValue < o.DealerValue:
		o.Kind = OutcomeLose
	default:
		o.Kind = OutcomePush
	}
	return o
}

// DetermineWinners returns one outcome per player in seat order. It returns
// nil until the round is over.
func (g *Game) DetermineWinners() []Outcome {
	if g.state != GameOver {
		return nil
	}

	outcomes := make([]Outcome, len(g.players))
	for i, p := range g.players {
		outcomes[i] = Evaluate(*p, *g.dealer)
	}
	return outcomes
}
