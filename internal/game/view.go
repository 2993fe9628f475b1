package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// SeatView is a read-only copy of one seat. Value only counts face-up cards.
type SeatView struct {
	Name     string
	Cards    []deck.Card
	Value    int
	Soft     bool
	Standing bool
	Busted   bool
}

// View is a snapshot of the table for presentation layers and strategies.
// It shares no storage with the Game.
type View struct {
	ID      string
	Round   int
	State   State
	Current int // index into Players, -1 outside PlayerTurn
	Players []SeatView
	Dealer  SeatView
}

func newSeatView(p *Participant) SeatView {
	return SeatView{
		Name:     p.Name,
		Cards:    p.Hand.Cards(),
		Value:    p.Hand.Value(),
		Soft:     p.Hand.IsSoft(),
		Standing: p.Standing,
		Busted:   p.Busted,
	}
}

// Snapshot captures the current table state.
func (g *Game) Snapshot() View {
	v := View{
		ID:      g.id,
		Round:   g.round,
		State:   g.state,
		Current: -1,
		Players: make([]SeatView, len(g.players)),
		Dealer:  newSeatView(g.dealer),
	}
	if g.state == PlayerTurn {
		v.Current = g.current
	}
	for i, p := range g.players {
		v.Players[i] = newSeatView(p)
	}
	return v
}

// UpCard returns the dealer's first face-up card.
func (v View) UpCard() (deck.Card, bool) {
	for _, c := range v.Dealer.Cards {
		if c.FaceUp {
			return c, true
		}
	}
	return deck.Card{}, false
}

// String renders the table as plain text, one seat per line.
func (v View) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "round %d (%s) %s\n", v.Round, v.ID, v.State)
	writeSeat(&sb, v.Dealer, false)
	for i, p := range v.Players {
		writeSeat(&sb, p, i == v.Current)
	}
	return sb.String()
}

func writeSeat(sb *strings.Builder, s SeatView, active bool) {
	marker := " "
	if active {
		marker = ">"
	}
	status := ""
	switch {
	case s.Busted:
		status = " bust"
	case s.Standing:
		status = " stand"
	}
	fmt.Fprintf(sb, "%s %-10s %-20s %2d%s\n", marker, s.Name, NewHand(s.Cards...).String(), s.Value, status)
}
