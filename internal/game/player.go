package game

import (
	"github.com/lox/blackjack/internal/deck"
)

// Participant is a seat at the table. Players and the dealer share this
// shape; only the dealer seat has a DealerPolicy attached by the Game.
type Participant struct {
	Name     string
	Hand     Hand
	Standing bool
	Busted   bool
}

// NewParticipant creates a seat with an empty hand.
func NewParticipant(name string) *Participant {
	return &Participant{Name: name}
}

// CanAct returns true if the participant may still take cards
func (p *Participant) CanAct() bool {
	return !p.Standing && !p.Busted
}

// Hit adds the card to the hand and marks the participant busted if the hand
// now exceeds 21. It is a no-op once standing or busted, and reports whether
// the card was taken.
func (p *Participant) Hit(card deck.Card) bool {
	if !p.CanAct() {
		return false
	}

	p.Hand.Add(card)
	if p.Hand.Value() > MaxValue {
		p.Busted = true
	}
	return true
}

// Stand ends the participant's turn.
func (p *Participant) Stand() {
	p.Standing = true
}

// Reset clears the hand and both flags for a new round.
func (p *Participant) Reset() {
	p.Hand = Hand{}
	p.Standing = false
	p.Busted = false
}

// Clone returns a deep copy whose hand shares no storage with p.
func (p *Participant) Clone() Participant {
	c := *p
	c.Hand = p.Hand.clone()
	return c
}
