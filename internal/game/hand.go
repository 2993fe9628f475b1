package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// MaxValue is the highest hand value that does not bust.
const MaxValue = 21

// Hand is an ordered run of cards in deal order.
type Hand struct {
	cards []deck.Card
}

// NewHand returns a hand holding copies of the given cards.
func NewHand(cards ...deck.Card) Hand {
	var h Hand
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in deal order.
func (h Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards held, face up or not.
func (h Hand) Len() int {
	return len(h.cards)
}

// Value returns the blackjack value of the face-up cards. Aces count 11 and
// drop to 1, one at a time, while the total is over 21. Face-down cards do not
// contribute at all.
func (h Hand) Value() int {
	value, _ := h.total()
	return value
}

// IsSoft reports whether an ace is still being counted as 11.
func (h Hand) IsSoft() bool {
	_, soft := h.total()
	return soft > 0
}

func (h Hand) total() (value, softAces int) {
	for _, card := range h.cards {
		if !card.FaceUp {
			continue
		}
		value += card.Value()
		if card.IsAce() {
			softAces++
		}
	}

	for value > MaxValue && softAces > 0 {
		value -= 10
		softAces--
	}
	return value, softAces
}

// RevealAll turns every face-down card face up.
func (h *Hand) RevealAll() {
	for i := range h.cards {
		if !h.cards[i].FaceUp {
			h.cards[i].Flip()
		}
	}
}

// HasHidden reports whether any card is face down.
func (h Hand) HasHidden() bool {
	for _, card := range h.cards {
		if !card.FaceUp {
			return true
		}
	}
	return false
}

func (h Hand) clone() Hand {
	return Hand{cards: h.Cards()}
}

// String renders the hand, showing face-down cards as "??".
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		if card.FaceUp {
			parts[i] = card.String()
		} else {
			parts[i] = "??"
		}
	}
	return strings.Join(parts, " ")
}
