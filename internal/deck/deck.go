package deck

import (
	"math/rand/v2"
)

// Size is the number of cards in a standard deck.
const Size = 52

// Deck is an ordered run of cards dealt from the front. An empty deck refills
// itself with a fresh, shuffled set of 52 cards, so Deal never fails.
type Deck struct {
	cards      []Card
	rng        *rand.Rand
	reshuffles int
}

// NewDeck creates a new shuffled 52-card deck. The RNG is required so that
// shuffling is reproducible under a fixed seed.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.Reset()
	return d
}

// NewStackedDeck creates a deck that deals the given cards in order without
// shuffling them. Once exhausted it refills like any other deck.
func NewStackedDeck(rng *rand.Rand, cards ...Card) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: rng}
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. An empty deck is refilled and
// shuffled first.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.Reset()
		d.reshuffles++
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	// Start from a fresh backing array so dealt cards never share storage
	// with the new deck.
	d.cards = make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.Shuffle()
}

// Remaining returns the number of cards left before the next refill
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reshuffles returns how many times Deal had to refill an empty deck.
func (d *Deck) Reshuffles() int {
	return d.reshuffles
}

// Peek returns the top card without removing it from the deck
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}
