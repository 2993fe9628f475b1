package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealerWith(up, hole string) *Participant {
	d := NewParticipant(DefaultDealerName)
	d.Hit(deck.MustParseCards(up)[0])
	d.Hit(faceDown(deck.MustParseCards(hole)[0]))
	return d
}

func TestHitBelow16RevealsAndDraws(t *testing.T) {
	t.Parallel()
	dealer := dealerWith("9d", "2c")
	require.Equal(t, 9, dealer.Hand.Value())

	d := deck.NewStackedDeck(randutil.New(1), deck.MustParseCards("6c")...)
	HitBelow16(dealer, d)

	assert.False(t, dealer.Hand.HasHidden())
	assert.Equal(t, 17, dealer.Hand.Value())
	assert.Equal(t, 3, dealer.Hand.Len())
	assert.True(t, dealer.Standing)
	assert.False(t, dealer.Busted)
}

func TestHitBelow16StandsOnSixteen(t *testing.T) {
	t.Parallel()
	dealer := dealerWith("Td", "6c")
	d := deck.NewStackedDeck(randutil.New(1), deck.MustParseCards("5h")...)

	HitBelow16(dealer, d)
	assert.Equal(t, 16, dealer.Hand.Value())
	assert.Equal(t, 2, dealer.Hand.Len())
	assert.Equal(t, 1, d.Remaining())
}

func TestHitBelow16CanBust(t *testing.T) {
	t.Parallel()
	dealer := dealerWith("5h", "Tc")
	d := deck.NewStackedDeck(randutil.New(1), deck.MustParseCards("Kd2s")...)

	HitBelow16(dealer, d)
	assert.True(t, dealer.Busted)
	assert.Equal(t, 25, dealer.Hand.Value())
	assert.Equal(t, 1, d.Remaining(), "no card is drawn after the bust")
}

func TestHitBelow16SoftAceKeepsDrawing(t *testing.T) {
	t.Parallel()
	// A+4 is soft 15; a king makes hard 15, and a two reaches 17.
	dealer := dealerWith("Ah", "4c")
	d := deck.NewStackedDeck(randutil.New(1), deck.MustParseCards("Kd2s")...)

	HitBelow16(dealer, d)
	assert.Equal(t, 17, dealer.Hand.Value())
	assert.False(t, dealer.Busted)
	assert.Equal(t, 4, dealer.Hand.Len())
}

func TestHitBelowAlwaysTerminates(t *testing.T) {
	t.Parallel()
	rng := randutil.New(2024)
	for i := 0; i < 500; i++ {
		d := deck.NewDeck(rng)
		dealer := NewParticipant(DefaultDealerName)
		dealer.Hit(d.Deal())
		dealer.Hit(faceDown(d.Deal()))

		HitBelow16(dealer, d)
		require.True(t, dealer.Busted || dealer.Hand.Value() >= DefaultDealerThreshold)
		require.True(t, dealer.Standing)
	}
}

func TestHitBelowRejectsBadThreshold(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { HitBelow(0) })
	assert.Panics(t, func() { HitBelow(22) })
	assert.NotPanics(t, func() { HitBelow(17) })
}
