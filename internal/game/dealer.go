package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// DefaultDealerThreshold is the value the dealer draws below.
const DefaultDealerThreshold = 16

// DefaultDealerName names the dealer seat unless overridden.
const DefaultDealerName = "Dealer"

// DealerPolicy plays the dealer's hand once every player has finished. It runs
// synchronously and must leave the dealer standing or busted.
type DealerPolicy func(dealer *Participant, d *deck.Deck)

// HitBelow16 is the house rule: reveal the hole card, draw while under 16,
// then stand.
var HitBelow16 = HitBelow(DefaultDealerThreshold)

// HitBelow returns a policy that reveals the hand, draws while the value is
// below threshold and then stands. Threshold must be within 1..21.
func HitBelow(threshold int) DealerPolicy {
	if threshold < 1 || threshold > MaxValue {
		panic(fmt.Sprintf("dealer threshold %d out of range 1..%d", threshold, MaxValue))
	}

	return func(dealer *Participant, d *deck.Deck) {
		dealer.Hand.RevealAll()
		// Every card raises the hard total (aces as 1) and the value never
		// falls below it, so the loop is bounded.
		for dealer.CanAct() && dealer.Hand.Value() < threshold {
			dealer.Hit(d.Deal())
		}
		dealer.Stand()
	}
}
