// Package game implements the rules of a multi-player blackjack round.
//
// The main type is Game, which owns a deck, the player seats and a dealer seat,
// and moves through three phases: PlayerTurn, DealerTurn and GameOver.
//
// # Basic Usage
//
//	g, err := game.NewGame([]string{"Alice", "Bob"})
//	if err != nil {
//	    return err
//	}
//	g.PlayerHit()   // Alice draws
//	g.PlayerStand() // Alice done, Bob to act
//	g.PlayerStand() // Bob done, dealer plays out, round over
//	for _, o := range g.DetermineWinners() {
//	    fmt.Println(o)
//	}
//	g.Reset() // next round, same seats
//
// Commands issued in the wrong phase are ignored rather than reported as
// errors; a Game never fails once constructed.
//
// # Hidden cards
//
// The dealer's second card is dealt face down. Hand values only ever count
// face-up cards, so the hole card stays out of every total, including the
// dealer's own, until the dealer policy reveals it.
//
// # Deterministic Testing
//
// Inject a seeded RNG, or a stacked deck for a fully scripted round:
//
//	d := deck.NewStackedDeck(randutil.New(1), deck.MustParseCards("Th6s9d2c5h6c")...)
//	g, _ := game.NewGame([]string{"Alice"}, game.WithDeck(d))
//
// # Concurrency
//
// A Game is not safe for concurrent use. Independent Games can be driven from
// separate goroutines.
package game
