package statistics

import (
	"testing"

	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcome(player string, kind game.OutcomeKind) game.Outcome {
	return game.Outcome{Player: player, Kind: kind}
}

func TestTallyAdd(t *testing.T) {
	var tally Tally
	for _, k := range []game.OutcomeKind{game.OutcomeWin, game.OutcomeDealerBust, game.OutcomeLose, game.OutcomeBust, game.OutcomePush} {
		tally.Add(outcome("Alice", k))
	}

	assert.Equal(t, 5, tally.Rounds)
	assert.Equal(t, 2, tally.Wins)
	assert.Equal(t, 2, tally.Losses)
	assert.Equal(t, 1, tally.Pushes)
	assert.Equal(t, 1, tally.Busts)
	assert.Equal(t, 1, tally.DealerBusts)
	assert.Equal(t, 0.0, tally.Net)
	assert.Equal(t, 4.0, tally.SumSq)
	assert.InDelta(t, 0.4, tally.WinRate(), 1e-9)
	assert.NoError(t, tally.Validate())
}

func TestTallyMoments(t *testing.T) {
	var tally Tally
	for i := 0; i < 3; i++ {
		tally.Add(outcome("Alice", game.OutcomeWin))
	}
	tally.Add(outcome("Alice", game.OutcomeLose))

	assert.InDelta(t, 0.5, tally.Mean(), 1e-9)
	// Values 1,1,1,-1: sample variance = (4 - 4*0.25) / 3 = 1
	assert.InDelta(t, 1.0, tally.Variance(), 1e-9)
	assert.InDelta(t, 1.0, tally.StdDev(), 1e-9)
	assert.InDelta(t, 0.5, tally.StdError(), 1e-9)

	lo, hi := tally.ConfidenceInterval95()
	assert.InDelta(t, 0.5-0.98, lo, 1e-9)
	assert.InDelta(t, 0.5+0.98, hi, 1e-9)
}

func TestEmptyTally(t *testing.T) {
	var tally Tally
	assert.Zero(t, tally.Mean())
	assert.Zero(t, tally.Variance())
	assert.Zero(t, tally.StdError())
	assert.Zero(t, tally.WinRate())
	assert.NoError(t, tally.Validate())
}

func TestTallyValidateCatchesMismatch(t *testing.T) {
	tally := Tally{Rounds: 2, Wins: 1}
	assert.Error(t, tally.Validate())

	tally = Tally{Rounds: 1, Wins: 1, Net: -1}
	assert.Error(t, tally.Validate())
}

func TestStatisticsAddRoundAndMerge(t *testing.T) {
	a := New()
	a.AddRound([]game.Outcome{outcome("Alice", game.OutcomeWin), outcome("Bob", game.OutcomeBust)}, false)
	a.AddRound([]game.Outcome{outcome("Alice", game.OutcomeDealerBust), outcome("Bob", game.OutcomeDealerBust)}, true)

	b := New()
	b.AddRound([]game.Outcome{outcome("Alice", game.OutcomePush), outcome("Bob", game.OutcomeLose)}, false)

	a.Merge(b)
	require.NoError(t, a.Validate())

	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, 1, a.DealerBusts)
	assert.InDelta(t, 1.0/3, a.DealerBustRate(), 1e-9)
	assert.Equal(t, []string{"Alice", "Bob"}, a.SeatNames())
	assert.Equal(t, 2.0, a.Seats["Alice"].Net)
	assert.Equal(t, -1.0, a.Seats["Bob"].Net)
	assert.Equal(t, 6, a.Overall.Rounds)
}

func TestStatisticsValidateSeatRounds(t *testing.T) {
	s := New()
	s.AddRound([]game.Outcome{outcome("Alice", game.OutcomeWin)}, false)
	s.Seats["Alice"].Rounds = 2
	s.Seats["Alice"].Losses = 1
	s.Seats["Alice"].Net = 0
	assert.Error(t, s.Validate())
}
