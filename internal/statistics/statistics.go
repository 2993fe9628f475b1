package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// Tally tracks outcomes and net units for one seat, or for all seats combined.
type Tally struct {
	Rounds      int
	Wins        int
	Losses      int
	Pushes      int
	Busts       int // Player busted
	DealerBusts int // Won because the dealer busted
	Net         float64
	SumSq       float64 // Sum of squares for variance calculation
}

// Add incorporates one outcome
func (t *Tally) Add(o game.Outcome) {
	net := float64(o.Net())
	t.Rounds++
	t.Net += net
	t.SumSq += net * net

	switch o.Kind {
	case game.OutcomeBust:
		t.Busts++
		t.Losses++
	case game.OutcomeLose:
		t.Losses++
	case game.OutcomeDealerBust:
		t.DealerBusts++
		t.Wins++
	case game.OutcomeWin:
		t.Wins++
	case game.OutcomePush:
		t.Pushes++
	}
}

// Merge folds another tally into this one.
func (t *Tally) Merge(other Tally) {
	t.Rounds += other.Rounds
	t.Wins += other.Wins
	t.Losses += other.Losses
	t.Pushes += other.Pushes
	t.Busts += other.Busts
	t.DealerBusts += other.DealerBusts
	t.Net += other.Net
	t.SumSq += other.SumSq
}

// Mean returns the average net units per round
func (t Tally) Mean() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return t.Net / float64(t.Rounds)
}

// Variance returns the sample variance of per-round results
func (t Tally) Variance() float64 {
	if t.Rounds < 2 {
		return 0
	}
	mean := t.Mean()
	return (t.SumSq - float64(t.Rounds)*mean*mean) / float64(t.Rounds-1)
}

// StdDev returns the sample standard deviation
func (t Tally) StdDev() float64 {
	return math.Sqrt(math.Max(t.Variance(), 0))
}

// StdError returns the standard error of the mean
func (t Tally) StdError() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return t.StdDev() / math.Sqrt(float64(t.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (t Tally) ConfidenceInterval95() (float64, float64) {
	mean := t.Mean()
	margin := 1.96 * t.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of rounds won
func (t Tally) WinRate() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds)
}

// Validate checks that the outcome counts add up
func (t Tally) Validate() error {
	if t.Wins+t.Losses+t.Pushes != t.Rounds {
		return fmt.Errorf("outcome mismatch: wins=%d losses=%d pushes=%d rounds=%d",
			t.Wins, t.Losses, t.Pushes, t.Rounds)
	}
	if t.Busts > t.Losses {
		return fmt.Errorf("busts (%d) exceed losses (%d)", t.Busts, t.Losses)
	}
	if t.DealerBusts > t.Wins {
		return fmt.Errorf("dealer busts (%d) exceed wins (%d)", t.DealerBusts, t.Wins)
	}
	if math.Abs(t.Net-float64(t.Wins-t.Losses)) > 1e-6 {
		return fmt.Errorf("ledger mismatch: net=%.2f wins=%d losses=%d", t.Net, t.Wins, t.Losses)
	}
	return nil
}

// Statistics aggregates simulated rounds per seat and overall.
type Statistics struct {
	Rounds      int              // Rounds played (one outcome per seat each)
	DealerBusts int              // Rounds in which the dealer busted
	Overall     Tally            // All seats combined
	Seats       map[string]*Tally
}

// New creates empty statistics.
func New() *Statistics {
	return &Statistics{Seats: make(map[string]*Tally)}
}

// AddRound incorporates the outcomes of one finished round.
func (s *Statistics) AddRound(outcomes []game.Outcome, dealerBusted bool) {
	s.Rounds++
	if dealerBusted {
		s.DealerBusts++
	}
	for _, o := range outcomes {
		s.Overall.Add(o)
		s.seat(o.Player).Add(o)
	}
}

func (s *Statistics) seat(name string) *Tally {
	t, ok := s.Seats[name]
	if !ok {
		t = &Tally{}
		s.Seats[name] = t
	}
	return t
}

// Merge folds another set of statistics into this one.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.DealerBusts += other.DealerBusts
	s.Overall.Merge(other.Overall)
	for name, t := range other.Seats {
		s.seat(name).Merge(*t)
	}
}

// DealerBustRate returns the fraction of rounds in which the dealer busted
func (s *Statistics) DealerBustRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.DealerBusts) / float64(s.Rounds)
}

// SeatNames returns seat names in sorted order.
func (s *Statistics) SeatNames() []string {
	names := make([]string, 0, len(s.Seats))
	for name := range s.Seats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate performs consistency checks across all tallies
func (s *Statistics) Validate() error {
	if err := s.Overall.Validate(); err != nil {
		return fmt.Errorf("overall: %w", err)
	}

	total := 0
	for name, t := range s.Seats {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seat %s: %w", name, err)
		}
		if t.Rounds != s.Rounds {
			return fmt.Errorf("seat %s played %d rounds, expected %d", name, t.Rounds, s.Rounds)
		}
		total += t.Rounds
	}
	if total != s.Overall.Rounds {
		return fmt.Errorf("seat rounds sum to %d, overall has %d", total, s.Overall.Rounds)
	}
	if s.DealerBusts > s.Rounds {
		return fmt.Errorf("dealer busts (%d) exceed rounds (%d)", s.DealerBusts, s.Rounds)
	}
	return nil
}
