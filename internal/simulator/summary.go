package simulator

import "github.com/lox/blackjack/internal/statistics"

// SeatSummary is the exported view of one seat's tally
type SeatSummary struct {
	Name        string     `json:"name"`
	Rounds      int        `json:"rounds"`
	Wins        int        `json:"wins"`
	Losses      int        `json:"losses"`
	Pushes      int        `json:"pushes"`
	Busts       int        `json:"busts"`
	DealerBusts int        `json:"dealer_busts"`
	Net         float64    `json:"net"`
	Mean        float64    `json:"mean"`
	StdDev      float64    `json:"stddev"`
	CI95        [2]float64 `json:"ci95"`
}

// Summary is a serialisable report of a run
type Summary struct {
	Seed           int64         `json:"seed"`
	Rounds         int           `json:"rounds"`
	ElapsedMs      int64         `json:"elapsed_ms"`
	DealerBusts    int           `json:"dealer_busts"`
	DealerBustRate float64       `json:"dealer_bust_rate"`
	Seats          []SeatSummary `json:"seats"`
	Overall        SeatSummary   `json:"overall"`
}

func summarize(name string, t statistics.Tally) SeatSummary {
	lo, hi := t.ConfidenceInterval95()
	return SeatSummary{
		Name:        name,
		Rounds:      t.Rounds,
		Wins:        t.Wins,
		Losses:      t.Losses,
		Pushes:      t.Pushes,
		Busts:       t.Busts,
		DealerBusts: t.DealerBusts,
		Net:         t.Net,
		Mean:        t.Mean(),
		StdDev:      t.StdDev(),
		CI95:        [2]float64{lo, hi},
	}
}

// Summary flattens the result for export, seats in name order
func (r Result) Summary() Summary {
	s := Summary{
		Seed:           r.Seed,
		Rounds:         r.Stats.Rounds,
		ElapsedMs:      r.Elapsed.Milliseconds(),
		DealerBusts:    r.Stats.DealerBusts,
		DealerBustRate: r.Stats.DealerBustRate(),
		Overall:        summarize("overall", r.Stats.Overall),
	}
	for _, name := range r.Stats.SeatNames() {
		s.Seats = append(s.Seats, summarize(name, *r.Stats.Seats[name]))
	}
	return s
}
