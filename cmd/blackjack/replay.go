package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/strategy"
)

// ReplayCmd plays a few seeded rounds and prints each step
type ReplayCmd struct {
	Seed     int64    `kong:"default='1',help='RNG seed'"`
	Players  []string `kong:"default='Alice',help='Comma-separated player names'"`
	Strategy string   `kong:"default='basic',enum='threshold,mimic,basic',help='Strategy used by every player'"`
	StandOn  int      `kong:"default='17',help='Stand value for the threshold strategy'"`
	Rounds   int      `kong:"default='1',help='Rounds to play'"`
	Verbose  bool     `kong:"help='Log engine events'"`
}

func (c *ReplayCmd) Run() error {
	strat, err := strategy.New(c.Strategy, c.StandOn)
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(shared.Level(c.Verbose, log.WarnLevel))
	return replay(os.Stdout, logger, c.Players, strat, c.Seed, c.Rounds)
}

func replay(w io.Writer, logger *log.Logger, players []string, strat strategy.Strategy, seed int64, rounds int) error {
	table, err := game.NewGame(players,
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	for r := 0; r < rounds; r++ {
		if r > 0 {
			table.Reset()
		}

		fmt.Fprint(w, headerStyle.Render(fmt.Sprintf("Round %d", table.Round())), "\n")
		fmt.Fprint(w, table.Snapshot().String())

		for table.State() == game.PlayerTurn {
			view := table.Snapshot()
			seat := view.Players[view.Current]
			action := strat.Decide(view, view.Current)
			fmt.Fprintf(w, "%s %s on %d\n", seat.Name, action, seat.Value)
			table.Act(action)
		}

		fmt.Fprint(w, table.Snapshot().String())
		for _, o := range table.DetermineWinners() {
			fmt.Fprintln(w, renderOutcome(o))
		}
	}
	return nil
}
