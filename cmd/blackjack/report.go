package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	pushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))
)

func renderReport(r *simulator.Result) string {
	var sb strings.Builder
	stats := r.Stats

	sb.WriteString(headerStyle.Render("Blackjack simulation"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %d rounds, seed %d, %s",
		labelStyle.Render("played"), stats.Rounds, r.Seed, r.Elapsed.Round(time.Millisecond))
	if rps := r.RoundsPerSecond(); rps > 0 {
		fmt.Fprintf(&sb, " (%.0f rounds/s)", rps)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %.1f%%\n\n", labelStyle.Render("dealer bust rate"), 100*stats.DealerBustRate())

	fmt.Fprintf(&sb, "%-12s %8s %8s %8s %8s %10s %20s\n",
		"seat", "win%", "loss%", "push%", "bust%", "net/round", "95% CI")
	for _, name := range stats.SeatNames() {
		sb.WriteString(renderTally(name, *stats.Seats[name]))
	}
	sb.WriteString(renderTally("overall", stats.Overall))
	return strings.TrimRight(sb.String(), "\n")
}

func renderTally(name string, t statistics.Tally) string {
	pct := func(n int) float64 {
		if t.Rounds == 0 {
			return 0
		}
		return 100 * float64(n) / float64(t.Rounds)
	}
	lo, hi := t.ConfidenceInterval95()
	mean := fmt.Sprintf("%+10.4f", t.Mean())
	return fmt.Sprintf("%-12s %8.2f %8.2f %8.2f %8.2f %s %20s\n",
		name, pct(t.Wins), pct(t.Losses), pct(t.Pushes), pct(t.Busts),
		styleNet(t.Mean(), mean), fmt.Sprintf("[%+.4f, %+.4f]", lo, hi))
}

func styleNet(v float64, text string) string {
	switch {
	case v > 0:
		return winStyle.Render(text)
	case v < 0:
		return lossStyle.Render(text)
	default:
		return pushStyle.Render(text)
	}
}

func renderOutcome(o game.Outcome) string {
	return styleNet(float64(o.Net()), o.String())
}
