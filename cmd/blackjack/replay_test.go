package main

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestReplay(t *testing.T) {
	var out bytes.Buffer
	err := replay(&out, quietLogger(), []string{"Alice", "Bob"}, strategy.Threshold{StandOn: 17}, 42, 2)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Round 1")
	assert.Contains(t, text, "Round 2")
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Bob")
	assert.Contains(t, text, "??", "hole card is hidden before the dealer plays")
	assert.Contains(t, text, game.GameOver.String())
}

func TestReplayIsDeterministic(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		require.NoError(t, replay(&out, quietLogger(), []string{"Alice"}, strategy.Basic{}, 7, 3))
		return out.String()
	}
	// Round IDs differ between runs, so compare the decision lines only.
	assert.Equal(t, decisions(run()), decisions(run()))
}

func decisions(text string) []string {
	var lines []string
	for _, line := range bytes.Split([]byte(text), []byte("\n")) {
		if bytes.Contains(line, []byte(" on ")) || bytes.Contains(line, []byte("wins")) || bytes.Contains(line, []byte("push")) {
			lines = append(lines, string(line))
		}
	}
	return lines
}

func TestReplayRejectsBadTable(t *testing.T) {
	var out bytes.Buffer
	err := replay(&out, quietLogger(), []string{"Dealer"}, strategy.Basic{}, 1, 1)
	assert.ErrorIs(t, err, game.ErrDuplicateName)
}

func TestRenderReport(t *testing.T) {
	stats := statistics.New()
	stats.AddRound([]game.Outcome{
		{Player: "Alice", Kind: game.OutcomeWin, PlayerValue: 20, DealerValue: 18},
		{Player: "Bob", Kind: game.OutcomeBust, PlayerValue: 24, DealerValue: 18},
	}, false)

	report := renderReport(&simulator.Result{Stats: stats, Seed: 9, Elapsed: 2 * time.Second})
	assert.Contains(t, report, "Blackjack simulation")
	assert.Contains(t, report, "1 rounds, seed 9")
	assert.Contains(t, report, "Alice")
	assert.Contains(t, report, "Bob")
	assert.Contains(t, report, "overall")
	assert.Contains(t, report, "+1.0000")
	assert.Contains(t, report, "-1.0000")
}
