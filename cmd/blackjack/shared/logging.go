package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charmbracelet logger writing to stderr
func SetupLogger(level log.Level) *log.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger configures a logger for the given writer and level
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: level <= log.DebugLevel,
		Prefix:          "blackjack",
	})
}

// Level picks debug when verbose, otherwise the fallback level
func Level(verbose bool, fallback log.Level) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return fallback
}
