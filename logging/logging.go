// ABOUTME: Structured logger construction on top of zerolog
// ABOUTME: Console output with short timestamps, written to stderr by default
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const consoleTimeFormat = "15:04:05"

// New returns a console logger at level writing to w (stderr when nil).
func New(level zerolog.Level, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	zerolog.ErrorFieldName = "err"

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat, NoColor: !isTerminal(w)}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// NewJSON returns a logger that writes one JSON object per line, for the MCP server.
func NewJSON(level zerolog.Level, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
