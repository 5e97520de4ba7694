package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates an application logger writing to stderr at the given level.
// Levels follow slog conventions: 0 is info, -4 debug, 4 warn, 8 error.
func New(level int) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination, used by tests.
func NewWithWriter(w io.Writer, level int) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.Level(level),
	}))
}
