package params

import (
	"io"
	"log/slog"
)

// Logger returns a frame logger honoring p.LogLevel. Anything other than
// LogLevelDebug yields a logger that discards its output.
func (p Parameters) Logger(w io.Writer) *slog.Logger {
	if p.LogLevel != LogLevelDebug || w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
