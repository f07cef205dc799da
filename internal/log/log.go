package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a text-format slog.Logger writing to w.
//
// Level selection follows the CLI flags: Info by default, Debug with
// --verbose, Error with --quiet. Verbose and quiet are mutually exclusive
// and validated upstream; if both arrive here anyway, quiet wins so a
// misconfigured run errs on the side of silence.
func NewLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
