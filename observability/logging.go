package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerOptions selects the level, encoding, and destination for a
// logger built by NewLogger. The zero value means info-level JSON on
// stderr.
type LoggerOptions struct {
	Level  string    // debug, info, warn, error
	Format string    // json or text
	Output io.Writer // defaults to os.Stderr
}

// NewLogger builds a slog.Logger from opts. Unrecognized levels fall
// back to info and unrecognized formats to json, so a misconfigured
// caller still gets a working logger rather than an error.
func NewLogger(opts LoggerOptions) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var level slog.Level
	switch strings.ToLower(opts.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(opts.Format) == "text" {
		return slog.New(slog.NewTextHandler(out, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(out, handlerOpts))
}

var discard = slog.New(slog.DiscardHandler)

// Discard returns a logger that drops everything. Constructors across
// the module use it when the caller passes no logger, keeping library
// code quiet unless the caller opts in.
func Discard() *slog.Logger {
	return discard
}
