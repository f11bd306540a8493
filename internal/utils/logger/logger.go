package logger

import (
	"io"
	"os"

	"clipshare/internal/app/server/config"
	"clipshare/internal/utils/logger/slogpretty"

	"golang.org/x/exp/slog"
)

// New returns the logger for env: colored debug output locally, JSON otherwise.
func New(env string) *slog.Logger {
	return NewTo(env, os.Stdout)
}

// NewTo is New writing to w. The CLI logs to stderr to keep stdout for data.
func NewTo(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(w)
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog(w io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(w)

	return slog.New(handler)
}

// Err is a shorthand for the "error" attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
