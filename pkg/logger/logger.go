package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide structured logger. Init must run before any
// component touches it.
var Log *slog.Logger

// Init builds a JSON slog logger on stdout and installs it as the slog
// default, so packages that call slog directly share the same handler.
// LOG_LEVEL selects the minimum level (debug, info, warn, error); it
// defaults to info.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
	slog.SetDefault(Log)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
