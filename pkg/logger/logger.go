package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a usable
// handler so library code and tests can log before Init runs.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
