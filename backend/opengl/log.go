package opengl

import (
	"log/slog"
	"os"
)

var glLogLevel = new(slog.LevelVar)

var glLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: glLogLevel})).
	With("component", "opengl")

// SetVerbose enables debug logging for the backend.
func SetVerbose(v bool) {
	if v {
		glLogLevel.Set(slog.LevelDebug)
	} else {
		glLogLevel.Set(slog.LevelInfo)
	}
}
