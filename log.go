package sketch

import (
	"log/slog"
	"os"

	"github.com/go-theft-auto/sketch/gui"
)

// sketchLogLevel controls controller and loop logging; SetVerbose switches it to Debug.
var sketchLogLevel = new(slog.LevelVar)

var sketchLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sketchLogLevel})).
	With("component", "sketch")

// SetVerbose enables debug logging for the sketch and its overlay.
func SetVerbose(v bool) {
	if v {
		sketchLogLevel.Set(slog.LevelDebug)
	} else {
		sketchLogLevel.Set(slog.LevelInfo)
	}
	gui.SetVerbose(v)
}
