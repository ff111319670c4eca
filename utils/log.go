package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// Creates the run logger.
// Logs go to stderr in a human readable format, or as JSON to the file at logFile if not empty.
// The returned closer must be called once the run is over.
func NewLogger(verbose bool, logFile string) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	var closer io.Closer = io.NopCloser(nil)
	if logFile != "" {
		fh, err := os.Create(logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("could not create log '%s': %w", logFile, err)
		}
		handler = slog.NewJSONHandler(fh, &slog.HandlerOptions{Level: level})
		closer = fh
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	}

	return slog.New(handler).With("run", uuid.NewString()), closer, nil
}
