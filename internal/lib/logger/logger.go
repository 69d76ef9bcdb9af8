package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the process logger for the given environment.
// local: text to stdout at debug level; dev/prod: JSON to a log file
// (falling back to stdout if the file cannot be opened).
func SetupLogger(env, logPath string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case envDev:
		handler = slog.NewJSONHandler(logOutput(logPath), &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		handler = slog.NewJSONHandler(logOutput(logPath), &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return slog.New(handler)
}

func logOutput(logPath string) io.Writer {
	file, err := os.OpenFile(filepath.Join(logPath, "agentdesk.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stdout
	}
	return file
}
