package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logPath string
	logFile *os.File

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created. Call before the first Logger() call.
func SetLogPath(path string) {
	logPath = path
}

// Logger returns the application logger. Output is JSON, written to stdout
// and, when a log path is configured and writable, to the log file as well.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		var w io.Writer = os.Stdout
		if logPath != "" {
			if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
				if err == nil {
					logFile = f
					w = io.MultiWriter(os.Stdout, f)
				}
			}
		}

		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	Logger()
	levelVar.Set(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g. "debug", "info", "error"). Unknown values fall back to info.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	SetLogLevel(level)
}

// CloseLogger closes the log file if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
