// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gnames/wuff/pkg/config"
	"github.com/lmittmann/tint"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "wuff.log"

var (
	mu sync.Mutex
	// logFile is the log file opened by the last Init, if any.
	logFile *os.File
)

// Init initializes the global slog logger with the given configuration.
// Creates log file in logDir if destination is "file".
// If append is true, appends to existing log file; otherwise creates
// fresh file. A log file opened by a previous Init is closed.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	mu.Lock()
	defer mu.Unlock()

	writer, file, err := destination(logDir, cfg.Destination, append)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler(writer, cfg)))

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	return nil
}

func destination(
	logDir, dest string,
	append bool,
) (io.Writer, *os.File, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil, nil
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		var file *os.File
		var err error
		if append {
			file, err = os.OpenFile(
				logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644,
			)
		} else {
			file, err = os.Create(logPath)
		}
		if err != nil {
			return nil, nil, CreateLogFileError(logPath, err)
		}
		return file, file, nil
	default:
		return os.Stderr, nil, nil
	}
}

func handler(w io.Writer, cfg config.LogConfig) slog.Handler {
	level := parseLevel(cfg.Level)
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	switch cfg.Format {
	case "text":
		return slog.NewTextHandler(w, handlerOpts)
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			Level:   level,
			NoColor: cfg.Destination == "file",
		})
	default:
		return slog.NewJSONHandler(w, handlerOpts)
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
