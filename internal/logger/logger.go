package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global structured logger
	Log *slog.Logger
	// logWriter is the rotating log writer, nil when logging to stderr
	logWriter *lumberjack.Logger
	// LogPath is the path to the current log file, empty when logging to stderr
	LogPath string
)

// ParseLevel maps a config value to a slog level. Unknown values mean warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// InitLogger sets up the global logger. With an empty logPath records go to
// stderr as text; otherwise they go to a rotating JSON file.
func InitLogger(level slog.Level, logPath string) {
	Close()

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if logPath == "" {
		LogPath = ""
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		_ = os.MkdirAll(filepath.Dir(logPath), 0755)
		LogPath = logPath
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
		handler = slog.NewJSONHandler(logWriter, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// InitWriter points the global logger at w. Used by tests.
func InitWriter(level slog.Level, w io.Writer) {
	Close()
	LogPath = ""
	Log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
		logWriter = nil
	}
}

func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}
