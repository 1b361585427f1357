// Package internal contains infrastructure shared by the actionsheet packages.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogDir      = "logs"
	defaultLogFilename = "actionsheet.log"
	maxLogSizeMB       = 5
	maxLogBackups      = 3
)

var (
	logPath   string
	logWriter io.Writer
	rotator   *lumberjack.Logger

	setupOnce sync.Once

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Has no effect once a logger was created.
func SetLogPath(path string) {
	logPath = path
}

// SetLogWriter replaces the log destination entirely (stdout and file).
// Has no effect once a logger was created.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

func setup() {
	setupOnce.Do(func() {
		if logWriter != nil {
			return
		}

		targetPath := logPath
		if targetPath == "" {
			targetPath = filepath.Join(defaultLogDir, defaultLogFilename)
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			logWriter = os.Stdout
			return
		}

		rotator = &lumberjack.Logger{
			Filename:   targetPath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		}

		logWriter = io.MultiWriter(os.Stdout, rotator)
	})
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)

		setup()

		handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		}).WithAttrs([]slog.Attr{slog.String("component", "actionsheet")})
		internalLogger = slog.New(handler)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if rotator != nil {
		rotator.Close()
	}
}
