// Package logger provides zap-based structured logging for the commands.
package logger

import (
	"fmt"
	"go-data-processor/pkg/utils"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	CombinedFile = "combined.log"
	ErrorFile    = "error.log"

	timeLayout = "2006-01-02 15:04:05"
)

// Logger wraps zap.Logger.
type Logger struct {
	*zap.Logger
	files []*os.File
}

// Config describes the level and sinks of a logger.
type Config struct {
	Level   string    // debug, info, warn, error
	Env     string    // anything other than "production" forces debug
	Dir     string    // directory for combined.log and error.log; empty disables file output
	Console io.Writer // defaults to os.Stderr
}

// DefaultConfig returns the console-only configuration.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Env:     "development",
		Console: os.Stderr,
	}
}

// ConfigFromEnv builds a Config from LOG_LEVEL, LOG_DIR and APP_ENV.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	cfg.Dir = os.Getenv("LOG_DIR")
	return cfg
}

// New builds a Logger from cfg. Close must be called to release file sinks.
func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Env != "production" {
		level = zapcore.DebugLevel
	}

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig()), zapcore.Lock(zapcore.AddSync(console)), level),
	}

	var files []*os.File
	if cfg.Dir != "" {
		if err := utils.EnsureDir(cfg.Dir); err != nil {
			return nil, err
		}

		combined, err := openLogFile(filepath.Join(cfg.Dir, CombinedFile))
		if err != nil {
			return nil, err
		}
		errFile, err := openLogFile(filepath.Join(cfg.Dir, ErrorFile))
		if err != nil {
			combined.Close()
			return nil, err
		}
		files = append(files, combined, errFile)

		fileEncoder := zapcore.NewJSONEncoder(fileEncoderConfig())
		cores = append(cores,
			zapcore.NewCore(fileEncoder, zapcore.Lock(combined), level),
			zapcore.NewCore(fileEncoder, zapcore.Lock(errFile), zapcore.ErrorLevel),
		)
	}

	return &Logger{Logger: zap.New(zapcore.NewTee(cores...)), files: files}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// FromZap wraps an existing zap logger, mostly for tests using observer cores.
func FromZap(l *zap.Logger) *Logger {
	return &Logger{Logger: l}
}

// Named returns a child logger tagged with the given service prefix.
func (l *Logger) Named(prefix string) *Logger {
	return &Logger{Logger: l.With(zap.String("service", prefix))}
}

// Close flushes buffered entries and closes file sinks.
func (l *Logger) Close() error {
	_ = l.Sync()
	var firstErr error
	for _, f := range l.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.files = nil
	return firstErr
}

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		MessageKey:       "message",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func fileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}
