package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud", Env: "production"})
	assert.Error(t, err)
}

func TestNew_ProductionRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Env: "production", Console: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")
	require.NoError(t, l.Close())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_NonProductionEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Env: "development", Console: &buf})
	require.NoError(t, err)

	l.Debug("debug line")
	require.NoError(t, l.Close())

	assert.Contains(t, buf.String(), "debug line")
}

func TestNew_FileSinks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer

	l, err := New(Config{Level: "info", Env: "production", Dir: dir, Console: &buf})
	require.NoError(t, err)

	l.Info("all good")
	l.Error("went wrong", zap.String("stage", "render"))
	require.NoError(t, l.Close())

	combined, err := os.ReadFile(filepath.Join(dir, CombinedFile))
	require.NoError(t, err)
	assert.Contains(t, string(combined), "all good")
	assert.Contains(t, string(combined), "went wrong")

	errLog, err := os.ReadFile(filepath.Join(dir, ErrorFile))
	require.NoError(t, err)
	assert.NotContains(t, string(errLog), "all good")
	assert.Contains(t, string(errLog), `"stage":"render"`)
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).Named("DataProcessor")

	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "DataProcessor", entry.ContextMap()["service"])
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_DIR", "var/log")

	cfg := ConfigFromEnv()

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "var/log", cfg.Dir)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	assert.NoError(t, l.Close())
}
