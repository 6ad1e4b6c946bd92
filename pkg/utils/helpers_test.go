package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	fallback := 500 * time.Millisecond

	assert.Equal(t, fallback, ParseDuration("", fallback))
	assert.Equal(t, fallback, ParseDuration("soon", fallback))
	assert.Equal(t, fallback, ParseDuration("-1s", fallback))
	assert.Equal(t, 2*time.Second, ParseDuration("2s", fallback))
	assert.Equal(t, time.Duration(0), ParseDuration("0s", fallback))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "200", FormatNumber(200))
	assert.Equal(t, "1.5", FormatNumber(1.5))
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "150.25", FormatNumber(150.25))
	assert.Equal(t, "100000000000000000000", FormatNumber(1e20))
	assert.Equal(t, "1e+21", FormatNumber(1e21))
	assert.Equal(t, "1e+307", FormatNumber(1e307))
	assert.Equal(t, "-2.5e+22", FormatNumber(-2.5e22))
}

func TestFormatFixed2(t *testing.T) {
	assert.Equal(t, "400.00", FormatFixed2(400))
	assert.Equal(t, "0.00", FormatFixed2(0))
	assert.Equal(t, "3.33", FormatFixed2(10.0/3))
	assert.Equal(t, "2.68", FormatFixed2(2.675000001))
	assert.Equal(t, 1.7e308, Round2(1.7e308))
	assert.NotContains(t, FormatFixed2(1.7e308), "Inf")
}

func TestEnsureParentDir(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "runs.db")

	require.NoError(t, EnsureParentDir(target))

	info, err := os.Stat(filepath.Join(base, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureParentDir("runs.db"))
}
