package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile_Missing(t *testing.T) {
	loaded, err := LoadEnvFile(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_PROCESSOR_TEST_KEY=from-file\n"), 0600))
	t.Setenv("DATA_PROCESSOR_TEST_KEY", "")
	os.Unsetenv("DATA_PROCESSOR_TEST_KEY")

	loaded, err := LoadEnvFile(path)

	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "from-file", os.Getenv("DATA_PROCESSOR_TEST_KEY"))
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_PROCESSOR_TEST_KEY=from-file\n"), 0600))
	t.Setenv("DATA_PROCESSOR_TEST_KEY", "from-env")

	_, err := LoadEnvFile(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", os.Getenv("DATA_PROCESSOR_TEST_KEY"))
}

func TestEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "development", Environment())

	t.Setenv("APP_ENV", "production")
	assert.Equal(t, "production", Environment())
}
