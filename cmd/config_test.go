package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"orderimport/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DIRECTORY_MODE", "DIRECTORY_LATENCY", "DIRECTORY_SEED_FILE", "DIRECTORY_REFRESH_SPEC",
	"LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv unsets every configuration variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIRECTORY_MODE", "memory")

	config, err := cmd.LoadConfig(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, cmd.DirectoryModeMemory, config.DirectoryMode)
	assert.Equal(t, 500*time.Millisecond, config.DirectoryLatency)
	assert.Equal(t, "0 */5 * * * *", config.DirectoryRefreshSpec)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "orders")
	t.Setenv("DIRECTORY_MODE", "POSTGRES")
	t.Setenv("DIRECTORY_LATENCY", "1s")
	t.Setenv("DIRECTORY_SEED_FILE", "customers.yaml")
	t.Setenv("LOG_FORMAT", "json")

	config, err := cmd.LoadConfig(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, cmd.DirectoryModePostgres, config.DirectoryMode)
	assert.Equal(t, time.Second, config.DirectoryLatency)
	assert.Equal(t, "customers.yaml", config.DirectorySeedFile)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "host=db port=5432 user=user password=secret dbname=orders sslmode=disable", config.DSN())
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=6000\nDIRECTORY_MODE=memory\nDIRECTORY_LATENCY=250ms\n"), 0o600))

	config, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "7000", config.HTTPPort, "environment wins over the file")
	assert.Equal(t, cmd.DirectoryModeMemory, config.DirectoryMode)
	assert.Equal(t, 250*time.Millisecond, config.DirectoryLatency)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown mode":          {"DIRECTORY_MODE": "sqlite"},
		"postgres without host": {"DIRECTORY_MODE": "postgres"},
		"bad latency":           {"DIRECTORY_MODE": "memory", "DIRECTORY_LATENCY": "soon"},
		"negative latency":      {"DIRECTORY_MODE": "memory", "DIRECTORY_LATENCY": "-1s"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig(missingEnvFile(t))

			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := cmd.NewLogger(buf, "debug", "json")

	logger.Debug("hello", "component", "test")

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"component":"test"`)
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := cmd.NewLogger(buf, "chatty", "text")

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
