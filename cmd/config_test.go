package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fastfeet/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FASTFEET_DB__HOST", "localhost")
	t.Setenv("FASTFEET_DB__USER", "fastfeet")
	t.Setenv("FASTFEET_DB__NAME", "fastfeet")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	config, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", config.Database.Host)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, "8080", config.HTTP.Port)
	assert.Equal(t, 10*time.Second, config.HTTP.ReadTimeout)
	assert.Equal(t, "@every 1m", config.Jobs.DeliveryBacklogSchedule)
	assert.False(t, config.CacheEnabled())
	assert.Equal(t, slog.LevelInfo, config.LogLevel())
}

func TestLoadConfig_NestedOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FASTFEET_HTTP__PORT", "9090")
	t.Setenv("FASTFEET_HTTP__READ_TIMEOUT", "3s")
	t.Setenv("FASTFEET_DB__MAX_OPEN_CONNS", "7")
	t.Setenv("FASTFEET_REDIS__ADDR", "localhost:6379")
	t.Setenv("FASTFEET_REDIS__TTL", "30s")
	t.Setenv("FASTFEET_JOBS__DELIVERY_BACKLOG_SCHEDULE", "@every 5m")
	t.Setenv("FASTFEET_LOG__LEVEL", "debug")

	config, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.HTTP.Port)
	assert.Equal(t, 3*time.Second, config.HTTP.ReadTimeout)
	assert.Equal(t, 7, config.Database.MaxOpenConns)
	assert.True(t, config.CacheEnabled())
	assert.Equal(t, 30*time.Second, config.Redis.TTL)
	assert.Equal(t, "@every 5m", config.Jobs.DeliveryBacklogSchedule)
	assert.Equal(t, slog.LevelDebug, config.LogLevel())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("FASTFEET_DB__HOST", "localhost")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "User")
	assert.Contains(t, err.Error(), "Name")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FASTFEET_DB__SSLMODE", "sometimes")
	t.Setenv("FASTFEET_REDIS__ADDR", "no-port")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SSLMode")
	assert.Contains(t, err.Error(), "Addr")
}

func TestLoadConfig_EnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte(
		"FASTFEET_DB__HOST=db\nFASTFEET_DB__USER=u\nFASTFEET_DB__NAME=n\nFASTFEET_HTTP__PORT=7070\n",
	), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{"FASTFEET_DB__HOST", "FASTFEET_DB__USER", "FASTFEET_DB__NAME", "FASTFEET_HTTP__PORT"} {
			_ = os.Unsetenv(key)
		}
	})
	t.Setenv("FASTFEET_HTTP__PORT", "6060")

	config, err := cmd.LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "db", config.Database.Host)
	assert.Equal(t, "6060", config.HTTP.Port, "process environment wins over the file")
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	setRequiredEnv(t)

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
}
