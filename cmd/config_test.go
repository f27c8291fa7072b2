package cmd_test

import (
	"log/slog"
	"os"
	"testing"

	"workify/cmd"
	"workify/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "AUTH_JWT_SECRET", "CATEGORY_SYNC_SCHEDULE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, jobs.DefaultCategorySyncSchedule, cfg.SyncSchedule())
	require.ErrorIs(t, cfg.ValidateServer(), cmd.ErrJWTSecretRequired)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t")
	t.Setenv("CATEGORY_SYNC_SCHEDULE", "off")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Empty(t, cfg.SyncSchedule())
	require.NoError(t, cfg.ValidateServer())
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "password=secret")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "loud")

	_, err := cmd.LoadConfig()
	require.Error(t, err)
}
