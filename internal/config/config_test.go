package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfgPath := testutil.WriteConfig(t, t.TempDir())

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.LoginGuard.WindowMinutes)
	assert.Equal(t, 5, cfg.LoginGuard.MaxAttempts)
	assert.Equal(t, 10, cfg.TwoFactor.BackupCodeCount)
	assert.Equal(t, 300, cfg.Roles.CacheTTLSeconds)
	assert.Equal(t, 1.0, cfg.Metrics.SampleRate)
}

func TestLoad_Overrides(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `database:
  host: db.internal
  port: 6432
  username: app
  database: prepdeck
login_guard:
  window_minutes: 30
  max_attempts: 3
metrics:
  sample_rate: 0.25
`
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, 30, cfg.LoginGuard.WindowMinutes)
	assert.Equal(t, 3, cfg.LoginGuard.MaxAttempts)
	assert.Equal(t, 0.25, cfg.Metrics.SampleRate)
}

func TestLoad_PasswordFromEnvironment(t *testing.T) {
	cfgPath := testutil.WriteConfig(t, t.TempDir())
	t.Setenv("PREPDECK_DB_PASSWORD", "s3cret")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_ValidationNamesField(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `login_guard:
  window_minutes: 0
metrics:
  sample_rate: 2.0
`
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))

	_, err := config.Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window_minutes")
	assert.Contains(t, err.Error(), "sample_rate")
}
