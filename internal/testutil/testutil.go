// Package testutil provides shared test helpers: a controllable clock and
// config file fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Clock is a manually advanced clock for deterministic time-based tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a Clock frozen at the given time.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current fake time. Pass c.Now as a now func.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// WriteConfig writes a minimal valid config file into tmpDir and returns its
// path.
func WriteConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := `database:
  host: localhost
  port: 5432
  username: prepdeck
  database: prepdeck_test
  ssl_mode: disable
login_guard:
  window_minutes: 15
  max_attempts: 5
two_factor:
  issuer: prepdeck-test
  backup_code_count: 10
roles:
  cache_ttl_seconds: 300
metrics:
  sample_rate: 1.0
`

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
