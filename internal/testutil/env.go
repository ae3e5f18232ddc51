package testutil

import (
	"os"
	"testing"
)

// WithEnv sets key to val for the rest of the test; an empty val unsets
// the variable. The previous value is restored on cleanup.
func WithEnv(t *testing.T, key, val string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// TempHome points HOME and XDG_CONFIG_HOME at a fresh temp dir and clears
// the ORHUB_* overrides. It returns the directory.
func TempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WithEnv(t, "HOME", dir)
	WithEnv(t, "XDG_CONFIG_HOME", dir)
	for _, k := range []string{"ORHUB_THEME", "ORHUB_USER", "ORHUB_HOST", "ORHUB_LOG_LEVEL"} {
		WithEnv(t, k, "")
	}
	return dir
}
