package app

import (
	"bytes"
	"os"
	"testing"
)

// SetupAppTest creates a new app instance for system testing. The app logs
// at debug level into the returned buffer.
func SetupAppTest(t *testing.T, cfg *Config) (*App, *bytes.Buffer) {
	t.Helper()

	logBuffer := &bytes.Buffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(logBuffer, cfg)

	t.Cleanup(func() {
		if os.Getenv("IDXGUARD_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
