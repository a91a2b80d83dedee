package zentao

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/slok/zentao/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary    string
	URL       string
	SessionID string
	Username  string
	Password  string
}

func (c *Config) defaults() error {
	// go test changes the CWD to the test package directory.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("ZENTAO_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("zentao binary not found at %q: %w", c.Binary, err)
	}

	if c.URL == "" {
		return fmt.Errorf("zentao url is required (ZENTAO_INTEGRATION_URL)")
	}
	if c.SessionID == "" {
		return fmt.Errorf("session id is required (ZENTAO_INTEGRATION_SID)")
	}
	if c.Username == "" {
		return fmt.Errorf("username is required (ZENTAO_INTEGRATION_USERNAME)")
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "ZENTAO_INTEGRATION"
		envBinary     = "ZENTAO_INTEGRATION_BINARY"
		envURL        = "ZENTAO_INTEGRATION_URL"
		envSID        = "ZENTAO_INTEGRATION_SID"
		envUsername   = "ZENTAO_INTEGRATION_USERNAME"
		envPassword   = "ZENTAO_INTEGRATION_PASSWORD"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary:    os.Getenv(envBinary),
		URL:       os.Getenv(envURL),
		SessionID: os.Getenv(envSID),
		Username:  os.Getenv(envUsername),
		Password:  os.Getenv(envPassword),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// RunZentaoCmd runs a zentao command against the configured instance. The
// credentials go through the environment, the preferences file and the
// diagnostics live in dir.
func RunZentaoCmd(ctx context.Context, config Config, dir string, cmdArgs ...string) (testutils.Result, error) {
	args := []string{
		"--no-color",
		"--config", filepath.Join(dir, "config.yaml"),
		"--diagnostics-dir", filepath.Join(dir, "diagnostics"),
	}
	args = append(args, cmdArgs...)

	return testutils.RunZentao(ctx, config.Binary, args, map[string]string{
		"ZENTAO_URL":      config.URL,
		"ZENTAO_SID":      config.SessionID,
		"ZENTAO_USERNAME": config.Username,
		"ZENTAO_PASSWORD": config.Password,
	})
}
