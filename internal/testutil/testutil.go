// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	ServiceID = "svc-1"
	APIKey    = "secret-key"
)

// SetupTestConfig writes a config file pointing the Fastly API at apiBaseURL
// and exports the service credentials. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, apiBaseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`environment: local
fastly:
  api_base_url: %s
  timeout_seconds: 5
retry:
  attempts: 1
metrics:
  textfile: %s
`,
		apiBaseURL,
		filepath.Join(tmpDir, "cdn.prom"),
	)
	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("FASTLY_SERVICE_ID", ServiceID)
	t.Setenv("FASTLY_API_KEY", APIKey)
	return configPath
}
