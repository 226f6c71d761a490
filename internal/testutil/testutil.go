// Package testutil provides shared test helpers for creating config files and cache fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrthorpe12/wordtrove/internal/datamuse"
)

// SetupTestConfig creates a config file with a file cache backend rooted in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return SetupTestConfigWithBaseURL(t, tmpDir, "https://api.datamuse.com")
}

// SetupTestConfigWithBaseURL creates a config file with the API base URL pointed
// at baseURL, usually an httptest server, for tests that exercise lookups.
func SetupTestConfigWithBaseURL(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	cacheDir := CacheDir(tmpDir)
	require.NoError(t, os.MkdirAll(cacheDir, 0755))

	configContent := fmt.Sprintf(`datamuse:
  base_url: %s
  max_results: 100
  cache_backend: file
  cache_directory: %s
`,
		baseURL,
		cacheDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CacheDir returns the cache directory used by configs from SetupTestConfig.
func CacheDir(tmpDir string) string {
	return filepath.Join(tmpDir, "cache")
}

// WriteCachedResponse stores words as the cached API response for a relation and
// word, so lookups succeed without a reachable API.
func WriteCachedResponse(t *testing.T, cacheDir string, relation datamuse.Relation, word string, words []datamuse.Word) {
	t.Helper()

	body, err := json.Marshal(words)
	require.NoError(t, err)

	path := filepath.Join(cacheDir, fmt.Sprintf("%s_%s.json", relation, word))
	require.NoError(t, os.WriteFile(path, body, 0644))
}
