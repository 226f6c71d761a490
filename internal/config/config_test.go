package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	defaultDatabase := DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "wordtrove",
		Username: "user",
	}

	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `datamuse:
  base_url: https://words.example.com
  max_results: 25
  cache_backend: database
  cache_directory: custom/cache
database:
  host: db.example.com
  port: 3307
  database: words
  username: trove
`,
			useExplicitPath: false,
			wantErr:         false,
			want: &Config{
				Datamuse: DatamuseConfig{
					BaseURL:        "https://words.example.com",
					MaxResults:     25,
					CacheBackend:   "database",
					CacheDirectory: "custom/cache",
				},
				Database: DatabaseConfig{
					Host:     "db.example.com",
					Port:     3307,
					Database: "words",
					Username: "trove",
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `datamuse:
  base_url: https://words.example.com
  invalid yaml format here [[[
`,
			useExplicitPath: false,
			wantErr:         true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown keys fall back to defaults",
			configContent: `wrong_key:
  some_value: test
`,
			useExplicitPath: false,
			wantErr:         false,
			want: &Config{
				Datamuse: DatamuseConfig{
					BaseURL:        "https://api.datamuse.com",
					MaxResults:     100,
					CacheBackend:   CacheBackendFile,
					CacheDirectory: filepath.Join("cache", "datamuse"),
				},
				Database: defaultDatabase,
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `datamuse:
  max_results: 10
`,
			useExplicitPath: false,
			wantErr:         false,
			want: &Config{
				Datamuse: DatamuseConfig{
					BaseURL:        "https://api.datamuse.com",
					MaxResults:     10,
					CacheBackend:   CacheBackendFile,
					CacheDirectory: filepath.Join("cache", "datamuse"),
				},
				Database: defaultDatabase,
			},
		},
		{
			name: "explicit config file path",
			configContent: `datamuse:
  base_url: https://explicit.example.com
  cache_backend: none
`,
			useExplicitPath: true,
			wantErr:         false,
			want: &Config{
				Datamuse: DatamuseConfig{
					BaseURL:        "https://explicit.example.com",
					MaxResults:     100,
					CacheBackend:   CacheBackendNone,
					CacheDirectory: filepath.Join("cache", "datamuse"),
				},
				Database: defaultDatabase,
			},
		},
		{
			name: "unsupported cache backend",
			configContent: `datamuse:
  cache_backend: redis
`,
			useExplicitPath: false,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"cache_backend must be one of",
			},
		},
		{
			name: "invalid base URL",
			configContent: `datamuse:
  base_url: not-a-url
`,
			useExplicitPath: false,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url must be a valid URL",
			},
		},
		{
			name: "max results over the API limit",
			configContent: `datamuse:
  max_results: 5000
`,
			useExplicitPath: false,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"max_results",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					err := os.Chdir(originalDir)
					require.NoError(t, err)
				}()

				err = os.Chdir(tempDir)
				require.NoError(t, err)
				configPath = ""
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)

			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigLoader_Load_environmentVariables(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yml")
	err := os.WriteFile(configPath, []byte(`datamuse:
  cache_backend: database
`), 0644)
	require.NoError(t, err)

	t.Setenv("DATAMUSE_BASE_URL", "http://localhost:9000")
	t.Setenv("DB_PASSWORD", "hunter2")

	loader, err := NewConfigLoader(configPath)
	require.NoError(t, err)

	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", got.Datamuse.BaseURL)
	assert.Equal(t, "hunter2", got.Database.Password)
}
