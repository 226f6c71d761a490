package datamuse

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_filePath(t *testing.T) {
	tests := []struct {
		name     string
		rootDir  string
		relation Relation
		word     string
		expected string
	}{
		{
			name:     "rhyme lookup",
			rootDir:  "cache",
			relation: RelationRhyme,
			word:     "grown",
			expected: filepath.Join("cache", "rhyme_grown.json"),
		},
		{
			name:     "phrase with spaces",
			rootDir:  "cache",
			relation: RelationSimilar,
			word:     "ringing in the ears",
			expected: filepath.Join("cache", "similar_ringing in the ears.json"),
		},
		{
			name:     "empty root directory",
			rootDir:  "",
			relation: RelationSynonym,
			word:     "quick",
			expected: "synonym_quick.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(tt.rootDir)
			result := cache.filePath(tt.relation, tt.word)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFileCache_Fetch(t *testing.T) {
	tests := []struct {
		name           string
		relation       Relation
		word           string
		setupCache     bool
		cacheContent   string
		fetch          func() ([]byte, error)
		expectedResult string
		expectError    bool
	}{
		{
			name:       "cache miss - successful fetch",
			relation:   RelationRhyme,
			word:       "test",
			setupCache: false,
			fetch: func() ([]byte, error) {
				return []byte(`[{"word":"best"}]`), nil
			},
			expectedResult: `[{"word":"best"}]`,
			expectError:    false,
		},
		{
			name:         "cache hit",
			relation:     RelationRhyme,
			word:         "cached",
			setupCache:   true,
			cacheContent: `[{"word":"from cache"}]`,
			fetch: func() ([]byte, error) {
				return []byte(`[{"word":"from api"}]`), nil
			},
			expectedResult: `[{"word":"from cache"}]`,
			expectError:    false,
		},
		{
			name:       "cache miss - fetch error",
			relation:   RelationRhyme,
			word:       "error",
			setupCache: false,
			fetch: func() ([]byte, error) {
				return nil, errors.New("API error")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(filepath.Join(t.TempDir(), "lookups"))

			if tt.setupCache {
				err := os.MkdirAll(cache.rootDir, 0755)
				require.NoError(t, err)

				err = os.WriteFile(cache.filePath(tt.relation, tt.word), []byte(tt.cacheContent), 0644)
				require.NoError(t, err)
			}

			result, err := cache.Fetch(context.Background(), tt.relation, tt.word, tt.fetch)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(result))

			// The fetched body has to survive for the next run.
			contents, err := os.ReadFile(cache.filePath(tt.relation, tt.word))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(contents))
		})
	}
}

func TestFileCache_read(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name           string
		relation       Relation
		word           string
		setupFile      bool
		fileContent    string
		expectedResult string
		expectError    bool
	}{
		{
			name:           "existing file",
			relation:       RelationRhyme,
			word:           "test",
			setupFile:      true,
			fileContent:    `[{"word":"best","score":100}]`,
			expectedResult: `[{"word":"best","score":100}]`,
			expectError:    false,
		},
		{
			name:        "non-existent file",
			relation:    RelationRhyme,
			word:        "missing",
			setupFile:   false,
			expectError: true,
		},
		{
			name:           "empty file",
			relation:       RelationSimilar,
			word:           "empty",
			setupFile:      true,
			fileContent:    "",
			expectedResult: "",
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(tempDir)

			if tt.setupFile {
				err := os.WriteFile(cache.filePath(tt.relation, tt.word), []byte(tt.fileContent), 0644)
				require.NoError(t, err)
			}

			result, err := cache.read(tt.relation, tt.word)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, string(result))
		})
	}
}
