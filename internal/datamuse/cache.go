package datamuse

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResponseCache keeps raw /words response bodies between runs so the
// same lookup does not hit the API twice.
type ResponseCache interface {
	Fetch(ctx context.Context, relation Relation, word string, fetch func() ([]byte, error)) ([]byte, error)
}

// FileCache stores one JSON file per relation and word under rootDir.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(relation Relation, word string) string {
	return filepath.Join(cache.rootDir, fmt.Sprintf("%s_%s.json", relation, word))
}

func (cache *FileCache) Fetch(_ context.Context, relation Relation, word string, fetch func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(relation, word)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(relation, word)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch > %w", err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(relation Relation, word string) ([]byte, error) {
	file, err := os.Open(cache.filePath(relation, word))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
