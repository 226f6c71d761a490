package main

import (
	"fmt"

	"github.com/mrthorpe12/wordtrove/internal/config"
	"github.com/mrthorpe12/wordtrove/internal/database"
	"github.com/mrthorpe12/wordtrove/internal/datamuse"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newFinder builds the API client with the cache backend the configuration
// selects. The returned cleanup releases the client and, for the database
// backend, the connection pool.
func newFinder(cfg *config.Config) (*datamuse.Client, func(), error) {
	var cache datamuse.ResponseCache
	closeBackend := func() {}

	switch cfg.Datamuse.CacheBackend {
	case config.CacheBackendFile:
		cache = datamuse.NewFileCache(cfg.Datamuse.CacheDirectory)
	case config.CacheBackendDatabase:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		cache = datamuse.NewRepositoryCache(datamuse.NewDBLookupRepository(db))
		closeBackend = func() {
			_ = db.Close()
		}
	}

	client := datamuse.NewClient(datamuse.Config{
		BaseURL:    cfg.Datamuse.BaseURL,
		MaxResults: cfg.Datamuse.MaxResults,
	}, cache)

	cleanup := func() {
		_ = client.Close()
		closeBackend()
	}
	return client, cleanup, nil
}
