package datamuse

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// LookupEntry represents a cached /words response for one relation and word.
type LookupEntry struct {
	Relation  string          `db:"relation"`
	Word      string          `db:"word"`
	Response  json.RawMessage `db:"response"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/datamuse/mock_repository.go -package=mock_datamuse

// LookupRepository defines operations for managing cached lookups.
type LookupRepository interface {
	FindByLookup(ctx context.Context, relation Relation, word string) (*LookupEntry, error)
	Upsert(ctx context.Context, entry *LookupEntry) error
}

// DBLookupRepository implements LookupRepository using MySQL.
type DBLookupRepository struct {
	db *sqlx.DB
}

// NewDBLookupRepository creates a new DBLookupRepository.
func NewDBLookupRepository(db *sqlx.DB) *DBLookupRepository {
	return &DBLookupRepository{db: db}
}

// FindByLookup returns the cached entry for a relation and word, or nil
// if the lookup has not been cached yet.
func (r *DBLookupRepository) FindByLookup(ctx context.Context, relation Relation, word string) (*LookupEntry, error) {
	var entry LookupEntry
	err := r.db.GetContext(ctx, &entry, "SELECT * FROM lookup_entries WHERE relation = ? AND word = ?", string(relation), word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(lookup_entry) > %w", err)
	}
	return &entry, nil
}

// Upsert inserts or updates a cached entry.
func (r *DBLookupRepository) Upsert(ctx context.Context, entry *LookupEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lookup_entries (relation, word, response)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE response = VALUES(response)`,
		entry.Relation, entry.Word, entry.Response)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert lookup_entry) > %w", err)
	}
	return nil
}

// RepositoryCache adapts a LookupRepository to the ResponseCache interface.
type RepositoryCache struct {
	repository LookupRepository
}

func NewRepositoryCache(repository LookupRepository) *RepositoryCache {
	return &RepositoryCache{
		repository: repository,
	}
}

func (cache *RepositoryCache) Fetch(ctx context.Context, relation Relation, word string, fetch func() ([]byte, error)) ([]byte, error) {
	entry, err := cache.repository.FindByLookup(ctx, relation, word)
	if err != nil {
		return nil, fmt.Errorf("repository.FindByLookup > %w", err)
	}
	if entry != nil {
		return entry.Response, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch > %w", err)
	}

	if err := cache.repository.Upsert(ctx, &LookupEntry{
		Relation: string(relation),
		Word:     word,
		Response: contents,
	}); err != nil {
		return nil, fmt.Errorf("repository.Upsert > %w", err)
	}
	return contents, nil
}
