// Package datasync imports file cached API responses into the database cache.
package datasync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrthorpe12/wordtrove/internal/datamuse"
)

// ImportResult tracks counts for an import run.
type ImportResult struct {
	Imported int
	Updated  int
	Skipped  int
	Warnings int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads cached response files and writes them to the database.
type Importer struct {
	cacheDirectory string
	repository     datamuse.LookupRepository
	writer         io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(cacheDirectory string, repository datamuse.LookupRepository, writer io.Writer) *Importer {
	return &Importer{
		cacheDirectory: cacheDirectory,
		repository:     repository,
		writer:         writer,
	}
}

// ImportCachedLookups imports every cached response file from the cache
// directory. File names encode the lookup as <relation>_<word>.json, the
// format the file cache writes.
func (imp *Importer) ImportCachedLookups(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	files, err := os.ReadDir(imp.cacheDirectory)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir > %w", err)
	}

	var result ImportResult
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := imp.importFile(ctx, file.Name(), opts, &result); err != nil {
			return nil, fmt.Errorf("importFile(%s) > %w", file.Name(), err)
		}
	}
	return &result, nil
}

func (imp *Importer) importFile(ctx context.Context, name string, opts ImportOptions, result *ImportResult) error {
	relation, word, ok := parseCacheFileName(name)
	if !ok {
		fmt.Fprintf(imp.writer, "  [SKIP]  %s: not a cached lookup\n", name)
		result.Skipped++
		return nil
	}

	contents, err := os.ReadFile(filepath.Join(imp.cacheDirectory, name))
	if err != nil {
		return fmt.Errorf("os.ReadFile > %w", err)
	}
	var words []datamuse.Word
	if err := json.Unmarshal(contents, &words); err != nil {
		fmt.Fprintf(imp.writer, "  [WARN]  %s: invalid cached response: %v\n", name, err)
		result.Warnings++
		return nil
	}

	existing, err := imp.repository.FindByLookup(ctx, relation, word)
	if err != nil {
		return fmt.Errorf("FindByLookup(%s, %s) > %w", relation, word, err)
	}
	if existing != nil && !opts.UpdateExisting {
		fmt.Fprintf(imp.writer, "  [SKIP]  %s %q\n", relation, word)
		result.Skipped++
		return nil
	}

	if !opts.DryRun {
		if err := imp.repository.Upsert(ctx, &datamuse.LookupEntry{
			Relation: string(relation),
			Word:     word,
			Response: contents,
		}); err != nil {
			return fmt.Errorf("Upsert(%s, %s) > %w", relation, word, err)
		}
	}

	if existing != nil {
		fmt.Fprintf(imp.writer, "  [UPDATE]  %s %q\n", relation, word)
		result.Updated++
	} else {
		fmt.Fprintf(imp.writer, "  [NEW]  %s %q\n", relation, word)
		result.Imported++
	}
	return nil
}

// parseCacheFileName splits a cache file name into its relation and word.
// Relations never contain an underscore, so the first one ends the relation.
func parseCacheFileName(name string) (datamuse.Relation, string, bool) {
	base, ok := strings.CutSuffix(name, ".json")
	if !ok {
		return "", "", false
	}
	relationName, word, ok := strings.Cut(base, "_")
	if !ok || word == "" {
		return "", "", false
	}

	relation := datamuse.Relation(relationName)
	if _, err := relation.Param(); err != nil {
		return "", "", false
	}
	return relation, word, true
}
