package datamuse

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/datamuse/mock_finder.go -package=mock_datamuse

// Finder looks up the words related to a word.
type Finder interface {
	Find(ctx context.Context, relation Relation, word string) ([]Word, error)
}
