package datamuse

import "fmt"

// Relation is the kind of connection between the query word and the
// words to look up.
type Relation string

const (
	RelationRhyme   Relation = "rhyme"
	RelationSimilar Relation = "similar"
	RelationSynonym Relation = "synonym"
	RelationAntonym Relation = "antonym"
)

// Param returns the /words query parameter implementing the relation.
func (relation Relation) Param() (string, error) {
	switch relation {
	case RelationRhyme:
		return "rel_rhy", nil
	case RelationSimilar:
		return "ml", nil
	case RelationSynonym:
		return "rel_syn", nil
	case RelationAntonym:
		return "rel_ant", nil
	}
	return "", fmt.Errorf("unknown relation: %s", relation)
}
