// https://www.datamuse.com/api/
package datamuse

// Word is a single record returned by the /words endpoint. Fields
// beyond word and score only appear for some relations, so numSyllables
// is zero unless the query asked for rhymes.
type Word struct {
	Word         string   `json:"word"`
	Score        int      `json:"score"`
	NumSyllables int      `json:"numSyllables,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}
