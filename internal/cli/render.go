package cli

import (
	"fmt"
	"strings"

	"github.com/mrthorpe12/wordtrove/internal/datamuse"
	"github.com/mrthorpe12/wordtrove/internal/groupby"
)

const noResultsMessage = "(no results)"

// description returns the heading line for a result list.
func description(relation datamuse.Relation, word string) string {
	switch relation {
	case datamuse.RelationRhyme:
		return fmt.Sprintf("Words that rhyme with %s:", word)
	case datamuse.RelationSimilar:
		return fmt.Sprintf("Words with a meaning similar to %s:", word)
	case datamuse.RelationSynonym:
		return fmt.Sprintf("Synonyms of %s:", word)
	case datamuse.RelationAntonym:
		return fmt.Sprintf("Antonyms of %s:", word)
	}
	return fmt.Sprintf("Words related to %s:", word)
}

// showResults renders the words under their description line and
// returns them in display order. Rhyme results are grouped by syllable
// count and every other relation keeps the response order.
func (cli *ExplorerCLI) showResults(relation datamuse.Relation, word string, words []datamuse.Word) ([]datamuse.Word, error) {
	return cli.showResultsGrouped(relation, word, words, relation == datamuse.RelationRhyme)
}

// showResultsGrouped is showResults with the syllable grouping forced on
// or off. Result numbers start at 1 and keep counting across syllable
// groups, so a number always identifies one line for the save command.
func (cli *ExplorerCLI) showResultsGrouped(relation datamuse.Relation, word string, words []datamuse.Word, grouped bool) ([]datamuse.Word, error) {
	if _, err := cli.bold.Fprintln(cli.stdoutWriter, description(relation, word)); err != nil {
		return nil, fmt.Errorf("failed to write to stdout: %w", err)
	}

	if len(words) == 0 {
		if _, err := fmt.Fprintln(cli.stdoutWriter, noResultsMessage); err != nil {
			return nil, fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil, nil
	}

	if grouped {
		return cli.showGroupedBySyllables(words)
	}
	return cli.showNumbered(words, 1)
}

func (cli *ExplorerCLI) showGroupedBySyllables(words []datamuse.Word) ([]datamuse.Word, error) {
	groups := groupby.By(words, func(w datamuse.Word) any { return w.NumSyllables })

	displayed := make([]datamuse.Word, 0, len(words))
	for _, group := range groups {
		heading := fmt.Sprintf("%s syllables:", group.Key)
		if group.Key == "1" {
			heading = "1 syllable:"
		}
		if _, err := cli.italic.Fprintln(cli.stdoutWriter, heading); err != nil {
			return nil, fmt.Errorf("failed to write to stdout: %w", err)
		}

		shown, err := cli.showNumbered(group.Records, len(displayed)+1)
		if err != nil {
			return nil, err
		}
		displayed = append(displayed, shown...)
	}
	return displayed, nil
}

func (cli *ExplorerCLI) showNumbered(words []datamuse.Word, first int) ([]datamuse.Word, error) {
	for i, w := range words {
		if _, err := fmt.Fprintf(cli.stdoutWriter, "%d: %s\n", first+i, w.Word); err != nil {
			return nil, fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return words, nil
}

func (cli *ExplorerCLI) showSavedWords() error {
	if len(cli.savedWords) == 0 {
		if _, err := fmt.Fprintln(cli.stdoutWriter, "No saved words yet."); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if _, err := cli.bold.Fprint(cli.stdoutWriter, "Saved words: "); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	if _, err := fmt.Fprintln(cli.stdoutWriter, strings.Join(cli.savedWords, ", ")); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (cli *ExplorerCLI) showHelp() error {
	help := `Commands:
  r, rhymes <word>     words that rhyme with <word>, grouped by syllable count
  m, similar <word>    words with a meaning similar to <word>
  y, synonyms <word>   synonyms of <word>
  a, antonyms <word>   antonyms of <word>
  save <number>        save a result from the last list
  saved                show the saved words
  help                 show this help
  quit, exit           end the session`
	if _, err := fmt.Fprintln(cli.stdoutWriter, help); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}
