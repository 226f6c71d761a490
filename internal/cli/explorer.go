package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/mrthorpe12/wordtrove/internal/datamuse"
)

// ExplorerCLI manages the interactive word exploration session. The
// saved words and the last rendered results live for the session only.
type ExplorerCLI struct {
	finder       datamuse.Finder
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color

	lastResults []datamuse.Word
	savedWords  []string
}

// NewExplorerCLI creates an interactive CLI reading commands from stdin.
func NewExplorerCLI(finder datamuse.Finder) *ExplorerCLI {
	return &ExplorerCLI{
		finder:       finder,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

var (
	errEnd = errors.New("end")
)

func (cli *ExplorerCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	fmt.Fprintln(cli.stdoutWriter, "Type help for the commands, quit to end the session.")

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Lookup looks up related words once and renders them without starting
// a session. Unlike a session lookup, a failed request is returned to
// the caller.
func (cli *ExplorerCLI) Lookup(ctx context.Context, relation datamuse.Relation, word string, grouped bool) error {
	words, err := cli.finder.Find(ctx, relation, word)
	if err != nil {
		return fmt.Errorf("finder.Find > %w", err)
	}

	if _, err := cli.showResultsGrouped(relation, word, words, grouped); err != nil {
		return err
	}
	return nil
}

// Session handles a single command. It returns errEnd when the user
// ends the session, on quit as well as on a closed stdin.
func (cli *ExplorerCLI) Session(ctx context.Context) error {
	fmt.Fprint(cli.stdoutWriter, "> ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("error reading command input: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "quit", "exit":
		if len(cli.savedWords) > 0 {
			if err := cli.showSavedWords(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cli.stdoutWriter, "Exploration session ended.")
		return errEnd
	case "help":
		return cli.showHelp()
	case "saved":
		return cli.showSavedWords()
	case "save":
		return cli.saveResult(args)
	case "r", "rhymes":
		return cli.lookup(ctx, datamuse.RelationRhyme, args)
	case "m", "similar":
		return cli.lookup(ctx, datamuse.RelationSimilar, args)
	case "y", "synonyms":
		return cli.lookup(ctx, datamuse.RelationSynonym, args)
	case "a", "antonyms":
		return cli.lookup(ctx, datamuse.RelationAntonym, args)
	}

	fmt.Fprintf(cli.stdoutWriter, "Unknown command %q. Type help for the commands.\n", command)
	return nil
}

func (cli *ExplorerCLI) lookup(ctx context.Context, relation datamuse.Relation, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "A word is required, like: rhymes forgetful")
		return nil
	}
	word := strings.Join(args, " ")

	words, err := cli.finder.Find(ctx, relation, word)
	if err != nil {
		// Keep the session going and the last results on display
		slog.Default().Error("Failed to look up related words",
			"relation", relation,
			"word", word,
			"error", err)
		return nil
	}

	displayed, err := cli.showResults(relation, word, words)
	if err != nil {
		return err
	}
	cli.lastResults = displayed
	return nil
}

func (cli *ExplorerCLI) saveResult(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "A result number is required, like: save 1")
		return nil
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(cli.stdoutWriter, "%q is not a result number.\n", args[0])
		return nil
	}
	if number < 1 || number > len(cli.lastResults) {
		fmt.Fprintf(cli.stdoutWriter, "No result %d on the current list.\n", number)
		return nil
	}

	cli.savedWords = append(cli.savedWords, cli.lastResults[number-1].Word)
	return cli.showSavedWords()
}
