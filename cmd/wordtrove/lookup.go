package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrthorpe12/wordtrove/internal/cli"
	"github.com/mrthorpe12/wordtrove/internal/datamuse"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GroupMode string

func (m *GroupMode) Set(val string) error {
	for _, mode := range allGroupModes {
		if val == string(mode) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("invalid group mode: %s", val)
}

func (m GroupMode) String() string {
	return string(m)
}

func (m *GroupMode) Type() string {
	return "GroupMode"
}

const (
	GroupModeSyllables GroupMode = "syllables"
	GroupModeNone      GroupMode = "none"
)

var (
	_             pflag.Value = (*GroupMode)(nil)
	allGroupModes             = []GroupMode{GroupModeSyllables, GroupModeNone}
)

func newLookupCommand() *cobra.Command {
	lookupCommand := &cobra.Command{
		Use:   "lookup",
		Short: "One-shot lookups of words related to a word",
	}

	groupBy := GroupModeSyllables
	rhymesCommand := &cobra.Command{
		Use:   "rhymes <word>",
		Short: "Words that rhyme with a word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), datamuse.RelationRhyme, args, groupBy == GroupModeSyllables)
		},
	}
	rhymesCommand.Flags().Var(&groupBy, "group-by", fmt.Sprintf("How to arrange the results. Possible values are %v", allGroupModes))

	lookupCommand.AddCommand(
		rhymesCommand,
		&cobra.Command{
			Use:   "similar <word>",
			Short: "Words with a meaning similar to a word or phrase",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLookup(cmd.Context(), datamuse.RelationSimilar, args, false)
			},
		},
		&cobra.Command{
			Use:   "synonyms <word>",
			Short: "Synonyms of a word",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLookup(cmd.Context(), datamuse.RelationSynonym, args, false)
			},
		},
		&cobra.Command{
			Use:   "antonyms <word>",
			Short: "Antonyms of a word",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLookup(cmd.Context(), datamuse.RelationAntonym, args, false)
			},
		},
	)
	return lookupCommand
}

func runLookup(ctx context.Context, relation datamuse.Relation, args []string, grouped bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	finder, cleanup, err := newFinder(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	explorerCLI := cli.NewExplorerCLI(finder)
	return explorerCLI.Lookup(ctx, relation, strings.Join(args, " "), grouped)
}
