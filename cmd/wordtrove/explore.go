package main

import (
	"fmt"

	"github.com/mrthorpe12/wordtrove/internal/cli"
	"github.com/spf13/cobra"
)

func newExploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Interactive session to explore and save related words",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return explorerCLI.Run(cmd.Context())
		},
	}
}
