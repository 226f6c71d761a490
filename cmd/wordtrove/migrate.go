package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/mrthorpe12/wordtrove/internal/database"
	"github.com/mrthorpe12/wordtrove/schemas"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateDatabaseCommand())
	migrateCmd.AddCommand(newMigrateImportCacheCommand())

	return migrateCmd
}

func newMigrateDatabaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "database",
		Short: "Create the lookup cache tables for the database backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			files, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
			if err != nil {
				return fmt.Errorf("fs.Glob > %w", err)
			}
			sort.Strings(files)

			ctx := cmd.Context()
			for _, file := range files {
				statement, err := fs.ReadFile(schemas.Migrations, file)
				if err != nil {
					return fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
				}
				if _, err := db.ExecContext(ctx, string(statement)); err != nil {
					return fmt.Errorf("db.ExecContext(%s) > %w", file, err)
				}
				fmt.Printf("Applied %s\n", file)
			}
			return nil
		},
	}
}
