package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrthorpe12/wordtrove/internal/database"
	"github.com/mrthorpe12/wordtrove/internal/datamuse"
	"github.com/mrthorpe12/wordtrove/internal/datasync"
)

func newMigrateImportCacheCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "import-cache",
		Short: "Import file cached responses into the database cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			importer := datasync.NewImporter(cfg.Datamuse.CacheDirectory, datamuse.NewDBLookupRepository(db), os.Stdout)
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}

			result, err := importer.ImportCachedLookups(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("importer.ImportCachedLookups() > %w", err)
			}

			fmt.Println("\nImport Summary:")
			if opts.DryRun {
				fmt.Println("  (dry-run mode, no changes made)")
			}
			fmt.Printf("  Cached lookups: %d new, %d updated, %d skipped, %d warnings\n",
				result.Imported, result.Updated, result.Skipped, result.Warnings)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update entries that already exist in the database")
	return cmd
}
