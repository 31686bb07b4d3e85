package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/satchel/internal/sqlite"
)

func newExportCmd() *cobra.Command {
	var (
		dbPath string
		table  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the store into a SQLite database",
		Long:  "Mirror the parsed records into a SQLite table for external querying.\nThe text data file remains the source of truth.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore()
			if err != nil {
				return err
			}
			if err := sqlite.Export(dbPath, table, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", store.Len(), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "satchel.db", "SQLite database file to write")
	cmd.Flags().StringVar(&table, "table", "records", "table name to create")
	return cmd
}
