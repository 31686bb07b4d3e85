package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <value>...",
		Short: "Insert one record, one value per field in schema order",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, dataFile, err := loadStore()
			if err != nil {
				return err
			}
			fields := store.Fields()
			if len(args) != len(fields) {
				return fmt.Errorf("expected %d values, got %d", len(fields), len(args))
			}
			vals := make([]any, len(args))
			for i, raw := range args {
				v, err := fields[i].Kind().Parse(raw)
				if err != nil {
					return fmt.Errorf("field %q: %w", fields[i].Name(), err)
				}
				vals[i] = v
			}
			if err := store.InsertValues(vals...); err != nil {
				return err
			}
			if err := store.WriteTo(dataFile); err != nil {
				return fmt.Errorf("write %s: %w", dataFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted 1 record (%d total)\n", store.Len())
			return nil
		},
	}
}
