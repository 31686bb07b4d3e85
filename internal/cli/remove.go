package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var (
		limit int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "remove <field> <value>",
		Short: "Remove records whose field equals a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, dataFile, err := loadStore()
			if err != nil {
				return err
			}
			v, err := parseArg(store, args[0], args[1])
			if err != nil {
				return err
			}
			if all {
				limit = 0
			}
			n, err := store.Remove(args[0], v, limit)
			if err != nil {
				return err
			}
			if n > 0 {
				if err := store.WriteTo(dataFile); err != nil {
					return fmt.Errorf("write %s: %w", dataFile, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d record(s)\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 1, "maximum number of records to remove")
	cmd.Flags().BoolVar(&all, "all", false, "remove every match")
	return cmd
}
