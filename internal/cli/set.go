package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	var (
		limit int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "set <field> <match-value> <new-value>",
		Short: "Set a field on records matching a value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, dataFile, err := loadStore()
			if err != nil {
				return err
			}
			matchV, err := parseArg(store, args[0], args[1])
			if err != nil {
				return err
			}
			newV, err := parseArg(store, args[0], args[2])
			if err != nil {
				return err
			}
			if all {
				limit = 0
			}
			n, err := store.Update(args[0], matchV, newV, limit)
			if err != nil {
				return err
			}
			if n > 0 {
				if err := store.WriteTo(dataFile); err != nil {
					return fmt.Errorf("write %s: %w", dataFile, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d record(s)\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 1, "maximum number of records to update")
	cmd.Flags().BoolVar(&all, "all", false, "update every match")
	return cmd
}
