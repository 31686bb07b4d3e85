package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	var (
		limit int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "find <field> <value>",
		Short: "Find records whose field equals a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore()
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
			found, err := store.Find(args[0], v, limit)
			if err != nil {
				return err
			}
			for _, r := range found {
				fmt.Fprintln(cmd.OutOrStdout(), formatRecord(store, r))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 1, "maximum number of matches to print")
	cmd.Flags().BoolVar(&all, "all", false, "print every match")
	return cmd
}
