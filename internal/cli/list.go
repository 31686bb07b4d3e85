package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every record in the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := loadStore()
			if err != nil {
				return err
			}
			if flags.debug {
				store.Dump(cmd.OutOrStdout())
				return nil
			}
			for _, r := range store.Records() {
				fmt.Fprintln(cmd.OutOrStdout(), formatRecord(store, r))
			}
			return nil
		},
	}
}
