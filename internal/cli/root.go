// Package cli implements the satchel command-line interface: a thin shell
// over the record store that loads its schema and data file location from
// a config directory.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dukaforge/satchel/pkg/satchel"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	debug     bool
}

var flags rootFlags

// cfg holds the loaded configuration. Set by PersistentPreRunE so all
// subcommands can use it.
var cfg *viper.Viper

// NewRootCmd creates the top-level "satchel" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "satchel",
		Short:   "A typed record store over a brace-delimited text format",
		Long:    "Satchel parses brace-delimited key/value text into typed records\nand supports querying, mutation, and serialization back to text.",
		Version: satchel.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(resolveConfigDir())
			if err != nil {
				return err
			}
			cfg = v
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .satchel)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "dump records after loading")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newFindCmd())
	root.AddCommand(newInsertCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newExportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("SATCHEL_CONFIG_DIR"); v != "" {
		return v
	}
	return ".satchel"
}
