package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fieldEntry is one schema field in config.yaml.
type fieldEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataFile string       `yaml:"data_file"`
	Fields   []fieldEntry `yaml:"fields"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize satchel configuration",
		Long:  "Create the configuration directory with a default config.yaml\ndeclaring the record schema and data file.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := resolveConfigDir()

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.yaml")
	if err := writeConfigIfMissing(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Satchel initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with a sample schema if the
// file does not exist. If it already exists, the function returns nil
// (idempotent).
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		DataFile: defaultDataFile,
		Fields: []fieldEntry{
			{Name: "firstName", Type: "string"},
			{Name: "lastName", Type: "string"},
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
