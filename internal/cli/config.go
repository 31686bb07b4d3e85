// Config loading for the satchel CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyDataFile = "data_file"
	cfgKeyFields   = "fields"

	// defaultDataFile is used when no data file is configured.
	defaultDataFile = "records.txt"
)

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config.yaml is not an error; "satchel init" creates one.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDataFile, defaultDataFile)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
