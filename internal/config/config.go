// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	"github.com/spf13/viper"
)

// LibraryConfig holds the settings for the webtoon library directory.
type LibraryConfig struct {
	Path string `mapstructure:"path"`
	// OnInvalid selects what a catalog build does with archives whose
	// names do not follow the naming convention: "skip" or "fail".
	OnInvalid string `mapstructure:"on_invalid"`
}

// ExportConfig holds the settings for spreadsheet exports.
type ExportConfig struct {
	Path string `mapstructure:"path"`
}

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port         int           `mapstructure:"port"`
	ScanInterval int           `mapstructure:"scan_interval"`
	Library      LibraryConfig `mapstructure:"library"`
	Export       ExportConfig  `mapstructure:"export"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory

	// --- Environment Variable Overrides ---
	// This tells Viper to look for environment variables with a "TOONDEX_" prefix.
	// e.g., TOONDEX_LIBRARY_PATH will override the `library.path` key.
	viper.SetEnvPrefix("TOONDEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("port", 8080)
	viper.SetDefault("scan_interval", 60)
	viper.SetDefault("library.path", "./webtoons")
	viper.SetDefault("library.on_invalid", "skip")
	viper.SetDefault("export.path", ".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
