package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"cribbage-trainer/internal/util"
)

// Config provides configuration for the cribbage trainer
type Config struct {
	loaded bool

	// Logfile is the file the tab-separated answer records are appended to
	Logfile string `yaml:"logfile" envconfig:"logfile"`

	// HistoryPath is the SQLite database for answered deals. Empty disables
	// the history store.
	HistoryPath string `yaml:"historyPath" envconfig:"history_path"`

	// Colors is one of auto, always, or never
	Colors string `yaml:"colors" envconfig:"colors"`

	Log struct {
		Level string `yaml:"level" envconfig:"log_level"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is not an error; env variables and defaults still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("CRIBBAGE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cribbage", &config); err != nil {
		return err
	}

	if config.Logfile == "" {
		config.Logfile = util.Getenv("USER", "player") + ".cribbage.log"
	}

	if config.Colors == "" {
		config.Colors = "auto"
	}

	config.loaded = true
	return nil
}
