package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack-server/internal/util"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool

	// Addr is the listen address
	Addr string `yaml:"addr" envconfig:"addr"`

	// StoragePath is the SQLite database file for persisted game state.
	// Empty means state is kept in memory only.
	StoragePath string `yaml:"storagePath" envconfig:"storage_path"`

	// StartingBankroll is the bankroll for a brand-new player
	StartingBankroll int `yaml:"startingBankroll" envconfig:"starting_bankroll"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
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
// A missing config file is not an error; defaults and environment variables
// still apply.
func Load() error {
	config = Config{
		Addr:             ":5000",
		StartingBankroll: 1000,
	}

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close() // nolint:errcheck

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
