package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerhand/internal/rng"
	"pokerhand/internal/util"
)

// Config provides configuration for pokerhand
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
	RNG struct {
		Source string `yaml:"source" envconfig:"source"`
		Seed   int64  `yaml:"seed" envconfig:"seed"`
	} `yaml:"rng" envconfig:"rng"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.RNG.Source = rng.SourceCrypto

	return cfg
}

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

// Load will load the configuration
// A missing config file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERHAND_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("pokerhand", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Generator returns the random source the configuration names
func (c Config) Generator() (rng.Generator, error) {
	return rng.New(c.RNG.Source, c.RNG.Seed)
}
