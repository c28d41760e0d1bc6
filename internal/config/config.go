// Package config loads promptdeck settings with the following precedence
// (highest to lowest):
//
//  1. Runtime overrides from CLI flags
//  2. Environment variables (PROMPTDECK_*)
//  3. Config file ($XDG_CONFIG_HOME/promptdeck/config.yaml)
//  4. Defaults
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Schema is the resolved configuration.
type Schema struct {
	Database Database `mapstructure:"database"`
	Log      Log      `mapstructure:"log"`
}

type Database struct {
	Path string `mapstructure:"path"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// RuntimeOverrides carries CLI flag values that take precedence over every
// other config source.
type RuntimeOverrides struct {
	DBPath   *string
	LogLevel *string
	LogFile  *string
}

// New loads the configuration, applying overrides last.
func New(overrides *RuntimeOverrides) (*Schema, error) {
	v := viper.New()

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}
	v.SetDefault("database.path", filepath.Join(dataDir, "promptdeck.db"))
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix("PROMPTDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(configDir, "promptdeck"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read config file")
			}
		}
	}

	var cfg Schema
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if overrides != nil {
		if overrides.DBPath != nil {
			cfg.Database.Path = *overrides.DBPath
		}
		if overrides.LogLevel != nil {
			cfg.Log.Level = *overrides.LogLevel
		}
		if overrides.LogFile != nil {
			cfg.Log.File = *overrides.LogFile
		}
	}

	return &cfg, nil
}

func defaultDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "promptdeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}
	return filepath.Join(home, ".local", "share", "promptdeck"), nil
}
