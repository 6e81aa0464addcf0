// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the settings of a vet run. Values come from, in increasing
// priority: defaults, hanavet.yaml, HANAVET_* environment variables, flags.
type Config struct {
	Format    string    `mapstructure:"format"`
	Log       LogConfig `mapstructure:"log"`
	CacheSize int       `mapstructure:"cache_size"`
	// Tags restricts the report to tags whose name contains one of these.
	Tags []string `mapstructure:"tags"`
	// Require lists operations every reported tag must resolve.
	Require []string `mapstructure:"require"`
	// Strict also rejects required operations resolved by a default.
	Strict bool `mapstructure:"strict"`
	// Color is auto, always or never.
	Color string `mapstructure:"color"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

const envPrefix = "HANAVET"

// newViper returns a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("hanavet")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", FormatText)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetDefault("cache_size", 0)
	v.SetDefault("tags", []string{})
	v.SetDefault("require", []string{})
	v.SetDefault("strict", false)
	v.SetDefault("color", "auto")
	return v
}

// loadConfig reads the config file, if any, and decodes the merged settings.
// An explicit path must exist; the default hanavet.yaml is optional.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("hanavet: read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("hanavet: decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("hanavet: unknown format %q", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("hanavet: unknown color mode %q", c.Color)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("hanavet: negative cache_size %d", c.CacheSize)
	}
	return nil
}
