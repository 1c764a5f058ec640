// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the keyboard configuration from a TOML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/openvirtualkeyboard/ovk/layouts"
)

// Config holds application configuration.
type Config struct {
	Layouts    LayoutsConfig
	Input      InputConfig
	Positioner PositionerConfig
}

// LayoutsConfig selects where layouts come from.
type LayoutsConfig struct {
	// Dir is a directory of layouts on disk. Empty means the built-in
	// layouts.
	Dir string `mapstructure:"dir"`
	// Root is the directory below Dir holding one directory per locale.
	Root             string   `mapstructure:"root"`
	DefaultLocale    string   `mapstructure:"default_locale"`
	FallbackSuffixes []string `mapstructure:"fallback_suffixes"`
}

// InputConfig describes the input method collaborator.
type InputConfig struct {
	// HintEnv names the environment variable holding the "lang=" hint.
	HintEnv string `mapstructure:"hint_env"`
}

// PositionerConfig holds keyboard window settings.
type PositionerConfig struct {
	// Screen pins the keyboard to a screen; negative follows focus.
	Screen         int           `mapstructure:"screen"`
	Animate        bool          `mapstructure:"animate"`
	Duration       time.Duration `mapstructure:"duration"`
	KeyboardHeight float32       `mapstructure:"keyboard_height"`
}

// Load reads configuration from file and env. The file is $OVK_CONFIG
// or ~/.config/ovk/config.toml; env var overrides use prefix OVK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("layouts.dir", "")
	v.SetDefault("layouts.root", ".")
	v.SetDefault("layouts.default_locale", string(layouts.DefaultLocale))
	v.SetDefault("layouts.fallback_suffixes", []string{})
	v.SetDefault("input.hint_env", "QT_IM_MODULE")
	v.SetDefault("positioner.screen", -1)
	v.SetDefault("positioner.animate", true)
	v.SetDefault("positioner.duration", "250ms")
	v.SetDefault("positioner.keyboard_height", 240)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("OVK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "ovk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("OVK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Resolver returns the locale resolver described by the configuration:
// the configured suffixes first, then the likely region and the same
// language fallbacks.
func (c LayoutsConfig) Resolver() layouts.Resolver {
	var fallbacks []layouts.Fallback
	for _, s := range c.FallbackSuffixes {
		fallbacks = append(fallbacks, layouts.Suffix(s))
	}
	fallbacks = append(fallbacks, layouts.LikelyRegion(), layouts.SameLanguage())
	return layouts.Resolver{
		Fallbacks: fallbacks,
		Default:   layouts.LocaleID(c.DefaultLocale),
	}
}
