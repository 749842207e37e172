package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"imstyles/fonts"
	"imstyles/theme"
)

// Settings holds the user configurable options. Values come from, in
// increasing priority: defaults, imstyles.{yaml,json,toml}, IMSTYLES_*
// environment variables and command line flags.
type Settings struct {
	Theme    string  `mapstructure:"theme"`
	FontSize float64 `mapstructure:"font_size"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	Debug    bool    `mapstructure:"debug"`
	LogDir   string  `mapstructure:"log_dir"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("theme", theme.Default().Name())
	v.SetDefault("font_size", float64(fonts.DefaultSize))
	v.SetDefault("width", 1100)
	v.SetDefault("height", 700)
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", "")

	v.SetEnvPrefix("IMSTYLES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadSettings reads the config file, if any, and decodes all sources into
// Settings. An explicit configFile must exist; the default search paths
// may be empty.
func loadSettings(v *viper.Viper, configFile string) (Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("imstyles")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "imstyles"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// validate checks s and rewrites Theme to the canonical theme name.
func (s *Settings) validate() error {
	th, err := theme.Lookup(s.Theme)
	if err != nil {
		return fmt.Errorf("config theme: %w", err)
	}
	s.Theme = th.Name()
	if err := fonts.ValidateSize(float32(s.FontSize)); err != nil {
		return fmt.Errorf("config font_size: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("config window size %dx%d must be positive", s.Width, s.Height)
	}
	return nil
}

// bindFlags lets command line flags override config keys of the same name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
