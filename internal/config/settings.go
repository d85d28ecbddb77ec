// Package config loads application settings and menu definition files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds the application configuration.
type Settings struct {
	MenuFile         string `mapstructure:"menu"`
	InitialPanel     string `mapstructure:"initial_panel"`
	MaxHeight        int    `mapstructure:"max_height"`
	TransitionFrames int    `mapstructure:"frames"`
	Strict           bool   `mapstructure:"strict"`
	LogFile          string `mapstructure:"log_file"`
	LogLevel         string `mapstructure:"log_level"`
}

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"menu":          "menu",
	"initial-panel": "initial_panel",
	"max-height":    "max_height",
	"frames":        "frames",
	"strict":        "strict",
	"log-file":      "log_file",
	"log-level":     "log_level",
}

// RegisterFlags defines the command-line flags understood by Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("menu", "m", "", "menu definition file (.yaml, .toml or .json/.jsonc)")
	fs.String("initial-panel", "", "id of the panel shown first")
	fs.Int("max-height", 0, "maximum menu height in rows (0 = unbounded)")
	fs.Int("frames", 6, "animation frames per panel transition")
	fs.Bool("strict", false, "treat menu validation problems as fatal")
	fs.String("log-file", "", "write JSON logs to this file")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("config", "", "settings file (default $XDG_CONFIG_HOME/ctxmenu/config.toml)")
}

// DefaultPath returns the settings file looked up when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "ctxmenu", "config.toml")
}

// Load reads settings from defaults, the settings file, CTXMENU_ env vars and
// fs, later sources overriding earlier ones. Only flags that were set on the
// command line override the file. fs may be nil.
func Load(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault("menu", "")
	v.SetDefault("initial_panel", "")
	v.SetDefault("max_height", 0)
	v.SetDefault("frames", 6)
	v.SetDefault("strict", false)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetConfigType("toml")

	explicit := os.Getenv("CTXMENU_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			explicit = f.Value.String()
		}
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CTXMENU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.MaxHeight < 0 {
		return Settings{}, fmt.Errorf("max_height must not be negative, got %d", s.MaxHeight)
	}
	if s.TransitionFrames < 1 {
		s.TransitionFrames = 1
	}
	return s, nil
}
