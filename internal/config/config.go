// Package config provides configuration management for promptline.
//
// Settings come only from PROMPTLINE_* environment variables; the prompt runs
// on every shell redraw and never reads or writes a config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/xvierd/promptline/internal/logging"
)

// EnvPrefix is prepended to every setting's environment variable.
const EnvPrefix = "PROMPTLINE"

// Git backends.
const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

// Color modes.
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// Config holds all configuration for promptline.
type Config struct {
	Abbreviate bool        `mapstructure:"abbreviate"`
	Color      string      `mapstructure:"color"`
	LogLevel   string      `mapstructure:"log_level"`
	Git        GitConfig   `mapstructure:"git"`
	Theme      ThemeConfig `mapstructure:"theme"`
}

// GitConfig selects how the repository is inspected.
type GitConfig struct {
	Backend string `mapstructure:"backend"`
	Binary  string `mapstructure:"binary"`
}

// ThemeConfig holds the colors used for each part of the prompt. Values are
// anything lipgloss.Color accepts: ANSI indices ("1") or hex ("#FF0000").
type ThemeConfig struct {
	ColorDim      string `mapstructure:"color_dim"`
	ColorSSHHost  string `mapstructure:"color_ssh_host"`
	ColorWritable string `mapstructure:"color_writable"`
	ColorReadonly string `mapstructure:"color_readonly"`
	ColorRepo     string `mapstructure:"color_repo"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorDim:      "7",
		ColorSSHHost:  "1",
		ColorWritable: "2",
		ColorReadonly: "1",
		ColorRepo:     "1",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Abbreviate: true,
		Color:      ColorAlways,
		LogLevel:   "off",
		Git: GitConfig{
			Backend: BackendExec,
			Binary:  "git",
		},
		Theme: DefaultThemeConfig(),
	}
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("abbreviate", defaults.Abbreviate)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("git.backend", defaults.Git.Backend)
	v.SetDefault("git.binary", defaults.Git.Binary)
	v.SetDefault("theme.color_dim", defaults.Theme.ColorDim)
	v.SetDefault("theme.color_ssh_host", defaults.Theme.ColorSSHHost)
	v.SetDefault("theme.color_writable", defaults.Theme.ColorWritable)
	v.SetDefault("theme.color_readonly", defaults.Theme.ColorReadonly)
	v.SetDefault("theme.color_repo", defaults.Theme.ColorRepo)
}

// Load reads the configuration from the environment. Unknown enum values are
// reported in the returned warnings and replaced by their defaults; only a
// malformed value (e.g. a non-boolean PROMPTLINE_ABBREVIATE) is an error.
func Load() (*Config, []string, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	warnings := cfg.normalize()
	return &cfg, warnings, nil
}

// normalize lowercases enum settings and resets unknown ones.
func (c *Config) normalize() []string {
	defaults := DefaultConfig()
	var warnings []string

	c.Git.Backend = strings.ToLower(strings.TrimSpace(c.Git.Backend))
	switch c.Git.Backend {
	case BackendExec, BackendGoGit:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown git backend %q, using %q", c.Git.Backend, defaults.Git.Backend))
		c.Git.Backend = defaults.Git.Backend
	}

	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case ColorAlways, ColorNever, ColorAuto:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown color mode %q, using %q", c.Color, defaults.Color))
		c.Color = defaults.Color
	}

	if c.Git.Binary == "" {
		c.Git.Binary = defaults.Git.Binary
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok && c.LogLevel != "off" {
		warnings = append(warnings, fmt.Sprintf("unknown log level %q, using %q", c.LogLevel, defaults.LogLevel))
		c.LogLevel = defaults.LogLevel
	}
	return warnings
}
