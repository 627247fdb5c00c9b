// Package config loads the player configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/wyplayer/internal/playback"
)

const (
	defaultTooltipDelay = 1500 * time.Millisecond
	defaultShowDuration = 100 * time.Millisecond
	defaultHideDuration = 300 * time.Millisecond
	defaultVolume       = 100
)

type Config struct {
	LibrarySources []string `koanf:"library_sources"` // directories or files to load at startup
	Volume         *int     `koanf:"volume"`          // initial volume 0-100, overridden by saved preferences
	PlayMode       string   `koanf:"play_mode"`       // "loop", "random" or "singleLoop"
	Locked         bool     `koanf:"locked"`          // keep the player shown
	Notifications  bool     `koanf:"notifications"`   // mirror tooltips to desktop notifications
	MPRIS          *bool    `koanf:"mpris"`           // expose the player on D-Bus (default: true)
	LogLevel       string   `koanf:"log_level"`
	LogFile        string   `koanf:"log_file"` // default: under the XDG state dir

	Tooltip   TooltipConfig   `koanf:"tooltip"`
	Animation AnimationConfig `koanf:"animation"`
}

// TooltipConfig controls the playback notification bubble.
type TooltipConfig struct {
	DelayMS int `koanf:"delay_ms"` // time the tooltip stays visible (default: 1500)
}

// AnimationConfig controls the show/hide transition lengths.
type AnimationConfig struct {
	ShowMS int `koanf:"show_ms"` // default: 100
	HideMS int `koanf:"hide_ms"` // default: 300
}

// Load reads the user config file then ./config.toml, the latter winning.
func Load() (*Config, error) {
	return LoadFrom(configPaths()...)
}

// LoadFrom merges the given TOML files in order; missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}
	cfg.LogFile = expandPath(cfg.LogFile)
	return cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "wyplayer", "config.toml"),
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// InitialVolume returns the configured volume clamped to 0-100.
func (c *Config) InitialVolume() int {
	if c.Volume == nil {
		return defaultVolume
	}
	return min(max(*c.Volume, 0), 100)
}

// InitialMode returns the configured play mode, Loop when unset or unknown.
func (c *Config) InitialMode() playback.Mode {
	if m, ok := playback.ParseMode(c.PlayMode); ok {
		return m
	}
	return playback.ModeLoop
}

// MPRISEnabled reports whether the D-Bus media player interface is exposed.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// TooltipDelay returns how long a tooltip stays visible.
func (c *Config) TooltipDelay() time.Duration {
	return durationOr(c.Tooltip.DelayMS, defaultTooltipDelay)
}

// ShowDuration returns the length of the show transition.
func (c *Config) ShowDuration() time.Duration {
	return durationOr(c.Animation.ShowMS, defaultShowDuration)
}

// HideDuration returns the length of the hide transition.
func (c *Config) HideDuration() time.Duration {
	return durationOr(c.Animation.HideMS, defaultHideDuration)
}

func durationOr(ms int, def time.Duration) time.Duration {
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
