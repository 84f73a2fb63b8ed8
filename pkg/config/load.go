package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/bird/config.toml
//  2. ~/.config/bird/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, cfg.Validate()
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys missing from
// the input keep their defaults; a [reveal] preset fills in every reveal
// key the input leaves out.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	applyPreset(cfg, md)
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		General: GeneralConfig{
			LogLevel:    "info",
			LogFile:     filepath.Join(xdgStateHome(home), "bird", "bird.log"),
			NarrowWidth: 90,
			MaxWidth:    140,
			Mouse:       true,
		},
		Content: ContentConfig{
			Debounce: Duration{150 * time.Millisecond},
		},
		Header: HeaderConfig{
			ScrollThreshold: 50,
		},
		Reveal: defaultPreset(),
		Image: ImageConfig{
			Enabled:        true,
			Protocol:       "auto",
			MaxCacheSizeMB: 32,
			Workers:        4,
		},
		Theme: ThemeConfig{
			Name: "bird",
		},
	}
}

// applyPreset copies the named motion preset into every reveal key the
// file did not set.
func applyPreset(cfg *Config, md toml.MetaData) {
	if !md.IsDefined("reveal", "preset") {
		return
	}
	p := MotionPreset(cfg.Reveal.Preset)
	if !md.IsDefined("reveal", "threshold") {
		cfg.Reveal.Threshold = p.Threshold
	}
	if !md.IsDefined("reveal", "duration") {
		cfg.Reveal.Duration = p.Duration
	}
	if !md.IsDefined("reveal", "offset_rows") {
		cfg.Reveal.OffsetRows = p.OffsetRows
	}
	if !md.IsDefined("reveal", "frame_interval") {
		cfg.Reveal.FrameInterval = p.FrameInterval
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BIRD_PROTOCOL"); v != "" {
		cfg.Image.Protocol = v
	}
	if v := os.Getenv("BIRD_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("BIRD_CONTENT"); v != "" {
		cfg.Content.Path = v
	}
	if v := os.Getenv("BIRD_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "bird", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "bird", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
