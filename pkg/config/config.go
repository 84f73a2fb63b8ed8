// Package config loads bird's TOML configuration: search paths, env
// overrides, motion presets and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the complete bird configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Content ContentConfig `toml:"content"`
	Header  HeaderConfig  `toml:"header"`
	Reveal  RevealConfig  `toml:"reveal"`
	Image   ImageConfig   `toml:"image"`
	Theme   ThemeConfig   `toml:"theme"`
}

// GeneralConfig holds logging and layout settings.
type GeneralConfig struct {
	LogLevel    string `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFile     string `toml:"log_file"`
	NarrowWidth int    `toml:"narrow_width" validate:"min=20,max=400"` // columns; below this grids collapse
	MaxWidth    int    `toml:"max_width" validate:"min=40,max=400"`    // page content is centered within this
	Mouse       bool   `toml:"mouse"`
}

// ContentConfig locates the content catalog.
type ContentConfig struct {
	Path     string   `toml:"path"` // empty uses the embedded catalog
	Watch    bool     `toml:"watch"`
	Debounce Duration `toml:"debounce"`
}

// HeaderConfig controls the header style switch.
type HeaderConfig struct {
	ScrollThreshold int `toml:"scroll_threshold" validate:"min=1"` // px, crossed when the offset exceeds it
}

// RevealConfig controls the scroll-into-view animation.
type RevealConfig struct {
	Preset        string   `toml:"preset" validate:"omitempty,oneof=default fast reduced"`
	Threshold     float64  `toml:"threshold" validate:"gt=0,lte=1"`
	Duration      Duration `toml:"duration"`
	OffsetRows    int      `toml:"offset_rows" validate:"min=0,max=10"`
	FrameInterval Duration `toml:"frame_interval"`
}

// ImageConfig controls terminal image rendering.
type ImageConfig struct {
	Enabled        bool   `toml:"enabled"`
	Protocol       string `toml:"protocol" validate:"omitempty,oneof=auto kitty iterm2 sixel halfblocks none"`
	MaxCacheSizeMB int    `toml:"max_cache_size_mb" validate:"min=0,max=1024"`
	CellHeightPx   int    `toml:"cell_height_px" validate:"min=0,max=128"` // 0 detects from the terminal
	Workers        int    `toml:"workers" validate:"min=0,max=32"`
}

// ThemeConfig selects the palette.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"` // optional TOML theme registered under its own name
}

var configValidate = validator.New()

// Validate checks field ranges and enum values.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("config: %s: invalid value %v (%s)", f.Namespace(), f.Value(), f.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	if c.Reveal.FrameInterval.Duration <= 0 {
		return fmt.Errorf("config: reveal.frame_interval must be positive")
	}
	return nil
}
