// bird renders the Bird fund site in the terminal.
//
// The page scrolls like the fund's website: sections fade in as they enter
// the viewport, the header compacts once the page moves, and the FAQ is an
// accordion with one answer open at a time.
//
// Usage:
//
//	bird [flags]                 interactive page (requires a terminal)
//	bird render [flags]          print one frame to stdout
//	bird validate [catalog]      check a content catalog
//	bird themes                  list palettes
//	bird version                 print build information
//
// Flags:
//
//	--config string   Path to configuration file (default: ~/.config/bird/config.toml)
//	--content string  Content catalog (YAML); empty uses the built-in copy
//	--theme string    Palette name or "auto"
//	--watch           Reload the catalog when it changes
//	--verbose         Enable debug logging
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/birdcapital/bird/pkg/config"
	"github.com/birdcapital/bird/pkg/terminal"
	"github.com/birdcapital/bird/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bird: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies command-line
// overrides on top of it.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if contentPath != "" {
		cfg.Content.Path = contentPath
	}
	if themeName != "" {
		cfg.Theme.Name = themeName
	}
	if watchContent {
		cfg.Content.Watch = true
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveTheme registers the optional theme file and returns the palette
// the configuration asks for.
func resolveTheme(cfg *config.Config, caps terminal.Capabilities, logger *slog.Logger) theme.Theme {
	if cfg.Theme.File != "" {
		t, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			logger.Warn("theme file ignored", "path", cfg.Theme.File, "error", err)
		} else {
			theme.Register(t)
			if cfg.Theme.Name == "" || cfg.Theme.Name == "auto" {
				cfg.Theme.Name = t.Name
			}
		}
	}

	name := caps.ThemeFor(cfg.Theme.Name)
	t, ok := theme.Lookup(name)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", name)
		t = theme.Get("bird")
	}
	theme.SetCurrent(t.Name)
	return t
}

// newLogger builds the text logger. The interactive page owns the screen,
// so toFile sends records only to the configured log file; otherwise they
// also go to stderr.
func newLogger(cfg *config.Config, toFile bool) (*slog.Logger, func(), error) {
	level := parseLevel(cfg.General.LogLevel)
	closer := func() {}

	var w io.Writer = os.Stderr
	if toFile {
		w = io.Discard
	}
	if cfg.General.LogFile != "" {
		if err := ensureLogDir(cfg.General.LogFile); err != nil {
			return nil, closer, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("failed to open log file: %w", err)
		}
		closer = func() { f.Close() }
		if toFile {
			w = f
		} else {
			w = io.MultiWriter(os.Stderr, f)
		}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogDir creates the parent directory of logFile if it does not exist.
func ensureLogDir(logFile string) error {
	dir := filepath.Dir(logFile)
	return os.MkdirAll(dir, 0o755)
}
