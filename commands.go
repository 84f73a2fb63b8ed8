package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/birdcapital/bird/pkg/app"
	"github.com/birdcapital/bird/pkg/content"
	"github.com/birdcapital/bird/pkg/image"
	"github.com/birdcapital/bird/pkg/terminal"
	"github.com/birdcapital/bird/pkg/theme"
)

// --- Global Command Variables ---
var (
	configPath   string
	contentPath  string
	themeName    string
	watchContent bool
	verbose      bool

	renderWidth    int
	renderHeight   int
	renderScroll   int
	renderAnchor   string
	renderOpen     int
	renderProtocol string

	rootCmd = &cobra.Command{
		Use:           "bird",
		Short:         "The Bird fund site, in your terminal",
		Long:          `bird renders the Bird fund page as a scrollable terminal app with reveal-on-scroll sections, a compacting header, and an FAQ accordion.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the page to stdout",
		Long: `render lays the page out at the given size, scrolls to an offset or
anchor, and prints the settled frame. Blocks in view are shown fully
revealed.`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	validateCmd = &cobra.Command{
		Use:   "validate [catalog]",
		Short: "Check a content catalog and the configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}

	themesCmd = &cobra.Command{
		Use:   "themes",
		Short: "List the available palettes",
		Args:  cobra.NoArgs,
		RunE:  runThemes,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bird %s (%s) built %s\n", version, commit, date)
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to configuration file (default: ~/.config/bird/config.toml)")
	pf.StringVar(&contentPath, "content", "", "Content catalog (YAML); empty uses the built-in copy")
	pf.StringVar(&themeName, "theme", "", "Palette name or \"auto\"")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().BoolVarP(&watchContent, "watch", "w", false, "Reload the catalog when it changes")

	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Columns (0 = terminal width)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Rows (0 = terminal height)")
	renderCmd.Flags().IntVar(&renderScroll, "scroll", 0, "Scroll offset in rows")
	renderCmd.Flags().StringVar(&renderAnchor, "anchor", "", "Section anchor to scroll to, e.g. faq")
	renderCmd.Flags().IntVar(&renderOpen, "open", 0, "FAQ item shown open (-1 for none)")
	renderCmd.Flags().StringVar(&renderProtocol, "protocol", "", "Image protocol (auto|kitty|iterm2|sixel|halfblocks|none)")

	rootCmd.AddCommand(renderCmd, validateCmd, themesCmd, versionCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("stdout is not a terminal; use `bird render` for static output")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := content.Load(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	caps := terminal.DetectCapabilities(cfg.Image.Protocol)
	th := resolveTheme(cfg, caps, logger)
	logger.Info("starting",
		"version", version,
		"terminal", caps.Term.String(),
		"protocol", caps.Protocol.String(),
		"theme", th.Name,
		"content", cfg.Content.Path,
	)

	// Inline protocols cannot be redrawn cell by cell, so the live page
	// always uses halfblocks.
	images := image.NewRenderer(caps, cfg.Image).WithLogger(logger).TextOnly()
	if failed, err := images.Loader().Preload(ctx, cat.Images(), cfg.Image.Workers); err != nil {
		return err
	} else if failed > 0 {
		logger.Warn("some images could not be loaded", "failed", failed)
	}

	zones := zone.New()
	defer zones.Close()

	model := app.New(app.Options{
		Config:     *cfg,
		Catalog:    cat,
		Theme:      th,
		Images:     images,
		CellHeight: caps.Size.CellHeight(cfg.Image.CellHeightPx),
		Zones:      zones,
		Logger:     logger,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.General.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if cfg.Content.Watch {
		err := content.Watch(ctx, cfg.Content.Path, cfg.Content.Debounce.Duration, logger, func(c *content.Catalog, err error) {
			p.Send(app.CatalogEvent{Catalog: c, Err: err, Timestamp: time.Now()})
		})
		if err != nil {
			logger.Warn("content watch disabled", "error", err)
		}
	}

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program exited", "error", err)
		return err
	}
	logger.Info("stopped")
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if renderProtocol != "" {
		cfg.Image.Protocol = renderProtocol
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	caps := terminal.DetectCapabilities(cfg.Image.Protocol)
	th := resolveTheme(cfg, caps, logger)
	images := image.NewRenderer(caps, cfg.Image).WithLogger(logger)
	if failed, err := images.Loader().Preload(cmd.Context(), cat.Images(), cfg.Image.Workers); err != nil {
		return err
	} else if failed > 0 {
		logger.Debug("images missing", "failed", failed)
	}

	w, h := renderWidth, renderHeight
	if w <= 0 || h <= 0 {
		size := terminal.GetSize()
		if w <= 0 {
			w = size.Cols
		}
		if h <= 0 {
			h = size.Rows
		}
	}

	out, err := app.Snapshot(app.Options{
		Config:     *cfg,
		Catalog:    cat,
		Theme:      th,
		Images:     images,
		CellHeight: caps.Size.CellHeight(cfg.Image.CellHeightPx),
		Logger:     logger,
	}, app.Frame{
		Width:  w,
		Height: h,
		Scroll: renderScroll,
		Anchor: renderAnchor,
		Open:   renderOpen,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Content.Path
	if len(args) == 1 {
		path = args[0]
	}

	cat, err := content.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	name := path
	if name == "" {
		name = "built-in catalog"
	}
	fmt.Fprintf(out, "%s: ok\n", name)
	fmt.Fprintf(out, "  anchors:   %v\n", cat.Anchors())
	fmt.Fprintf(out, "  nav links: %d\n", len(cat.Nav.Links))
	fmt.Fprintf(out, "  faq items: %d\n", len(cat.FAQ.Items))

	missing := 0
	for _, p := range cat.Images() {
		if _, err := os.Stat(p); err != nil {
			fmt.Fprintf(out, "  missing image: %s\n", p)
			missing++
		}
	}
	fmt.Fprintf(out, "  images:    %d (%d missing, drawn as placeholders)\n", len(cat.Images()), missing)
	return nil
}

func runThemes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	current := resolveTheme(cfg, terminal.DetectCapabilities(cfg.Image.Protocol), logger).Name
	out := cmd.OutOrStdout()
	for _, name := range theme.Names() {
		t := theme.Get(name)
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-10s %s%s%s%s%s\n", marker, name,
			theme.Swatch(t.Background, 3),
			theme.Swatch(t.Accent, 3),
			theme.Swatch(t.Pink, 3),
			theme.Swatch(t.Yellow, 3),
			theme.Swatch(t.Red, 3),
		)
	}
	return nil
}
