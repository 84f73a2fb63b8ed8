package content

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for writes to settle before
// reloading.
const DefaultDebounce = 150 * time.Millisecond

// ReloadFunc receives each reload result. On error the previous catalog
// should stay in use.
type ReloadFunc func(c *Catalog, err error)

// Watch reloads the catalog at path whenever it changes and hands the
// result to fn. It watches the parent directory so editors that replace
// the file by rename are seen. Watch returns once the watcher is set up;
// reloading stops when ctx is cancelled.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *slog.Logger, fn ReloadFunc) error {
	if path == "" {
		return fmt.Errorf("content: watch: no catalog path")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("content: watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("content: watch %s: %w", filepath.Dir(abs), err)
	}

	go watchLoop(ctx, w, abs, debounce, logger, fn)
	return nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, debounce time.Duration, logger *slog.Logger, fn ReloadFunc) {
	defer w.Close()

	// Stopped until the first event; Reset never delivers a stale tick.
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("catalog changed", "path", path, "op", ev.Op.String())
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("catalog watcher error", "err", err)

		case <-timer.C:
			c, err := Load(path)
			if err != nil {
				logger.Warn("catalog reload failed", "path", path, "err", err)
			} else {
				logger.Info("catalog reloaded", "path", path)
			}
			fn(c, err)
		}
	}
}
