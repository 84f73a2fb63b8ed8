package image

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

type loaded struct {
	img image.Image
	err error
}

// Loader decodes image files once and remembers the result, including
// failures, so a missing file is not retried on every frame.
type Loader struct {
	mu    sync.Mutex
	items map[string]loaded
}

// NewLoader returns an empty loader.
func NewLoader() *Loader {
	return &Loader{items: make(map[string]loaded)}
}

// Load returns the decoded image at path.
func (l *Loader) Load(path string) (image.Image, error) {
	l.mu.Lock()
	if it, ok := l.items[path]; ok {
		l.mu.Unlock()
		return it.img, it.err
	}
	l.mu.Unlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		err = fmt.Errorf("image: load %s: %w", path, err)
	}

	l.mu.Lock()
	l.items[path] = loaded{img: img, err: err}
	l.mu.Unlock()
	return img, err
}

// Loaded reports whether path has been attempted, and whether it decoded.
func (l *Loader) Loaded(path string) (attempted, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, found := l.items[path]
	return found, found && it.err == nil
}

// Forget drops every remembered result, e.g. after the catalog changed.
func (l *Loader) Forget() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = make(map[string]loaded)
}

// Preload decodes paths concurrently with at most workers goroutines.
// Decode failures are remembered, not returned: a missing picture is
// drawn as a placeholder. Preload only fails when ctx is cancelled.
func (l *Loader) Preload(ctx context.Context, paths []string, workers int) (failed int, err error) {
	if workers <= 0 {
		workers = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	for _, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := l.Load(p); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failed, fmt.Errorf("image: preload: %w", err)
	}
	return failed, nil
}
