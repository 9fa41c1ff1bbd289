// SPDX-License-Identifier: MIT

// Package watch reports debounced changes to a single graph file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename-and-replace keep producing events.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrInvalidDebounce indicates a non-positive debounce interval.
var ErrInvalidDebounce = errors.New("watch: debounce must be positive")

// Change is one debounced modification of the watched file.
type Change struct {
	Path string
	At   time.Time
}

// Watcher monitors one file for writes, creations and replacements.
type Watcher struct {
	Path    string
	Changes <-chan Change // read-only external channel

	changes  chan Change
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	lg       *zap.Logger
	stopOnce sync.Once
}

// New creates a watcher for path. A nil logger is replaced by zap.NewNop.
func New(path string, debounce time.Duration, lg *zap.Logger) (*Watcher, error) {
	if debounce <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidDebounce, debounce)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if lg == nil {
		lg = zap.NewNop()
	}

	// A buffer of one coalesces bursts: a pending change already means
	// "reload", so further ones are dropped.
	ch := make(chan Change, 1)
	return &Watcher{
		Path:     abs,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: debounce,
		lg:       lg,
	}, nil
}

// Start begins watching until ctx is cancelled or Stop is called. Stop must
// be called even when Start fails.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		close(w.done)
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.Path), err)
	}

	go w.loop(ctx)
	return nil
}

// Stop closes the watcher and the Changes channel. It is safe to call more
// than once, and after ctx cancellation.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.watcher.Close()
		<-w.done
		close(w.changes)
	})
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.lg.Debug("graph file event", zap.String("path", event.Name), zap.Stringer("op", event.Op))
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= w.debounce {
				w.emit(Change{Path: w.Path, At: now})
				pending = time.Time{}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.lg.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) emit(c Change) {
	select {
	case w.changes <- c:
	default:
	}
}

// Run calls fn once immediately and again after every debounced change of
// path, until ctx is cancelled. Errors from fn are logged and do not stop
// the loop; Run returns nil on cancellation.
func Run(ctx context.Context, path string, debounce time.Duration, lg *zap.Logger, fn func() error) error {
	w, err := New(path, debounce, lg)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	if err := fn(); err != nil {
		w.lg.Warn("initial run failed", zap.String("path", w.Path), zap.Error(err))
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-w.Changes:
			if !ok {
				return nil
			}
			w.lg.Debug("graph file changed", zap.String("path", c.Path))
			if err := fn(); err != nil {
				w.lg.Warn("recompute failed", zap.String("path", c.Path), zap.Error(err))
			}
		}
	}
}
