// Package watch re-runs a render callback whenever the watched graph
// definition file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RenderFunc is invoked after a debounced change to the watched file.
type RenderFunc func(ctx context.Context, path string) error

// Watcher monitors a graph definition file and triggers re-renders
type Watcher struct {
	path         string
	render       RenderFunc
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	stopChan     chan struct{}
	changeChan   chan struct{}
	debounceTime time.Duration
}

// New creates a watcher for the given definition file. The render callback
// runs once per debounced burst of file events.
func New(path string, render RenderFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Resolve absolute path for consistent watching
	absPath, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to resolve definition path: %w", err)
	}

	return &Watcher{
		path:         absPath,
		render:       render,
		watcher:      fsWatcher,
		stopChan:     make(chan struct{}),
		changeChan:   make(chan struct{}, 1),
		debounceTime: 300 * time.Millisecond, // Debounce editor save bursts
	}, nil
}

// SetDebounce overrides the debounce interval. Must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounceTime = d
}

// Start begins monitoring the definition file. Watches the containing
// directory rather than the file itself, which survives rename-based saves.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	slog.Info("Watching graph definition", "path", w.path)

	go w.watchLoop(ctx)
	go w.renderLoop(ctx)

	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	close(w.stopChan)
	return w.watcher.Close()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	fileName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only process events for the watched file
			if filepath.Base(event.Name) != fileName {
				continue
			}

			switch {
			case event.Op&fsnotify.Write == fsnotify.Write:
				slog.Debug("Definition write detected", "file", event.Name)
				w.triggerRender()
			case event.Op&fsnotify.Create == fsnotify.Create:
				slog.Debug("Definition create detected", "file", event.Name)
				w.triggerRender()
			case event.Op&fsnotify.Rename == fsnotify.Rename:
				slog.Debug("Definition rename detected", "file", event.Name)
				w.triggerRender()
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				slog.Warn("Definition file removed", "file", event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}

// renderLoop handles debounced re-renders
func (w *Watcher) renderLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.changeChan:
			// Reset/start debounce timer
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				if err := w.render(ctx, w.path); err != nil {
					slog.Error("Re-render failed", "error", err)
				}
			})
		}
	}
}

// triggerRender requests a debounced re-render
func (w *Watcher) triggerRender() {
	select {
	case w.changeChan <- struct{}{}:
		// Render triggered
	default:
		// Render already pending
	}
}
