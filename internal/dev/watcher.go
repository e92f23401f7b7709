package dev

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch, recursively.
	Paths []string

	// Ignore patterns to skip (doublestar globs, matched against the
	// path relative to the watched root and against the base name).
	Ignore []string

	// Debounce is the quiet period before a burst of events triggers
	// one change callback.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher monitors directories for changes and coalesces bursts of
// filesystem events into single notifications.
type Watcher struct {
	config WatcherConfig

	mu       sync.Mutex
	onChange func(path string)
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{config: config}
}

// OnChange sets the callback for file changes. The path is the last
// file touched in the debounced burst.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching and blocks until ctx is done or the underlying
// watcher fails.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, root := range w.config.Paths {
		if err := w.addRecursive(fw, root); err != nil {
			return err
		}
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.ignored(ev.Name) {
				continue
			}
			// New directories need their own watches.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(fw, ev.Name)
				}
			}
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.config.Debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.mu.Lock()
			fn := w.onChange
			w.mu.Unlock()
			if fn != nil {
				fn(pending)
			}

		case _, ok := <-fw.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// addRecursive watches root and every non-ignored directory under it.
func (w *Watcher) addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.ignored(path) {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

// ignored reports whether path matches any ignore pattern.
func (w *Watcher) ignored(path string) bool {
	base := filepath.Base(path)
	rel := filepath.ToSlash(path)
	for _, pattern := range w.config.Ignore {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		// A pattern naming a directory ignores everything under it.
		if !strings.ContainsAny(pattern, "*?[{") &&
			strings.Contains("/"+rel+"/", "/"+pattern+"/") {
			return true
		}
	}
	return false
}
