package dev

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIgnored(t *testing.T) {
	w := NewWatcher(WatcherConfig{Ignore: []string{".git", "node_modules", "*.tmp", "**/*.swp"}})

	tests := []struct {
		path string
		want bool
	}{
		{"main.go", false},
		{"scratch.tmp", true},
		{"a/b/scratch.tmp", true},
		{"a/b/editor.swp", true},
		{".git", true},
		{"repo/.git/HEAD", true},
		{"node_modules/pkg/index.js", true},
		{"templates/home.go", false},
	}
	for _, tt := range tests {
		if got := w.ignored(tt.path); got != tt.want {
			t.Errorf("ignored(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.go")
	if err := os.WriteFile(file, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})

	changed := make(chan string, 1)
	w.OnChange(func(path string) {
		select {
		case changed <- path:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watcher a moment to establish its watches.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(file, []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		if path != file {
			t.Errorf("changed path = %q, want %q", path, file)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcherIgnoresFilteredFiles(t *testing.T) {
	dir := t.TempDir()

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Ignore:   []string{"*.tmp"},
		Debounce: 20 * time.Millisecond,
	})

	changed := make(chan string, 1)
	w.OnChange(func(path string) { changed <- path })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "junk.tmp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		t.Errorf("got notification for ignored file %q", path)
	case <-time.After(300 * time.Millisecond):
	}
}
