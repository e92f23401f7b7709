package cache

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	payload := []byte(`{"name":"x"}`)
	body := []byte("<div>x</div>")
	if err := s.Put(ctx, "home", payload, body); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get(ctx, "home", payload)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if !bytes.Equal(got, body) {
		t.Errorf("got %q, want %q", got, body)
	}
}

func TestGetMiss(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "home", []byte("a"), []byte("body")); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Different payload, same template.
	if _, ok, err := s.Get(ctx, "home", []byte("b")); err != nil || ok {
		t.Errorf("get: ok=%v err=%v, want miss", ok, err)
	}
	// Different template, same payload.
	if _, ok, err := s.Get(ctx, "other", []byte("a")); err != nil || ok {
		t.Errorf("get: ok=%v err=%v, want miss", ok, err)
	}
}

func TestPutReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	payload := []byte("p")

	if err := s.Put(ctx, "t", payload, []byte("old")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "t", payload, []byte("new")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := s.Get(ctx, "t", payload)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != "new" {
		t.Errorf("got %q, want %q", got, "new")
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "t", []byte("p"), []byte("body")); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Nothing is older than an hour yet.
	n, err := s.Prune(ctx, time.Hour)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 0 {
		t.Errorf("pruned %d entries, want 0", n)
	}

	// Everything is older than a negative age.
	n, err = s.Prune(ctx, -time.Second)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d entries, want 1", n)
	}

	if _, ok, _ := s.Get(ctx, "t", []byte("p")); ok {
		t.Error("entry survived pruning")
	}
}
