package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ims-labs/timsdf/pkg/log"
)

func TestStoreWatcherSignalsOnCatalogueWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.tdf")
	if err := os.WriteFile(path, []byte("seed"), 0o644); err != nil {
		t.Fatalf("seed catalogue: %v", err)
	}

	w, err := NewStoreWatcher(dir, 10*time.Millisecond, log.NewNoop())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	if err := os.WriteFile(path, []byte("seed+frame"), 0o644); err != nil {
		t.Fatalf("append catalogue: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("no notification after catalogue write")
	}
}

func TestStoreWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewStoreWatcher(dir, 10*time.Millisecond, log.NewNoop())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	select {
	case <-w.Events():
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStoreFile(t *testing.T) {
	cases := map[string]bool{
		"/d/sample.d/analysis.tdf":         true,
		"/d/sample.d/analysis.tdf_bin":     true,
		"/d/sample.d/analysis.tdf-journal": true,
		"/d/sample.d/analysis.tdf-wal":     true,
		"/d/sample.d/notes.txt":            false,
		"/d/sample.d/other.sqlite":         false,
	}
	for path, want := range cases {
		if got := storeFile(path); got != want {
			t.Errorf("storeFile(%q) = %v, want %v", path, got, want)
		}
	}
}
