package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plankworks/cabd/pkg/model"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module.yaml")
	if err := Save(path, model.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	changes := make(chan model.ModuleConfig, 4)
	w, err := Watch(path, 50*time.Millisecond,
		func(cfg model.ModuleConfig) { changes <- cfg },
		func(err error) { t.Logf("watch error: %v", err) })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	updated := model.DefaultConfig()
	updated.WidthMm = 1800
	if err := Save(path, updated); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changes:
		if cfg.WidthMm != 1800 {
			t.Errorf("reloaded WidthMm = %v, want 1800", cfg.WidthMm)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload callback after write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module.yaml")
	if err := Save(path, model.DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	changes := make(chan model.ModuleConfig, 4)
	w, err := Watch(path, 50*time.Millisecond,
		func(cfg model.ModuleConfig) { changes <- cfg }, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changes:
		t.Error("sibling file write should not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
