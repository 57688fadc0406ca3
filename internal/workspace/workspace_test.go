package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/daydemir/aoc/internal/config"
)

func TestFindFrom(t *testing.T) {
	t.Run("config in ancestor", func(t *testing.T) {
		root := t.TempDir()
		if _, err := Init(root, false); err != nil {
			t.Fatalf("Init() error: %v", err)
		}
		nested := filepath.Join(root, "adventofcode", "solutions")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		if got := FindFrom(nested); got != root {
			t.Errorf("FindFrom() = %q, want %q", got, root)
		}
	})

	t.Run("no config falls back to start", func(t *testing.T) {
		dir := t.TempDir()
		if got := FindFrom(dir); got != dir {
			t.Errorf("FindFrom() = %q, want %q", got, dir)
		}
	})
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	path, err := Init(dir, false)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if path != ConfigPath(dir) {
		t.Errorf("Init() path = %q, want %q", path, ConfigPath(dir))
	}

	// The written file must round-trip to the built-in defaults.
	cfg, err := config.Load(dir, "")
	if err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.DefaultConfig()) {
		t.Errorf("init config = %+v, want defaults %+v", cfg, config.DefaultConfig())
	}
}

func TestInitExisting(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(ConfigPath(dir), []byte("files:\n  extension: go\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Init(dir, false); !errors.Is(err, ErrConfigExists) {
		t.Fatalf("Init() error = %v, want ErrConfigExists", err)
	}

	if _, err := Init(dir, true); err != nil {
		t.Fatalf("Init(force) error: %v", err)
	}
	content, err := os.ReadFile(ConfigPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != defaultConfig {
		t.Error("Init(force) did not overwrite the existing config")
	}
}
