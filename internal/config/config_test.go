package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadFromWorkspace(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `paths:
  solutions_root: src/solutions
files:
  extension: .go
report:
  tree_args: ["--noreport"]
`)

	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Paths.SolutionsRoot != "src/solutions" {
		t.Errorf("SolutionsRoot = %q, want %q", cfg.Paths.SolutionsRoot, "src/solutions")
	}
	if cfg.Paths.TestsRoot != "tests" {
		t.Errorf("TestsRoot = %q, want default %q", cfg.Paths.TestsRoot, "tests")
	}
	if cfg.Files.Extension != "go" {
		t.Errorf("Extension = %q, want leading dot stripped", cfg.Files.Extension)
	}
	if !reflect.DeepEqual(cfg.Report.TreeArgs, []string{"--noreport"}) {
		t.Errorf("TreeArgs = %v, want [--noreport]", cfg.Report.TreeArgs)
	}
	if cfg.Report.TreeBinary != "tree" {
		t.Errorf("TreeBinary = %q, want default", cfg.Report.TreeBinary)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("files:\n  extension: rs\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(t.TempDir(), path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Files.Extension != "rs" {
		t.Errorf("Extension = %q, want %q", cfg.Files.Extension, "rs")
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "paths: [unclosed\n")

	if _, err := Load(dir, ""); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "files:\n  extension: py\n")
	t.Setenv("AOC_FILES_EXTENSION", "ts")

	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Files.Extension != "ts" {
		t.Errorf("Extension = %q, want env override %q", cfg.Files.Extension, "ts")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty extension",
			mutate:  func(c *Config) { c.Files.Extension = "" },
			wantErr: "files.extension",
		},
		{
			name:    "extension with separator",
			mutate:  func(c *Config) { c.Files.Extension = "py/x" },
			wantErr: "path separators",
		},
		{
			name:    "empty solutions root",
			mutate:  func(c *Config) { c.Paths.SolutionsRoot = " " },
			wantErr: "paths.solutions_root",
		},
		{
			name: "same roots",
			mutate: func(c *Config) {
				c.Paths.SolutionsRoot = "src"
				c.Paths.TestsRoot = "src/"
			},
			wantErr: "must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.TestsRoot = "/abs/tests"

	if got, want := cfg.SolutionsRoot("/repo"), filepath.Join("/repo", "adventofcode", "solutions"); got != want {
		t.Errorf("SolutionsRoot() = %q, want %q", got, want)
	}
	if got := cfg.TestsRoot("/repo"); got != "/abs/tests" {
		t.Errorf("TestsRoot() = %q, want absolute path unchanged", got)
	}

	cfg.Templates.Dir = ""
	if got := cfg.TemplatesDir("/repo"); got != "" {
		t.Errorf("TemplatesDir() = %q, want empty when disabled", got)
	}
}

func TestValue(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "files:\n  extension: go\n")

	got, err := Value(dir, "", "files.extension")
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if got != "go" {
		t.Errorf("Value(files.extension) = %v, want go", got)
	}

	got, err = Value(dir, "", "paths.tests_root")
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if got != "tests" {
		t.Errorf("Value(paths.tests_root) = %v, want default tests", got)
	}

	if _, err := Value(dir, "", "files.nope"); err == nil || !strings.Contains(err.Error(), "key not found") {
		t.Errorf("Value(files.nope) error = %v, want key not found", err)
	}
}

func TestIsList(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"report.tree_args", true},
		{"REPORT.TREE_ARGS", true},
		{"paths.tests_root", false},
		{"files.extension", false},
		{"report", false},
		{"files.nope", false},
	}

	for _, tt := range tests {
		if got := IsList(tt.key); got != tt.want {
			t.Errorf("IsList(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
