package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromNestedDir(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ManifestName), `
[package]
name = "demo"

[run]
main = "src"

[check]
jobs = 3
cache = true
`)
	write(t, filepath.Join(root, "src", "main.hy"), "1;")

	m, err := Load(filepath.Join(root, "src"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Package.Name != "demo" || m.Config.Check.Jobs != 3 || !m.Config.Check.Cache {
		t.Errorf("config = %+v", m.Config)
	}
	main, isDir, err := m.MainPath()
	if err != nil || !isDir || main != filepath.Join(root, "src") {
		t.Errorf("MainPath = %q, %v, %v", main, isDir, err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no name", "[package]\n[run]\nmain = \"a.hy\"\n", "missing [package].name"},
		{"no main", "[package]\nname = \"x\"\n", "missing [run].main"},
		{"unknown key", "[package]\nname = \"x\"\nversion = 2\n[run]\nmain = \"a.hy\"\n", "unknown key"},
		{"bad toml", "[package\n", "failed to parse TOML"},
		{"negative", "[package]\nname = \"x\"\n[run]\nmain = \"a.hy\"\n[check]\njobs = -1\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			write(t, path, tt.content)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestMainPathMustBeSource(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "notes.txt"), "")
	m := &Manifest{Path: filepath.Join(root, ManifestName), Root: root, Config: Config{Run: RunConfig{Main: "notes.txt"}}}
	if _, _, err := m.MainPath(); err == nil || !strings.Contains(err.Error(), ".hy file or directory") {
		t.Errorf("err = %v", err)
	}
	m.Config.Run.Main = "missing.hy"
	if _, _, err := m.MainPath(); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("err = %v", err)
	}
}

func TestFindNoManifest(t *testing.T) {
	// в корне TempDir манифеста нет; выше тоже не должно быть
	if _, err := Find(t.TempDir()); err != nil && !errors.Is(err, ErrNoManifest) {
		t.Fatalf("unexpected error: %v", err)
	}
}
