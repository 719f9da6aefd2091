// Package project finds and reads hylo.toml, the project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the manifest file looked up from the working directory upward.
const ManifestName = "hylo.toml"

// ErrNoManifest is returned by Find when no manifest exists up to the filesystem root.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

// Manifest is a loaded hylo.toml.
type Manifest struct {
	Path   string // путь к самому hylo.toml
	Root   string // каталог манифеста
	Config Config
}

// Config mirrors the TOML layout:
//
//	[package]
//	name = "demo"
//
//	[run]
//	main = "src"          # file or directory, relative to the manifest
//
//	[check]               # optional defaults for CLI flags
//	jobs = 4
//	max_diagnostics = 20
//	cache = true
type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
	Check   CheckConfig   `toml:"check"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type RunConfig struct {
	Main string `toml:"main"`
}

type CheckConfig struct {
	Jobs           int  `toml:"jobs"`
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Cache          bool `toml:"cache"`
}

// Find walks from startDir to the filesystem root looking for hylo.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoManifest
		}
		dir = parent
	}
}

// Load finds and decodes the nearest manifest.
func Load(startDir string) (*Manifest, error) {
	path, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// LoadConfig decodes and validates one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("run", "main") || strings.TrimSpace(cfg.Run.Main) == "" {
		return Config{}, fmt.Errorf("%s: missing [run].main", path)
	}
	if cfg.Check.Jobs < 0 || cfg.Check.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [check] values must not be negative", path)
	}
	return cfg, nil
}

// MainPath resolves [run].main against the manifest directory and reports
// whether it is a directory.
func (m *Manifest) MainPath() (string, bool, error) {
	mainPath := filepath.Join(m.Root, filepath.FromSlash(strings.TrimSpace(m.Config.Run.Main)))
	info, err := os.Stat(mainPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("%s: [run].main path does not exist: %s", m.Path, mainPath)
		}
		return "", false, fmt.Errorf("%s: failed to stat [run].main: %w", m.Path, err)
	}
	if !info.IsDir() && filepath.Ext(mainPath) != ".hy" {
		return "", false, fmt.Errorf("%s: [run].main must be a .hy file or directory", m.Path)
	}
	return mainPath, info.IsDir(), nil
}
