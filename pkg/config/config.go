// Package config loads the converter settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const appName = "kbdconv"

const (
	StoreMemory = "memory"
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Store  StoreConfig  `toml:"store"`
	XKB    XKBConfig    `toml:"xkb"`
	Export ExportConfig `toml:"export"`
	Watch  WatchConfig  `toml:"watch"`
}

type StoreConfig struct {
	// Type is one of memory, json or sqlite.
	Type string `toml:"type"`
	Path string `toml:"path"`
}

type XKBConfig struct {
	// SymbolsDir is searched for includes the importing file's own
	// directory does not have.
	SymbolsDir   string `toml:"symbols_dir"`
	// RegistryPath points at evdev.xml, used for layout display names.
	RegistryPath string `toml:"registry_path"`
}

type ExportConfig struct {
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`
	Workers   int      `toml:"workers"`
}

type WatchConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// DefaultPath is where the config file is looked for when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

func Default() *Config {
	dataDir := filepath.Join(xdg.DataHome, appName)

	return &Config{
		Store: StoreConfig{
			Type: StoreSQLite,
			Path: filepath.Join(dataDir, "layouts.db"),
		},
		XKB: XKBConfig{
			SymbolsDir:   systemDataPath("X11/xkb/symbols"),
			RegistryPath: systemDataPath("X11/xkb/rules/evdev.xml"),
		},
		Export: ExportConfig{
			OutputDir: filepath.Join(dataDir, "out"),
			Workers:   4,
		},
		Watch: WatchConfig{
			DebounceMs: 500,
		},
	}
}

// systemDataPath finds rel in the XDG data directories, falling back to
// /usr/share.
func systemDataPath(rel string) string {
	for _, dir := range append([]string{xdg.DataHome}, xdg.DataDirs...) {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join("/usr/share", rel)
}

// Load reads path over the defaults. A missing file is not an error.
// Unknown keys are.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Type {
	case StoreMemory:
	case StoreJSON, StoreSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("%w: store %s needs a path", ErrInvalid, c.Store.Type)
		}
	default:
		return fmt.Errorf("%w: unknown store type %q", ErrInvalid, c.Store.Type)
	}

	if c.Export.Workers < 1 {
		return fmt.Errorf("%w: export workers must be at least 1", ErrInvalid)
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("%w: negative watch debounce", ErrInvalid)
	}
	return nil
}

// EnsureDirectories creates the directories the store and the exports are
// written to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Export.OutputDir}
	if c.Store.Type != StoreMemory {
		dirs = append(dirs, filepath.Dir(c.Store.Path))
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Save writes the config as TOML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return file.Close()
}
