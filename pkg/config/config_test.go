package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, StoreSQLite, cfg.Store.Type)
	assert.Equal(t, "layouts.db", filepath.Base(cfg.Store.Path))
	assert.Equal(t, "evdev.xml", filepath.Base(cfg.XKB.RegistryPath))
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[store]
type = "json"
path = "/tmp/layouts.json"

[xkb]
symbols_dir = "/opt/xkb/symbols"

[export]
formats = ["xkb", "klc"]
workers = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StoreConfig{Type: StoreJSON, Path: "/tmp/layouts.json"}, cfg.Store)
	assert.Equal(t, "/opt/xkb/symbols", cfg.XKB.SymbolsDir)
	assert.Equal(t, Default().XKB.RegistryPath, cfg.XKB.RegistryPath)
	assert.Equal(t, []string{"xkb", "klc"}, cfg.Export.Formats)
	assert.Equal(t, 8, cfg.Export.Workers)
	assert.Equal(t, Default().Export.OutputDir, cfg.Export.OutputDir)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "[store]\nflavour = \"mint\"\n",
		"bad store":    "[store]\ntype = \"postgres\"\n",
		"no path":      "[store]\ntype = \"json\"\npath = \"\"\n",
		"no workers":   "[export]\nworkers = 0\n",
		"bad debounce": "[watch]\ndebounce_ms = -1\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Load(writeConfig(t, "[store\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestMemoryStoreNeedsNoPath(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[store]\ntype = \"memory\"\npath = \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store.Type)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Export.Formats = []string{"mim"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Store.Path = filepath.Join(dir, "data", "layouts.db")
	cfg.Export.OutputDir = filepath.Join(dir, "out")
	require.NoError(t, cfg.EnsureDirectories())

	assert.DirExists(t, filepath.Join(dir, "data"))
	assert.DirExists(t, filepath.Join(dir, "out"))
}
