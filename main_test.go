package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/config"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const danishKeyboard = `<?xml version="1.0" encoding="UTF-8" ?>
<keyboard locale="da-t-k0-windows">
	<names>
		<name value="Danish"/>
	</names>
	<keyMap>
		<map iso="C01" to="a"/>
		<map iso="C02" to="s"/>
	</keyMap>
	<keyMap modifiers="shift">
		<map iso="C01" to="A"/>
		<map iso="C02" to="S"/>
	</keyMap>
</keyboard>
`

const symbols = `default partial alphanumeric_keys
xkb_symbols "basic" {
    name[Group1] = "Testish";
    key <AC01> {[ a, A ]};
};

partial alphanumeric_keys
xkb_symbols "extra" {
    include "xx(basic)"
    key <AC02> {[ s, S ]};
};
`

const evdev = `<?xml version="1.0" encoding="UTF-8"?>
<xkbConfigRegistry version="1.1">
  <layoutList>
    <layout>
      <configItem>
        <name>xx</name>
        <description>Testish</description>
      </configItem>
      <variantList>
        <variant>
          <configItem>
            <name>extra</name>
            <description>Testish (extra)</description>
          </configItem>
        </variant>
      </variantList>
    </layout>
  </layoutList>
</xkbConfigRegistry>
`

func newTestApp(t *testing.T, storeType string) (*app, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Store = config.StoreConfig{Type: storeType, Path: filepath.Join(dir, "store", "layouts."+storeType)}
	cfg.Export.OutputDir = filepath.Join(dir, "out")
	cfg.XKB.SymbolsDir = filepath.Join(dir, "symbols")
	cfg.XKB.RegistryPath = filepath.Join(dir, "evdev.xml")
	require.NoError(t, cfg.EnsureDirectories())

	require.NoError(t, os.MkdirAll(cfg.XKB.SymbolsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.XKB.SymbolsDir, "xx"), []byte(symbols), 0644))
	require.NoError(t, os.WriteFile(cfg.XKB.RegistryPath, []byte(evdev), 0644))

	var out bytes.Buffer
	return &app{cfg: cfg, log: zap.NewNop().Sugar(), out: &out}, &out
}

func TestImportExportList(t *testing.T) {
	for _, storeType := range []string{config.StoreJSON, config.StoreSQLite} {
		t.Run(storeType, func(t *testing.T) {
			a, out := newTestApp(t, storeType)

			path := filepath.Join(t.TempDir(), "da-t-k0-windows.xml")
			require.NoError(t, os.WriteFile(path, []byte(danishKeyboard), 0644))
			require.NoError(t, a.importCLDR([]string{path}))
			assert.Equal(t, "da\t"+path+"\n", out.String())

			out.Reset()
			require.NoError(t, a.list())
			assert.Equal(t, "da\tDanish\twin\n", out.String())

			out.Reset()
			require.NoError(t, a.export([]string{"-format", "cldr, klc"}))
			files := strings.Fields(out.String())
			assert.Equal(t, []string{
				filepath.Join(a.cfg.Export.OutputDir, "da", "cldr", "win.xml"),
				filepath.Join(a.cfg.Export.OutputDir, "da", "klc", "kbdda.klc"),
			}, files)
			for _, f := range files {
				assert.FileExists(t, f)
			}
		})
	}
}

func TestJSONStoreFlushedOnClose(t *testing.T) {
	a, _ := newTestApp(t, config.StoreJSON)

	path := filepath.Join(t.TempDir(), "da-t-k0-windows.xml")
	require.NoError(t, os.WriteFile(path, []byte(danishKeyboard), 0644))
	require.NoError(t, a.importCLDR([]string{path}))

	data, err := os.ReadFile(a.cfg.Store.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Danish"`)
}

func TestImportXKBByName(t *testing.T) {
	a, out := newTestApp(t, config.StoreJSON)

	require.NoError(t, a.importXKB([]string{"-name", "Testish (extra)"}))
	assert.Equal(t, "xx-extra\t"+filepath.Join(a.cfg.XKB.SymbolsDir, "xx")+"(extra)\n", out.String())

	out.Reset()
	require.NoError(t, a.list())
	assert.Equal(t, "xx-extra\tTestish (extra)\tx11\n", out.String())

	assert.Error(t, a.importXKB([]string{"-name", "Klingon"}))
}

func TestExportReportsFailures(t *testing.T) {
	a, _ := newTestApp(t, config.StoreSQLite)
	require.NoError(t, a.importXKB([]string{filepath.Join(a.cfg.XKB.SymbolsDir, "xx")}))

	// x11 modes alone cannot make a Windows layout.
	err := a.export([]string{"-format", "klc,xkb"})
	assert.ErrorContains(t, err, "1 conversions failed")
	assert.FileExists(t, filepath.Join(a.cfg.Export.OutputDir, "xx", "xkb", "xx"))
}

func TestIsStoreEvent(t *testing.T) {
	a, _ := newTestApp(t, config.StoreSQLite)
	dir := filepath.Dir(a.cfg.Store.Path)

	assert.True(t, a.isStoreEvent(fsnotify.Event{Name: a.cfg.Store.Path, Op: fsnotify.Write}))
	assert.True(t, a.isStoreEvent(fsnotify.Event{Name: a.cfg.Store.Path + "-journal", Op: fsnotify.Create}))
	assert.False(t, a.isStoreEvent(fsnotify.Event{Name: a.cfg.Store.Path, Op: fsnotify.Chmod}))
	assert.False(t, a.isStoreEvent(fsnotify.Event{Name: filepath.Join(dir, "other"), Op: fsnotify.Write}))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"xkb", "klc"}, splitList(" xkb,,klc "))
}
