package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/cldr"
	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/klc"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore/memory"
	"codeberg.org/miketth/kbdconv/pkg/mim"
	"codeberg.org/miketth/kbdconv/pkg/xkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *codec.Registry {
	r := codec.NewRegistry()
	cldrCodec := cldr.New(nil)
	xkbCodec := xkb.New(nil)
	r.RegisterExporter(cldrCodec)
	r.RegisterImporter(cldrCodec)
	r.RegisterExporter(xkbCodec)
	r.RegisterImporter(xkbCodec)
	r.RegisterExporter(mim.New(nil))
	r.RegisterExporter(klc.New(nil))
	return r
}

func referenceLayout(t *testing.T, target layout.Target, levels ...string) *layout.Layout {
	t.Helper()

	modes := layout.NewDesktopModes()
	for _, level := range levels {
		km := layout.DesktopKeyMap{}
		for _, k := range isokey.All() {
			r := k.Reference()
			if level == "shift" {
				r = k.ShiftedReference()
			}
			km.Set(k, keyvalue.Symbol(string(r)))
		}
		modes.Set(level, km)
	}

	l := layout.New()
	l.DisplayNames["en"] = "Test"
	require.NoError(t, l.Modes.SetDesktopModes(target, modes))
	return l
}

func mobileLayout(t *testing.T) *layout.Layout {
	t.Helper()
	modes := layout.NewMobileModes()
	modes.Set("default", layout.ParseMobileKeyMap("q w e\na s d\n"))

	l := layout.New()
	l.DisplayNames["en"] = "Mobile only"
	require.NoError(t, l.Modes.SetMobileModes(layout.TargetAndroid, modes))
	return l
}

func TestExportWritesArtifacts(t *testing.T) {
	store := memory.NewLayoutStore()
	require.NoError(t, store.Save("se", referenceLayout(t, layout.TargetDesktop, "default", "shift")))

	out := t.TempDir()
	result, err := New(store, newRegistry(), nil).Export(out, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("se", "cldr", "desktop.xml"),
		filepath.Join("se", "klc", "kbdse.klc"),
		filepath.Join("se", "mim", "desktop.mim"),
		filepath.Join("se", "xkb", "se"),
	}, result.Files)

	symbols, err := os.ReadFile(filepath.Join(out, "se", "xkb", "se"))
	require.NoError(t, err)
	assert.Contains(t, string(symbols), "key <AC01> {[ a, A ]};")
	assert.NotContains(t, string(symbols), "_dead_")

	im, err := os.ReadFile(filepath.Join(out, "se", "mim", "desktop.mim"))
	require.NoError(t, err)
	assert.Contains(t, string(im), `("a" "a")`)
	assert.Contains(t, string(im), `((S-.) ">")`)
}

func TestExportSelectedFormatsAndLocales(t *testing.T) {
	store := memory.NewLayoutStore()
	require.NoError(t, store.Save("se", referenceLayout(t, layout.TargetX11, "default")))
	require.NoError(t, store.Save("fi", referenceLayout(t, layout.TargetX11, "default")))

	result, err := New(store, newRegistry(), nil).Export(t.TempDir(), []string{"xkb"}, []string{"fi"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("fi", "xkb", "fi")}, result.Files)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := New(memory.NewLayoutStore(), newRegistry(), nil).Export(t.TempDir(), []string{"amiga"}, nil)
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestExportIsolatesFailures(t *testing.T) {
	store := memory.NewLayoutStore()
	require.NoError(t, store.Save("good", referenceLayout(t, layout.TargetWin, "default", "shift")))
	require.NoError(t, store.Save("mobile", mobileLayout(t)))
	require.NoError(t, store.Save("shiftonly", referenceLayout(t, layout.TargetWin, "shift")))

	c := New(store, newRegistry(), nil)
	c.Workers = 2
	result, err := c.Export(t.TempDir(), []string{"klc", "cldr"}, []string{"good", "mobile", "shiftonly", "missing"})
	require.Error(t, err)

	assert.Contains(t, result.Files, filepath.Join("good", "klc", "kbdgood.klc"))
	assert.Contains(t, result.Files, filepath.Join("mobile", "cldr", "android.xml"))
	assert.Contains(t, result.Files, filepath.Join("shiftonly", "cldr", "win.xml"))

	byLocale := map[string]*LayoutError{}
	for _, le := range Errors(err) {
		byLocale[le.Locale] = le
	}
	require.Len(t, byLocale, 3)

	assert.Equal(t, "klc", byLocale["mobile"].Format)
	assert.ErrorIs(t, byLocale["mobile"], layout.ErrNoCompatibleModes)

	assert.Equal(t, "klc", byLocale["shiftonly"].Format)
	assert.Equal(t, layout.TargetWin, byLocale["shiftonly"].Target)
	assert.ErrorIs(t, byLocale["shiftonly"], layout.ErrNoDefaultLevel)
	assert.True(t, strings.HasPrefix(byLocale["shiftonly"].Error(), "layout shiftonly format klc target win: "))

	assert.Empty(t, byLocale["missing"].Format)
	assert.ErrorIs(t, byLocale["missing"], layout.ErrNotFound)
}

const windowsKeyboard = `<?xml version="1.0" encoding="UTF-8" ?>
<keyboard locale="se-t-k0-windows">
	<names>
		<name value="Northern Sami"/>
	</names>
	<keyMap>
		<map iso="C01" to="a"/>
	</keyMap>
</keyboard>
`

const macKeyboard = `<?xml version="1.0" encoding="UTF-8" ?>
<keyboard locale="se-t-k0-osx">
	<names>
		<name value="Northern Sami"/>
	</names>
	<keyMap>
		<map iso="C01" to="a"/>
	</keyMap>
</keyboard>
`

func TestImportMergesWithStoredLayout(t *testing.T) {
	dir := t.TempDir()
	win := filepath.Join(dir, "se-t-k0-windows.xml")
	mac := filepath.Join(dir, "se-t-k0-osx.xml")
	require.NoError(t, os.WriteFile(win, []byte(windowsKeyboard), 0644))
	require.NoError(t, os.WriteFile(mac, []byte(macKeyboard), 0644))

	store := memory.NewLayoutStore()
	c := New(store, newRegistry(), nil)

	locales, err := c.Import("cldr", win)
	require.NoError(t, err)
	assert.Equal(t, []string{"se"}, locales)

	_, err = c.Import("cldr", mac)
	require.NoError(t, err)

	l, err := store.Load("se")
	require.NoError(t, err)
	assert.Equal(t, []layout.Target{layout.TargetWin, layout.TargetMac}, l.Modes.Available())
}

func TestImportUnknownFormat(t *testing.T) {
	_, err := New(memory.NewLayoutStore(), newRegistry(), nil).Import("klc", "x.klc")
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}
