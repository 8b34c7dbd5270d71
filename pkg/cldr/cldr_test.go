package cldr

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalKeyboard = `<?xml version="1.0" encoding="UTF-8" ?>
<!DOCTYPE keyboard SYSTEM "../dtd/ldmlKeyboard.dtd">
<keyboard locale="da-t-k0-windows">
	<version platform="10.0" number="$Revision$"/>
	<names>
		<name value="Danish"/>
	</names>
	<keyMap>
		<map iso="E01" to="1"/>
		<map iso="D01" to="q"/>
		<map iso="D12" to="¨"/>
		<map iso="D13" to="'"/>
		<map iso="C01" to="a" longPress="à á"/>
		<map iso="A03" to=" "/>
		<map iso="B10" to="&amp;"/>
	</keyMap>
	<keyMap modifiers="shiftL shift+caps?">
		<map iso="E01" to="!"/>
		<map iso="D01" to="Q"/>
		<map iso="C12" to="*"/>
	</keyMap>
	<transforms type="simple">
		<transform from="¨a" to="ä"/>
		<transform from="¨ " to="¨"/>
	</transforms>
</keyboard>
`

func importString(t *testing.T, doc string) *layout.Layout {
	t.Helper()
	kbd, err := Parse(strings.NewReader(doc), "test.xml")
	require.NoError(t, err)

	locale, l, err := New(nil).ToLayout(kbd)
	require.NoError(t, err)
	assert.Equal(t, "da", locale)
	return l
}

func TestImport(t *testing.T) {
	l := importString(t, minimalKeyboard)

	assert.Equal(t, "Danish", l.Name())
	require.NotNil(t, l.Modes.Win)
	assert.Equal(t, []string{"default", "shift"}, l.Modes.Win.Modifiers())

	def, _ := l.Modes.Win.Get("default")
	assert.Len(t, def, 6)
	assert.Equal(t, keyvalue.Symbol("'"), def.Get(isokey.C12))
	assert.Equal(t, keyvalue.Symbol("&"), def.Get(isokey.B10))

	shift, _ := l.Modes.Win.Get("shift")
	assert.Equal(t, keyvalue.Symbol("*"), shift.Get(isokey.C12))

	assert.Equal(t, layout.Alternates{"à", "á"}, l.LongPress["a"])
	assert.Equal(t, "ä", l.Transforms["¨"]["a"])
	assert.Equal(t, "¨", l.Transforms["¨"][" "])
	assert.Equal(t, []string{"¨"}, l.DeadKeysFor(layout.TargetWin, "default"))
}

func TestRoundTrip(t *testing.T) {
	l := importString(t, minimalKeyboard)

	c := New(nil)
	artifacts, err := c.Export(nil, "da", l)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "win.xml", artifacts[0].Path)

	out := string(artifacts[0].Data)
	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n<!DOCTYPE keyboard"))
	assert.Contains(t, out, "<keyboard locale=\"da-t-k0-win\">\n    <version")
	assert.Contains(t, out, "    <keyMap>\n        <map iso=\"E01\" to=\"1\"/>")
	assert.Contains(t, out, "<keyMap modifiers=\"shift\">")
	assert.Contains(t, out, "<map iso=\"B10\" to=\"&amp;\"/>")
	assert.Contains(t, out, "<map iso=\"C01\" to=\"a\" longPress=\"à á\"/>")
	assert.Contains(t, out, "<transform from=\"¨a\" to=\"ä\"/>")

	again := importString(t, strings.Replace(out, "da-t-k0-win", "da-t-k0-windows", 1))
	for _, level := range l.Modes.Win.Modifiers() {
		want, _ := l.Modes.Win.Get(level)
		got, _ := again.Modes.Win.Get(level)
		assert.Equal(t, want, got, level)
	}
	assert.Equal(t, l.Transforms, again.Transforms)
	assert.Equal(t, l.LongPress, again.LongPress)
}

func TestMobileRows(t *testing.T) {
	doc := `<keyboard locale="se-t-k0-android">
	<names><name value="Sami"/></names>
	<keyMap>
		<map iso="D01" to="á"/><map iso="D02" to="w"/>
		<map iso="C01" to="a"/><map iso="C02" to="s"/>
		<map iso="B01" to="z"/><map iso="A03" to=" "/>
	</keyMap>
</keyboard>`

	kbd, err := Parse(strings.NewReader(doc), "android.xml")
	require.NoError(t, err)
	locale, l, err := New(nil).ToLayout(kbd)
	require.NoError(t, err)
	assert.Equal(t, "se", locale)

	rows, ok := l.Modes.Android.Get("default")
	require.True(t, ok)
	assert.Equal(t, layout.MobileKeyMap{{"á", "w"}, {"a", "s"}, {"z"}, {`\u{20}`}}, rows)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(nil).FromLayout(nil, "se", layout.TargetAndroid, l)))
	assert.Contains(t, buf.String(), `<map iso="E01" to="á"/>`)
	assert.Contains(t, buf.String(), `<map iso="B01" to="\u{20}"/>`)
}

const escapedKeyboard = `<keyboard locale="se-t-k0-windows">
	<names><name value="Sami"/></names>
	<keyMap>
		<map iso="C01" to="\u{301}"/>
		<map iso="C02" to="a\u{5C}u{41}"/>
		<map iso="C03" to="e" longPress="\u{E9} \u{20}"/>
	</keyMap>
	<transforms type="simple">
		<transform from="\u{301}a" to="\u{E1}"/>
	</transforms>
</keyboard>`

func TestImportDecodesEscapes(t *testing.T) {
	kbd, err := Parse(strings.NewReader(escapedKeyboard), "se.xml")
	require.NoError(t, err)
	_, l, err := New(nil).ToLayout(kbd)
	require.NoError(t, err)

	def, _ := l.Modes.Win.Get("default")
	assert.Equal(t, keyvalue.Symbol("\u0301"), def.Get(isokey.C01))
	assert.Equal(t, keyvalue.Symbol(`a\u{41}`), def.Get(isokey.C02))
	assert.Equal(t, layout.Alternates{"é", " "}, l.LongPress["e"])
	assert.Equal(t, "á", l.Transforms["\u0301"]["a"])
	assert.Equal(t, []string{"\u0301"}, l.DeadKeysFor(layout.TargetWin, "default"))

	assert.Equal(t, `\u{301}`, kbd.KeyMaps[0].Maps[0].To, "the parsed keyboard is left alone")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(nil).FromLayout(nil, "se", layout.TargetWin, l)))
	out := buf.String()
	assert.Contains(t, out, `<map iso="C01" to="\u{301}"/>`)
	assert.Contains(t, out, `<map iso="C02" to="a\u{5C}u{41}"/>`)
	assert.Contains(t, out, `<map iso="C03" to="e" longPress="é \u{20}"/>`)
	assert.Contains(t, out, `<transform from="\u{301}a" to="á"/>`)

	again, err := Parse(strings.NewReader(out), "se.xml")
	require.NoError(t, err)
	_, l2, err := New(nil).ToLayout(again)
	require.NoError(t, err)
	def2, _ := l2.Modes.Win.Get("default")
	assert.Equal(t, def, def2)
	assert.Equal(t, l.Transforms, l2.Transforms)
	assert.Equal(t, l.LongPress, l2.LongPress)
}

func TestImportRejectsBadEscape(t *testing.T) {
	doc := `<keyboard locale="se-t-k0-windows"><keyMap><map iso="C01" to="\u{zz}"/></keyMap></keyboard>`
	kbd, err := Parse(strings.NewReader(doc), "se.xml")
	require.NoError(t, err)
	_, _, err = New(nil).ToLayout(kbd)
	assert.ErrorIs(t, err, keyvalue.ErrInvalidEscape)
}

func TestParseErrorCarriesPath(t *testing.T) {
	_, err := Parse(strings.NewReader("<keyboard locale=\"x\">\n<keyMap>\n</keyboard>"), "broken.xml")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.xml", parseErr.Path)
	assert.Equal(t, 3, parseErr.Line)
}

func TestImportDirectoryMerges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "windows"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "osx"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "windows", "da-t-k0-windows.xml"), []byte(minimalKeyboard), 0644))
	mac := strings.Replace(minimalKeyboard, "da-t-k0-windows", "da-t-k0-osx", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "osx", "da-t-k0-osx.xml"), []byte(mac), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_platform.xml"), []byte("<platform/>"), 0644))

	imported, err := New(nil).Import(dir)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "da", imported[0].Locale)
	assert.Equal(t, []layout.Target{layout.TargetWin, layout.TargetMac}, imported[0].Layout.Modes.Available())
}
