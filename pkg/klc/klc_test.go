package klc

import (
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

func decodeUTF16(t *testing.T, data []byte) string {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 2)
	assert.Equal(t, []byte{0xff, 0xfe}, data[:2], "byte order mark")

	out, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(data)
	require.NoError(t, err)
	return string(out)
}

func TestDeriveCapMode(t *testing.T) {
	a, A, x := charKey('a'), charKey('A'), charKey('x')
	one, bang := charKey('1'), charKey('!')

	cases := []struct {
		name string
		row  row
		want capMode
	}{
		{name: "letter without caps", row: row{normal: a, shift: A}, want: capMode{column: 1}},
		{name: "same on shift", row: row{normal: one, shift: one}, want: capMode{column: 0}},
		{name: "alt pair differs", row: row{normal: one, shift: one, alt: a, altShift: A}, want: capMode{column: 4}},
		{name: "both pairs differ", row: row{normal: a, shift: A, alt: x, altShift: charKey('X')}, want: capMode{column: 5}},
		{name: "caps matches shift", row: row{normal: a, shift: A, caps: A, alt: x, altShift: charKey('X'), altCaps: x}, want: capMode{column: 1}},
		{name: "caps matches both", row: row{normal: a, shift: A, caps: A, alt: x, altShift: charKey('X'), altCaps: charKey('X')}, want: capMode{column: 5}},
		{name: "caps matches base", row: row{normal: one, shift: bang, caps: one, alt: x, altShift: charKey('X'), altCaps: x}, want: capMode{column: 0}},
		{name: "caps differs from both", row: row{normal: a, shift: A, caps: x}, want: capMode{sgCap: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deriveCapMode(&tc.row))
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "a", charKey('a').String())
	assert.Equal(t, "0020", charKey(' ').String())
	assert.Equal(t, "00e5", charKey('å').String())
	assert.Equal(t, "00b4@", deadKey('´').String())
	assert.Equal(t, "^@", deadKey('^').String())
	assert.Equal(t, "%%", ligatureKey("ij").String())
	assert.Equal(t, "-1", key{}.String())
	assert.Equal(t, "SGCap", capMode{sgCap: true}.String())
	assert.Equal(t, "4", capMode{column: 4}.String())
}

func sampleLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l := layout.New()
	l.DisplayNames["da"] = "Dansk test"
	l.DisplayNames["en"] = "Danish test"
	l.Decimal = ","
	l.Space = map[layout.Target]map[string]string{layout.TargetWin: {"shift": "\u00a0"}}

	modes := layout.NewDesktopModes()
	modes.Set("default", layout.DesktopKeyMap{
		isokey.E01: keyvalue.Symbol("1"),
		isokey.D01: keyvalue.Symbol("ij"),
		isokey.D02: keyvalue.Symbol("abcde"),
		isokey.D12: keyvalue.Symbol("´"),
		isokey.C01: keyvalue.Symbol("a"),
		isokey.B01: keyvalue.Symbol("z"),
	})
	modes.Set("shift", layout.DesktopKeyMap{
		isokey.E01: keyvalue.Symbol("!"),
		isokey.D01: keyvalue.Symbol("IJ"),
		isokey.C01: keyvalue.Symbol("A"),
		isokey.B01: keyvalue.Symbol("Z"),
	})
	modes.Set("caps", layout.DesktopKeyMap{isokey.B01: keyvalue.Symbol("x")})
	modes.Set("caps+shift", layout.DesktopKeyMap{isokey.B01: keyvalue.Symbol("X")})
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetWin, modes))

	l.AddDeadKey(layout.TargetWin, "default", "´")
	l.SetTransform("´", "a", "á")
	l.SetTransform("´", " ", "´")
	l.SetTransform("´", "ab", "x")
	return l
}

func TestExport(t *testing.T) {
	project := &layout.Project{Copyright: "Copy", Organisation: "Org"}

	artifacts, err := New(nil).Export(project, "da", sampleLayout(t))
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "kbdda.klc", artifacts[0].Path)

	out := decodeUTF16(t, artifacts[0].Data)

	want := "KBD\tkbdda\t\"Dansk test\"\n\n" +
		"COPYRIGHT\t\"Copy\"\n\n" +
		"COMPANY\t\"Org\"\n\n" +
		"LOCALENAME\t\"da-DK\"\n\n" +
		"LOCALEID\t\"00000406\"\n\n" +
		"VERSION\t1.0\n\n" +
		"SHIFTSTATE\n\n0\n1\n2\n6\n7\n\n" +
		"LAYOUT\n\n" +
		"02\t1\t1\t1\t!\t-1\t-1\t-1\n" +
		"10\tQ\t1\t%%\t%%\t-1\t-1\t-1\n" +
		"1b\tOEM_6\t1\t00b4@\t-1\t-1\t-1\t-1\n" +
		"1e\tA\t1\ta\tA\t-1\t-1\t-1\n" +
		"2c\tZ\tSGCap\tz\tZ\t-1\t-1\t-1\n" +
		"-1\t-1\t0\tx\tX\n" +
		"39\tSPACE\t0\t0020\t00a0\t0020\t-1\t-1\n" +
		"53\tDECIMAL\t0\t,\t,\t-1\t-1\t-1\n\n" +
		"LIGATURE\n\n" +
		"Q\t0\t0069\t006a\n" +
		"Q\t1\t0049\t004a\n\n" +
		"DEADKEY\t00b4\n\n" +
		"0061\t00e1\n" +
		"0020\t00b4\n\n" +
		"\nKEYNAME\n\n"
	require.Greater(t, len(out), len(want))
	assert.Equal(t, want, out[:len(want)])

	assert.Contains(t, out, "\nKEYNAME_EXT\n\n")
	assert.Contains(t, out, "\nDESCRIPTIONS\n\n0406\tDansk test\n\nLANGUAGENAMES\n\n0406\tdansk\n\nENDKBD\n")
	assert.NotContains(t, out, "\tW\t", "five unit output is dropped")
}

func TestExportTargetOverrides(t *testing.T) {
	l := sampleLayout(t)
	l.Targets = &layout.Targets{Win: &layout.WinTarget{Locale: "se-NO", LanguageName: "davvisámegiella", ID: "SE1"}}

	artifacts, err := New(nil).Export(nil, "se", l)
	require.NoError(t, err)
	assert.Equal(t, "kbdSE1.klc", artifacts[0].Path)

	out := decodeUTF16(t, artifacts[0].Data)
	assert.Contains(t, out, "KBD\tkbdSE1\t\"Danish test\"\n")
	assert.Contains(t, out, "LOCALENAME\t\"se-NO\"\n")
	assert.Contains(t, out, "LOCALEID\t\"0000043b\"\n")
	assert.Contains(t, out, "043b\tdavvisámegiella\n")
}

func TestExportErrors(t *testing.T) {
	l := layout.New()
	modes := layout.NewDesktopModes()
	modes.Set("default", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("a")})
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetX11, modes))

	_, err := New(nil).Export(nil, "da", l)
	assert.ErrorIs(t, err, layout.ErrNoCompatibleModes)

	shiftOnly := layout.NewDesktopModes()
	shiftOnly.Set("shift", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("A")})
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetWin, shiftOnly))

	_, err = New(nil).Export(nil, "da", l)
	assert.ErrorIs(t, err, layout.ErrNoDefaultLevel)
}

func TestLookupLocale(t *testing.T) {
	cases := map[string]windowsLocale{
		"da":         {0x0406, "da-DK"},
		"se-FI":      {0x0c3b, "se-FI"},
		"se-NO":      {0x043b, "se-NO"},
		"smj":        {0x103b, "smj-NO"},
		"yo":         {customLocaleID, "yo-Latn-001"},
		"sr-Cyrl-RS": {customLocaleID, "sr-Cyrl-RS"},
	}

	for locale, want := range cases {
		assert.Equal(t, want, lookupLocale(language.MustParse(locale)), locale)
	}
}

func TestKbdName(t *testing.T) {
	assert.Equal(t, "sesmj", kbdName("", "se-smj-NO"))
	assert.Equal(t, "da", kbdName("", "da"))
	assert.Equal(t, "X1", kbdName("X1", "da"))
}
