package layout

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKeys = `' 1 2 3 4 5 6 7 8 9 0 + ´
  á š e r t y u i o p å ŋ
  a s d f g h j k l ö ä đ
ž z č c v b n m , . -`

const sampleDocument = `displayNames:
  en: Northern Sami (Norway)
  se: Davvisámegiella (Norga)
modes:
  x11:
    default: |
      ' 1 2 3 4 5 6 7 8 9 0 + ´
        á š e r t y u i o p å ŋ
        a s d f g h j k l ö ä đ
      ž z č c v b n m , . -
    shift+alt:
      C01: ª
      D13: \u{301}
    shift: |
      § ! " # ¤ % & / ( ) = ? ` + "`" + `
        Á Š E R T Y U I O P Å Ŋ
        A S D F G H J K L Ö Ä Đ
      Ž Z Č C V B N M ; : _
  android:
    default: |
      á š e r t y u i o p å
      a s d f g h j k l ö ä
      z č c v b n m
deadKeys:
  x11:
    default: ["´"]
longpress:
  a: á à â
transforms:
  ´:
    a: á
    " ": ´
`

func TestParseDesktopKeyMap(t *testing.T) {
	km, err := ParseDesktopKeyMap(sampleKeys)
	require.NoError(t, err)
	require.Len(t, km, isokey.Count)

	assert.Equal(t, keyvalue.Symbol("'"), km.Get(isokey.E00))
	assert.Equal(t, keyvalue.Symbol("á"), km.Get(isokey.D01))
	assert.Equal(t, keyvalue.Symbol("đ"), km.Get(isokey.C12))
	assert.Equal(t, keyvalue.Symbol("ž"), km.Get(isokey.B00))
	assert.Equal(t, keyvalue.Symbol("-"), km.Get(isokey.B10))

	again, err := ParseDesktopKeyMap(km.String())
	require.NoError(t, err)
	assert.Equal(t, km, again)
}

func TestParseDesktopKeyMapWrongLength(t *testing.T) {
	_, err := ParseDesktopKeyMap(strings.Repeat("a ", 47))
	assert.ErrorIs(t, err, ErrKeyMapLength)

	_, err = ParseDesktopKeyMap(strings.Repeat("a ", 49))
	assert.ErrorIs(t, err, ErrKeyMapLength)
}

func TestDesktopKeyMapNoneSlots(t *testing.T) {
	tokens := strings.Fields(sampleKeys)
	tokens[isokey.C12] = `\u{0}`
	km, err := ParseDesktopKeyMap(strings.Join(tokens, " "))
	require.NoError(t, err)

	assert.Len(t, km, isokey.Count-1)
	assert.True(t, km.Get(isokey.C12).IsNone())
	assert.Contains(t, km.String(), `\u{0}`)
}

func TestDecodeDocument(t *testing.T) {
	l, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err, spew.Sdump(l))

	assert.Equal(t, "Northern Sami (Norway)", l.Name())
	assert.Equal(t, []Target{TargetAndroid, TargetX11}, l.Modes.Available())

	x11 := l.Modes.DesktopModes(TargetX11)
	require.NotNil(t, x11)
	assert.Equal(t, []string{"default", "alt+shift", "shift"}, x11.Modifiers())

	altShift, ok := x11.Get("alt+shift")
	require.True(t, ok)
	assert.Equal(t, DesktopKeyMap{
		isokey.C01: keyvalue.Symbol("ª"),
		isokey.C12: keyvalue.Symbol("\u0301"),
	}, altShift)

	shift, ok := x11.Get("shift")
	require.True(t, ok)
	assert.Equal(t, keyvalue.Symbol("`"), shift.Get(isokey.E12))

	android := l.Modes.MobileModes(TargetAndroid)
	require.NotNil(t, android)
	rows, ok := android.Get("default")
	require.True(t, ok)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"z", "č", "c", "v", "b", "n", "m"}, rows[2])

	assert.Equal(t, Alternates{"á", "à", "â"}, l.LongPress["a"])
	assert.Equal(t, "á", l.Transforms["´"]["a"])
	assert.True(t, l.IsDeadKey(TargetX11, "default", "´"))
}

func TestDocumentRoundTrip(t *testing.T) {
	l, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, l))

	again, err := Decode(&buf)
	require.NoError(t, err, buf.String())

	assert.Equal(t, l.Modes.X11.Modifiers(), again.Modes.X11.Modifiers())
	for _, mod := range l.Modes.X11.Modifiers() {
		want, _ := l.Modes.X11.Get(mod)
		got, _ := again.Modes.X11.Get(mod)
		assert.Equal(t, want, got, mod)
	}
	assert.Equal(t, l.DisplayNames, again.DisplayNames)
	assert.Equal(t, l.Transforms, again.Transforms)
	assert.Equal(t, l.LongPress, again.LongPress)
	assert.Equal(t, l.DeadKeys, again.DeadKeys)
}

func TestJSONRoundTripAndSchema(t *testing.T) {
	l, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	data, err := json.Marshal(l)
	require.NoError(t, err)
	require.NoError(t, ValidateJSON(data), string(data))

	var again Layout
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, l.Modes.X11.Modifiers(), again.Modes.X11.Modifiers())

	want, _ := l.Modes.X11.Get("default")
	got, _ := again.Modes.X11.Get("default")
	assert.Equal(t, want, got)
}

func TestSchemaRejectsUnknownKeys(t *testing.T) {
	doc := `{"displayNames": {"en": "x"}, "modes": {"win": {"default": {"Z99": "a"}}}}`
	assert.Error(t, ValidateJSON([]byte(doc)))

	doc = `{"displayNames": {"en": "x"}, "modes": {"amiga": {}}}`
	assert.Error(t, ValidateJSON([]byte(doc)))

	doc = `{"displayNames": {"en": "x"}, "modes": {"win": {"default": {"E01": "1"}}}}`
	assert.NoError(t, ValidateJSON([]byte(doc)))
}

func TestModesTargetTable(t *testing.T) {
	var m Modes
	assert.Error(t, m.SetDesktopModes(TargetIOS, NewDesktopModes()))
	assert.Error(t, m.SetMobileModes(TargetWin, NewMobileModes()))
	require.NoError(t, m.SetDesktopModes(TargetWin, NewDesktopModes()))

	_, _, err := m.FirstDesktop(TargetX11, TargetMac)
	assert.ErrorIs(t, err, ErrNoCompatibleModes)

	target, modes, err := m.FirstDesktop(TargetX11, TargetWin)
	require.NoError(t, err)
	assert.Equal(t, TargetWin, target)
	assert.Same(t, m.Win, modes)

	_, err = ParseTarget("amiga")
	assert.ErrorIs(t, err, ErrUnknownTarget)
	assert.True(t, TargetChrome.IsDesktop())
	assert.True(t, TargetMobile.IsMobile())
}

func TestModeMapNormalizesKeys(t *testing.T) {
	m := NewDesktopModes()
	m.Set("shiftL+optR", DesktopKeyMap{isokey.E01: keyvalue.Symbol("¡")})
	m.Set("", DesktopKeyMap{})

	_, ok := m.Get("alt+shift")
	assert.True(t, ok)
	assert.Equal(t, []string{"alt+shift", "default"}, m.Modifiers())

	m.Delete("shift+alt")
	assert.Equal(t, []string{"default"}, m.Modifiers())
}

func TestMerge(t *testing.T) {
	dst := New()
	dst.DisplayNames["en"] = "Old"
	win := NewDesktopModes()
	win.Set("default", DesktopKeyMap{isokey.E01: keyvalue.Symbol("1")})
	require.NoError(t, dst.Modes.SetDesktopModes(TargetWin, win))

	src := New()
	src.DisplayNames["en"] = "New"
	srcWin := NewDesktopModes()
	srcWin.Set("shift", DesktopKeyMap{isokey.E01: keyvalue.Symbol("!")})
	require.NoError(t, src.Modes.SetDesktopModes(TargetWin, srcWin))
	mac := NewDesktopModes()
	mac.Set("default", DesktopKeyMap{isokey.E01: keyvalue.Symbol("1")})
	require.NoError(t, src.Modes.SetDesktopModes(TargetMac, mac))
	src.AddDeadKey(TargetWin, "default", "^")
	src.SetTransform("^", "a", "â")

	Merge(dst, src)

	assert.Equal(t, "New", dst.Name())
	assert.Equal(t, []string{"default", "shift"}, dst.Modes.Win.Modifiers())
	assert.NotNil(t, dst.Modes.Mac)
	assert.Equal(t, []string{"^"}, dst.DeadKeysFor(TargetWin, "default"))
	assert.Equal(t, "â", dst.Transforms["^"]["a"])
}
