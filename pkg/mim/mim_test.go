package mim

import (
	"strings"
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\(b\)\\c\;\'\"\[\]`, escape(`a(b)\c;'"[]`))
	assert.Equal(t, `\\\(`, escape(`\(`))
	assert.Equal(t, "plain", escape("plain"))
}

func TestKeySeq(t *testing.T) {
	assert.Equal(t, `"a"`, keySeq{text: "a"}.String())
	assert.Equal(t, `"\""`, keySeq{text: `"`}.String())
	assert.Equal(t, `(C-A-\;)`, keySeq{modifiers: []string{"C", "A"}, key: ";"}.String())
}

func TestExportSmallLayout(t *testing.T) {
	l := layout.New()
	l.DisplayNames["en"] = "Test"
	l.Targets = &layout.Targets{Mim: &layout.MimTarget{Description: "Desc"}}

	modes := layout.NewDesktopModes()
	modes.Set("default", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("a")})
	modes.Set("shift", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("A")})
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetX11, modes))

	artifacts, err := New(nil).Export(nil, "da", l)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "x11.mim", artifacts[0].Path)

	want := `(input-method da da-x11)
(description "Desc (Test x11)")
(title "Test")
(map
    (mapping
        ("a" "a")
        ("A" "A")
    )
)
(state
    (init
        (mapping)
    )
)
`
	assert.Equal(t, want, string(artifacts[0].Data))
}

func TestExportLiteralKeys(t *testing.T) {
	def := layout.DesktopKeyMap{}
	shift := layout.DesktopKeyMap{}
	for _, k := range isokey.All() {
		def.Set(k, keyvalue.Symbol(string(k.Reference())))
		shift.Set(k, keyvalue.Symbol(string(k.ShiftedReference())))
	}
	modes := layout.NewDesktopModes()
	modes.Set("default", def)
	modes.Set("shift", shift)

	l := layout.New()
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetWin, modes))

	artifacts, err := New(nil).Export(nil, "en", l)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	out := string(artifacts[0].Data)

	assert.Contains(t, out, "(input-method en en-win)\n(title \"en\")\n")
	assert.Contains(t, out, `        ("a" "a")`+"\n")
	assert.Contains(t, out, `        ("A" "A")`+"\n")
	assert.Contains(t, out, `        ("\"" "\"")`+"\n")
	assert.Contains(t, out, `        ("\\" "\\")`+"\n")
	assert.Contains(t, out, `        ("\(" "\(")`+"\n")
	assert.Contains(t, out, `        (">" ">")`+"\n")
	assert.Equal(t, 2*isokey.Count, strings.Count(out, "\n        ("))
}

func TestExportSharedShiftedCharacters(t *testing.T) {
	def := layout.DesktopKeyMap{}
	shift := layout.DesktopKeyMap{}
	for _, k := range isokey.All() {
		def.Set(k, keyvalue.Symbol(string(k.Reference())))
		shift.Set(k, keyvalue.Symbol(string(k.ShiftedReference())))
	}
	modes := layout.NewDesktopModes()
	modes.Set("default", def)
	modes.Set("shift", shift)

	l := layout.New()
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetX11, modes))

	artifacts, err := New(nil).Export(nil, "en", l)
	require.NoError(t, err)
	out := string(artifacts[0].Data)

	// B00 and B09 both shift to '>', B08 shifts to the '<' of B00.
	assert.Equal(t, 1, strings.Count(out, `(">" `))
	assert.Equal(t, 1, strings.Count(out, `("<" `))
	assert.Contains(t, out, `        ((S-.) ">")`+"\n")
	assert.Contains(t, out, `        ((S-,) "<")`+"\n")
	assert.Equal(t, 2, strings.Count(out, "(S-"))
}

func TestExportModifierLevels(t *testing.T) {
	modes := layout.NewDesktopModes()
	modes.Set("default", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("a"), isokey.D01: keyvalue.Symbol(" ")})
	modes.Set("alt", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("á")})
	modes.Set("alt+shift", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("Á")})
	modes.Set("ctrl+alt", layout.DesktopKeyMap{isokey.C10: keyvalue.Symbol("ø")})
	modes.Set("cmd", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("@")})
	modes.Set("caps", layout.DesktopKeyMap{isokey.C01: keyvalue.Symbol("X")})

	l := layout.New()
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetMac, modes))

	artifacts, err := New(nil).Export(nil, "se", l)
	require.NoError(t, err)
	out := string(artifacts[0].Data)

	assert.Contains(t, out, `("a" "a")`)
	assert.Contains(t, out, `((A-a) "á")`)
	assert.Contains(t, out, `((A-A) "Á")`)
	assert.Contains(t, out, `((C-A-\;) "ø")`)
	assert.Contains(t, out, `((s-a) "@")`)
	assert.NotContains(t, out, `"X"`)
	assert.NotContains(t, out, `"q"`, "space output is skipped")
}

func TestExportDeadKeys(t *testing.T) {
	modes := layout.NewDesktopModes()
	modes.Set("default", layout.DesktopKeyMap{
		isokey.D12: keyvalue.Symbol("´"),
		isokey.D11: keyvalue.Symbol("^"),
	})

	l := layout.New()
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetX11, modes))
	l.AddDeadKey(layout.TargetX11, "default", "´")
	l.AddDeadKey(layout.TargetX11, "default", "^")
	l.AddDeadKey(layout.TargetX11, "shift", "´")
	l.SetTransform("´", "a", "á")
	l.SetTransform("´", " ", "´")

	artifacts, err := New(nil).Export(nil, "se", l)
	require.NoError(t, err)
	out := string(artifacts[0].Data)

	assert.Contains(t, out, `        ("´ " "´")`+"\n"+`        ("´a" "á")`+"\n")
	assert.Equal(t, 1, strings.Count(out, `("´a" "á")`))
	assert.NotContains(t, out, `"^a"`)
}

func TestExportNeedsDesktopModes(t *testing.T) {
	l := layout.New()
	require.NoError(t, l.Modes.SetMobileModes(layout.TargetAndroid, layout.NewMobileModes()))

	_, err := New(nil).Export(nil, "se", l)
	assert.ErrorIs(t, err, layout.ErrNoCompatibleModes)
}

func TestLanguage(t *testing.T) {
	l := layout.New()
	assert.Equal(t, "nb", Language("nb-NO", l))
	assert.Equal(t, "smj", Language("smj", l))
	assert.Equal(t, "!!", Language("!!", l))

	l.Targets = &layout.Targets{Mim: &layout.MimTarget{Language: "sme"}}
	assert.Equal(t, "sme", Language("se", l))
}
