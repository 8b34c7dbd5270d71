package modifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                    Default,
		"   ":                 Default,
		"default":             Default,
		"shift":               Shift,
		"shiftL":              Shift,
		"shiftR":              Shift,
		"shift caps":          Shift,
		"caps shift":          Shift,
		"caps":                Caps,
		"caps+shift":          CapsShift,
		"shift+caps":          CapsShift,
		"opt":                 Alt,
		"optR":                Alt,
		"altR+shift":          AltShift,
		"shift+opt":           AltShift,
		"optL+shiftR":         AltShift,
		"ctrlL":               Ctrl,
		"cmd":                 Cmd,
		"commandR":            Cmd,
		"super":               Cmd,
		"shift+cmd":           CmdShift,
		"caps+opt":            CapsAlt,
		"opt+caps+shift":      CapsAltShift,
		"shift? caps":         Default,
		"opt+shift? ctrl":     Alt,
		"ctrl+opt opt+caps?":  Alt,
		"shift+shiftL":        Shift,
		"fn":                  "fn",
		"fnR+shift":           "shift+fnR",
		"ctrl+shift caps+alt": CapsAlt,
	}

	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "shift", "shift caps", "caps shift", "optR+shiftL", "ctrl+opt opt+caps?",
		"cmd+shift", "fn", "opt+caps+shift", "altgr",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestShiftCapsEquivalence(t *testing.T) {
	assert.Equal(t, Normalize("shift caps"), Normalize("caps shift"))
	assert.Equal(t, Shift, Normalize("caps shift"))
}

func TestSplitJoinHas(t *testing.T) {
	assert.Nil(t, Split(Default))
	assert.Equal(t, []string{"alt", "shift"}, Split(AltShift))
	assert.Equal(t, AltShift, Join("shift", "alt"))
	assert.Equal(t, Default, Join())
	assert.True(t, Has(CapsAltShift, Caps))
	assert.False(t, Has(AltShift, Caps))
	assert.False(t, Has(Default, Default))
}
