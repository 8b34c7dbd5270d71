package klc

import (
	"fmt"
	"unicode"
	"unicode/utf16"
)

// Longest output, in UTF-16 units, a ligature can hold.
const maxLigatureUnits = 4

type keyKind int

const (
	keyNone keyKind = iota
	keyChar
	keyDead
	keyLigature
)

// key is the output of one key on one shift state.
type key struct {
	kind  keyKind
	r     rune
	units string
}

func charKey(r rune) key {
	return key{kind: keyChar, r: r}
}

func deadKey(r rune) key {
	return key{kind: keyDead, r: r}
}

func ligatureKey(s string) key {
	return key{kind: keyLigature, units: s}
}

func (k key) isNone() bool {
	return k.kind == keyNone
}

func (k key) String() string {
	switch k.kind {
	case keyChar:
		return charString(k.r)
	case keyDead:
		return charString(k.r) + "@"
	case keyLigature:
		return "%%"
	}
	return "-1"
}

// charString writes printable ASCII as itself and everything else as
// four hex digits.
func charString(r rune) string {
	if r < unicode.MaxASCII && r > ' ' {
		return string(r)
	}
	return fmt.Sprintf("%04x", r)
}

func utf16Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// capMode is either SGCap or a bit column.
type capMode struct {
	sgCap  bool
	column int
}

func (c capMode) String() string {
	if c.sgCap {
		return "SGCap"
	}
	return fmt.Sprint(c.column)
}

// row holds every shift state of one physical key.
type row struct {
	scanCode string
	vk       string
	capMode  capMode

	normal    key
	shift     key
	ctrl      key
	alt       key
	altShift  key
	caps      key
	capsShift key
	altCaps   key
}

func (r *row) columns() []key {
	return []key{r.normal, r.shift, r.ctrl, r.alt, r.altShift}
}

// deriveCapMode decides how caps lock affects the key. When caps produces
// something other than both the base and the shifted output it gets its
// own SGCap line.
func deriveCapMode(r *row) capMode {
	if !r.caps.isNone() && r.normal != r.caps && r.shift != r.caps {
		return capMode{sgCap: true}
	}

	column := 0
	if r.caps.isNone() {
		if r.normal != r.shift {
			column++
		}
		if r.alt != r.altShift {
			column += 4
		}
		return capMode{column: column}
	}

	if r.caps == r.shift {
		column++
	}
	if r.altCaps == r.altShift {
		column += 4
	}
	return capMode{column: column}
}

type ligature struct {
	vk     string
	column int
	units  []uint16
}
