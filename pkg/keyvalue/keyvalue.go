// Package keyvalue encodes and decodes the output of a single key.
//
// A key either produces a symbol, is a sized non-character key (a spacer,
// a wide shift key on a soft keyboard) or is intentionally empty. The text
// form is what layout files store:
//
//	a          Symbol("a")
//	\u{301}    Symbol("\u0301")
//	\s{shift}  Special{id: "shift", width: 1}
//	\s{spc:2.50}
//	\u{0}      None
package keyvalue

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindSymbol
	KindSpecial
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSymbol:
		return "symbol"
	case KindSpecial:
		return "special"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

const DefaultWidth = 1.0

// Value is comparable with == and usable as a map value. The zero Value is None.
type Value struct {
	kind  Kind
	text  string
	id    string
	width float64
}

var (
	ErrInvalidEscape  = errors.New("invalid unicode escape")
	ErrInvalidSpecial = errors.New("invalid special key")
	ErrInvalidUTF8    = errors.New("invalid utf-8")
)

var (
	specialIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)
	specialPattern   = regexp.MustCompile(`^\\s\{([^:}]*)(?::([^}]*))?\}$`)
)

const noneText = `\u{0}`

func None() Value {
	return Value{}
}

func Symbol(text string) Value {
	return Value{kind: KindSymbol, text: text}
}

// Special builds a non-character key. The width is kept to two decimals,
// which is the precision of the text form.
func Special(id string, width float64) (Value, error) {
	if !specialIDPattern.MatchString(id) {
		return Value{}, fmt.Errorf("%w: id %q", ErrInvalidSpecial, id)
	}
	rounded := math.Round(width*100) / 100
	if math.IsNaN(rounded) || math.IsInf(rounded, 0) || rounded < 0 {
		return Value{}, fmt.Errorf("%w: width %v", ErrInvalidSpecial, width)
	}
	return Value{kind: KindSpecial, id: id, width: rounded}, nil
}

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsNone() bool      { return v.kind == KindNone }
func (v Value) IsSymbol() bool    { return v.kind == KindSymbol }
func (v Value) IsSpecial() bool   { return v.kind == KindSpecial }
func (v Value) Text() string      { return v.text }
func (v Value) SpecialID() string { return v.id }

func (v Value) Width() float64 {
	if v.kind == KindSpecial {
		return v.width
	}
	return DefaultWidth
}

// SymbolText returns the symbol and whether v holds a non-empty one.
func (v Value) SymbolText() (string, bool) {
	if v.kind != KindSymbol || v.text == "" {
		return "", false
	}
	return v.text, true
}

// Compare orders values by kind, then by content.
func Compare(a, b Value) int {
	switch {
	case a.kind != b.kind:
		if a.kind < b.kind {
			return -1
		}
		return 1
	case a.text != b.text:
		return strings.Compare(a.text, b.text)
	case a.id != b.id:
		return strings.Compare(a.id, b.id)
	case a.width < b.width:
		return -1
	case a.width > b.width:
		return 1
	}
	return 0
}

func (v Value) String() string {
	return Encode(v)
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(Encode(v)), nil
}

func (v *Value) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func Decode(text string) (Value, error) {
	if !utf8.ValidString(text) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidUTF8, text)
	}

	if strings.HasPrefix(text, `\s{`) {
		return decodeSpecial(text)
	}

	if text == noneText {
		return None(), nil
	}

	unescaped, err := unescape(text)
	if err != nil {
		return Value{}, err
	}
	return Symbol(unescaped), nil
}

func decodeSpecial(text string) (Value, error) {
	m := specialPattern.FindStringSubmatch(text)
	if m == nil {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidSpecial, text)
	}

	width := DefaultWidth
	if m[2] != "" {
		w, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: width in %q", ErrInvalidSpecial, text)
		}
		width = w
	}

	return Special(m[1], width)
}

func unescape(text string) (string, error) {
	if !strings.Contains(text, `\u{`) {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))

	for {
		idx := strings.Index(text, `\u{`)
		if idx < 0 {
			b.WriteString(text)
			return b.String(), nil
		}
		b.WriteString(text[:idx])
		text = text[idx+3:]

		end := strings.IndexByte(text, '}')
		if end < 1 || end > 6 {
			return "", fmt.Errorf("%w: %q", ErrInvalidEscape, `\u{`+text)
		}
		n, err := strconv.ParseUint(text[:end], 16, 32)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidEscape, text[:end])
		}
		r := rune(n)
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: U+%X is not a scalar value", ErrInvalidEscape, n)
		}
		b.WriteRune(r)
		text = text[end+1:]
	}
}

func Encode(v Value) string {
	switch v.kind {
	case KindNone:
		return noneText
	case KindSpecial:
		if v.width == DefaultWidth {
			return `\s{` + v.id + `}`
		}
		return fmt.Sprintf(`\s{%s:%.2f}`, v.id, v.width)
	}

	// A lone NUL must not collide with the None sentinel.
	if v.text == "\x00" {
		return `\u{00}`
	}

	return Escape(v.text)
}

// Escape writes text with invisible and ambiguous characters as \u{hex},
// the form CLDR attribute values use as well.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range text {
		switch {
		case r == '\\' && escapesBackslash(text[i+1:]):
			b.WriteString(`\u{5C}`)
		case NeedsEscape(r):
			fmt.Fprintf(&b, `\u{%X}`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape decodes the \u{hex} escapes of plain text. Unlike Decode it
// never yields None or a special key.
func Unescape(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, text)
	}
	return unescape(text)
}

func escapesBackslash(rest string) bool {
	return strings.HasPrefix(rest, "u{") || strings.HasPrefix(rest, "s{")
}

// NeedsEscape reports whether r is invisible or ambiguous in a text file:
// other (including unassigned), separator and mark characters.
func NeedsEscape(r rune) bool {
	if unicode.In(r, unicode.C, unicode.Z, unicode.M) {
		return true
	}
	return !unicode.In(r, unicode.L, unicode.N, unicode.P, unicode.S)
}
