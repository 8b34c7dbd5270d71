//go:generate go run ./internal/genkeysyms -o keysyms_gen.go /usr/include/X11/keysymdef.h

package xkb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrUnknownKeysym = errors.New("unknown keysym")

const (
	noSymbol   = "NoSymbol"
	voidSymbol = "VoidSymbol"

	// Numeric keysyms at or above this offset encode a Unicode code point.
	unicodeKeysymOffset = 0x01000000
)

var runeByName, nameByRune = indexKeysyms(
	[][]keysym{keysymNames, keysymdefNames},
	[][]keysym{keysymAliases, keysymdefLegacy},
)

var deadRuneByName, deadNameByRune = indexKeysyms([][]keysym{deadKeysymNames}, nil)

// indexKeysyms builds the lookup maps. Earlier tables win, and only the
// written tables name a character on export.
func indexKeysyms(written, inputOnly [][]keysym) (map[string]rune, map[rune]string) {
	byName := map[string]rune{}
	byRune := map[rune]string{}
	for _, table := range written {
		for _, ks := range table {
			if _, ok := byName[ks.name]; !ok {
				byName[ks.name] = ks.r
			}
			if _, ok := byRune[ks.r]; !ok {
				byRune[ks.r] = ks.name
			}
		}
	}
	for _, table := range inputOnly {
		for _, ks := range table {
			if _, ok := byName[ks.name]; !ok {
				byName[ks.name] = ks.r
			}
		}
	}
	return byName, byRune
}

// LookupKeysym returns the text a keysym produces and whether it is a dead
// key. NoSymbol and VoidSymbol return empty text.
func LookupKeysym(name string) (text string, dead bool, err error) {
	switch name {
	case noSymbol, voidSymbol:
		return "", false, nil
	}

	if r, ok := deadRuneByName[name]; ok {
		return string(r), true, nil
	}
	if strings.HasPrefix(name, "dead_") {
		return "", false, fmt.Errorf("%w: %s", ErrUnknownKeysym, name)
	}

	if r, ok := runeByName[name]; ok {
		return string(r), false, nil
	}

	if hex, ok := strings.CutPrefix(name, "U"); ok && len(hex) >= 4 && len(hex) <= 6 {
		if r, ok := parseCodePoint(hex); ok {
			return string(r), false, nil
		}
	}

	if hex, ok := strings.CutPrefix(strings.ToLower(name), "0x"); ok {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			if r, ok := numericKeysym(v); ok {
				return string(r), false, nil
			}
		}
	}

	return "", false, fmt.Errorf("%w: %s", ErrUnknownKeysym, name)
}

func parseCodePoint(hex string) (rune, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	return r, utf8.ValidRune(r) && r != 0
}

func numericKeysym(v uint64) (rune, bool) {
	switch {
	case v >= unicodeKeysymOffset:
		r := rune(v - unicodeKeysymOffset)
		return r, utf8.ValidRune(r) && r != 0
	case v >= 0x20 && v <= 0x7e, v >= 0xa0 && v <= 0xff:
		return rune(v), true
	}
	return 0, false
}

// KeysymName returns the keysym for a single character, preferring the
// symbolic name.
func KeysymName(r rune) string {
	if name, ok := nameByRune[r]; ok {
		return name
	}
	return fmt.Sprintf("U%04X", r)
}

// DeadKeysymName returns the dead_* keysym recorded for a dead key value.
func DeadKeysymName(value string) (string, bool) {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return "", false
	}
	name, ok := deadNameByRune[r]
	return name, ok
}
