package isokey

import "fmt"

var xkbAliases = map[string]Key{
	"TLDE": E00,
	"BKSL": C12,
	"LSGT": B00,
}

// XKBName returns the keycode name used in XKB symbol files, without the
// angle brackets.
func (k Key) XKBName() string {
	switch k {
	case E00:
		return "TLDE"
	case C12:
		return "BKSL"
	case B00:
		return "LSGT"
	}
	return "A" + k.String()
}

// ParseXKBName accepts both the alias form (TLDE) and the positional form
// (AE01). Names outside the alphanumeric block return ErrUnknownKey.
func ParseXKBName(name string) (Key, error) {
	if k, ok := xkbAliases[name]; ok {
		return k, nil
	}
	if len(name) == 4 && name[0] == 'A' {
		if name == "AD13" {
			return C12, nil
		}
		return Parse(name[1:])
	}
	return 0, fmt.Errorf("%w: <%s>", ErrUnknownKey, name)
}
