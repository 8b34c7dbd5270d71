// Package isokey models the 48 alphanumeric positions of an ISO keyboard.
//
// Keys are named by row letter and column: E is the number row, D the top
// letter row, C the home row and B the bottom row. The order of the
// constants is the canonical iteration order used by every serialized form.
package isokey

import (
	"errors"
	"fmt"
	"strings"
)

type Key uint8

const (
	E00 Key = iota
	E01
	E02
	E03
	E04
	E05
	E06
	E07
	E08
	E09
	E10
	E11
	E12
	D01
	D02
	D03
	D04
	D05
	D06
	D07
	D08
	D09
	D10
	D11
	D12
	C01
	C02
	C03
	C04
	C05
	C06
	C07
	C08
	C09
	C10
	C11
	C12
	B00
	B01
	B02
	B03
	B04
	B05
	B06
	B07
	B08
	B09
	B10
)

const Count = 48

var ErrUnknownKey = errors.New("unknown iso key")

type row struct {
	letter   byte
	min, max int
	first    Key
}

var rows = [...]row{
	{letter: 'E', min: 0, max: 12, first: E00},
	{letter: 'D', min: 1, max: 12, first: D01},
	{letter: 'C', min: 1, max: 12, first: C01},
	{letter: 'B', min: 0, max: 10, first: B00},
}

// US reference characters, unshifted and shifted, in key order.
var (
	reference        = []rune("`1234567890-=qwertyuiop[]asdfghjkl;'\\<zxcvbnm,./")
	shiftedReference = []rune("~!@#$%^&*()_+QWERTYUIOP{}ASDFGHJKL:\"|>ZXCVBNM<>?")
)

func All() []Key {
	keys := make([]Key, Count)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

func (k Key) Valid() bool {
	return k < Count
}

func (k Key) rowInfo() row {
	for i := len(rows) - 1; i >= 0; i-- {
		if k >= rows[i].first {
			return rows[i]
		}
	}
	return rows[0]
}

// Row returns the row letter of the key.
func (k Key) Row() byte {
	return k.rowInfo().letter
}

// Column returns the column number as written in the key name.
func (k Key) Column() int {
	r := k.rowInfo()
	return r.min + int(k-r.first)
}

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return fmt.Sprintf("%c%02d", k.Row(), k.Column())
}

func Parse(code string) (Key, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, code)
	}

	if code[1] < '0' || code[1] > '9' || code[2] < '0' || code[2] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, code)
	}
	col := int(code[1]-'0')*10 + int(code[2]-'0')

	for _, r := range rows {
		if r.letter != code[0] {
			continue
		}
		if col < r.min || col > r.max {
			break
		}
		return r.first + Key(col-r.min), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, code)
}

func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Reference returns the character the key produces on a US keyboard.
// B00 does not exist there and reports '<'.
func (k Key) Reference() rune {
	return reference[k]
}

func (k Key) ShiftedReference() rune {
	return shiftedReference[k]
}
