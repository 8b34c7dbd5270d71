package isokey

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesRoundTrip(t *testing.T) {
	keys := All()
	require.Len(t, keys, Count)

	for _, k := range keys {
		parsed, err := Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.Equal(t, "E00", E00.String())
	assert.Equal(t, "D01", D01.String())
	assert.Equal(t, "C12", C12.String())
	assert.Equal(t, "B10", B10.String())
}

func TestParseRejectsOutOfRange(t *testing.T) {
	for _, code := range []string{"D00", "D13", "C00", "E13", "B11", "A01", "E1", "E1a", ""} {
		_, err := Parse(code)
		assert.ErrorIs(t, err, ErrUnknownKey, code)
	}
}

func TestReference(t *testing.T) {
	assert.Equal(t, '`', E00.Reference())
	assert.Equal(t, 'q', D01.Reference())
	assert.Equal(t, '\\', C12.Reference())
	assert.Equal(t, '<', B00.Reference())
	assert.Equal(t, '/', B10.Reference())
	assert.Equal(t, 'Q', D01.ShiftedReference())
	assert.Equal(t, '|', C12.ShiftedReference())
}

// The ANSI layout names the backslash key D13 and has no C12. Iterating it
// must still yield 48 populated keys with the backslash at C12.
func TestRowIteratorD13Workaround(t *testing.T) {
	const layout = "§ 1 2 3 4 5 6 7 8 9 0 + ´\n" +
		"q w e r t y u i o p å ¨ '\n" +
		"a s d f g h j k l ö ä\n" +
		"< z x c v b n m , . -"

	var codes []string
	for _, k := range All() {
		if k == C12 {
			continue
		}
		codes = append(codes, k.String())
		if k == D12 {
			codes = append(codes, D13)
		}
	}

	tokens := strings.Fields(layout)
	require.Len(t, tokens, Count)
	require.Len(t, codes, Count)

	values := make(map[string]string, Count)
	for i, code := range codes {
		values[code] = tokens[i]
	}

	var got []string
	it := NewRowIterator(values)
	for it.Next() {
		require.True(t, it.Present(), "key %s", it.Key())
		got = append(got, fmt.Sprintf("%s=%s", it.Key(), it.Value()))
	}

	require.Len(t, got, Count)
	assert.Equal(t, "C12='", got[C12])
	assert.Equal(t, "C11=ä", got[C11])
	assert.Equal(t, "B00=<", got[B00])
}

func TestRowIteratorPrefersC12(t *testing.T) {
	it := NewRowIterator(map[string]string{"C12": "#", "D13": "'"})
	for it.Next() {
		if it.Key() == C12 {
			assert.Equal(t, "#", it.Value())
			return
		}
	}
	t.Fatal("C12 not visited")
}

func TestXKBNames(t *testing.T) {
	assert.Equal(t, "TLDE", E00.XKBName())
	assert.Equal(t, "AE01", E01.XKBName())
	assert.Equal(t, "BKSL", C12.XKBName())
	assert.Equal(t, "LSGT", B00.XKBName())

	for _, k := range All() {
		parsed, err := ParseXKBName(k.XKBName())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseXKBName("AC12")
	require.NoError(t, err)
	assert.Equal(t, C12, k)

	k, err = ParseXKBName("AD13")
	require.NoError(t, err)
	assert.Equal(t, C12, k)

	_, err = ParseXKBName("SPCE")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestWindowsTable(t *testing.T) {
	assert.Equal(t, Windows{ScanCode: "29", VK: "OEM_3"}, E00.Windows())
	assert.Equal(t, Windows{ScanCode: "2b", VK: "OEM_5"}, C12.Windows())
	assert.Equal(t, Windows{ScanCode: "35", VK: "OEM_2"}, B10.Windows())

	seen := map[string]bool{}
	for _, k := range All() {
		sc := k.Windows().ScanCode
		assert.False(t, seen[sc], "duplicate scan code %s", sc)
		seen[sc] = true
	}
}
