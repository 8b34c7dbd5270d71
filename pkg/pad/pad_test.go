package pad

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var b strings.Builder
	fmt.Fprintln(&b, "outer {")
	inner := New(&b)
	fmt.Fprint(inner, "a")
	fmt.Fprintln(inner, "b")
	fmt.Fprintln(inner)
	fmt.Fprintln(New(inner), "nested")
	fmt.Fprintln(&b, "}")

	assert.Equal(t, "outer {\n    ab\n\n        nested\n}\n", b.String())
}

type failingWriter struct {
	writes int
}

func (f *failingWriter) Write(b []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestErrWriterKeepsFirstError(t *testing.T) {
	var b strings.Builder
	ew := NewErrWriter(&b)
	ew.Printf("outer {\n")
	inner := ew.Indented()
	inner.Printf("%s\n", "value")
	inner.Indented().Printf("nested\n")
	ew.Printf("}\n")

	require.NoError(t, ew.Err())
	assert.Equal(t, "outer {\n    value\n        nested\n}\n", b.String())

	fw := &failingWriter{}
	ew = NewErrWriter(fw)
	inner = ew.Indented()
	inner.Printf("a\n")
	inner.Printf("b\n")
	ew.Printf("c\n")

	assert.EqualError(t, ew.Err(), "disk full")
	assert.EqualError(t, inner.Err(), "disk full")
	assert.Equal(t, 1, fw.writes)
}
