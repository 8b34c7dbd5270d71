package codec

import (
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExporter string

func (f fakeExporter) Format() string { return string(f) }

func (f fakeExporter) Export(*layout.Project, string, *layout.Layout) ([]Artifact, error) {
	return []Artifact{{Path: string(f), Data: []byte(f)}}, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.RegisterExporter(fakeExporter("xkb"))
	r.RegisterExporter(fakeExporter("klc"))

	assert.Equal(t, []string{"klc", "xkb"}, r.ExportFormats())

	all, err := r.Exporters()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "klc", all[0].Format())

	some, err := r.Exporters("xkb", "xkb")
	require.NoError(t, err)
	require.Len(t, some, 1)

	_, err = r.Exporters("mim")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = r.Importer("cldr")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
