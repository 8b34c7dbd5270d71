package sqlite

import (
	"path/filepath"
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/layoutstore"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore/layoutstoretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, filename string) *LayoutStore {
	t.Helper()
	s, err := NewLayoutStore(filename, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLayoutStore(t *testing.T) {
	layoutstoretest.Run(t, func(t *testing.T) layoutstore.Store {
		return newStore(t, filepath.Join(t.TempDir(), "layouts.db"))
	})
}

func TestReopenKeepsLayouts(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "layouts.db")

	s := newStore(t, filename)
	require.NoError(t, s.Save("se", layoutstoretest.Sample(t, "Swedish")))
	require.NoError(t, s.Close())

	reopened := newStore(t, filename)
	l, err := reopened.Load("se")
	require.NoError(t, err)
	assert.Equal(t, "Swedish", l.Name())
}
