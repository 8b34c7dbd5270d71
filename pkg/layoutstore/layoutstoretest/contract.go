// Package layoutstoretest checks a layoutstore.Store implementation against
// the behaviour every store shares.
package layoutstoretest

import (
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample returns a small layout with one desktop target, a dead key and a
// transform.
func Sample(t testing.TB, name string) *layout.Layout {
	t.Helper()

	base := layout.DesktopKeyMap{}
	base.Set(isokey.C01, keyvalue.Symbol("a"))
	base.Set(isokey.C11, keyvalue.Symbol("´"))
	shift := layout.DesktopKeyMap{}
	shift.Set(isokey.C01, keyvalue.Symbol("A"))

	modes := layout.NewDesktopModes()
	modes.Set("default", base)
	modes.Set("shift", shift)

	l := layout.New()
	l.DisplayNames["en"] = name
	require.NoError(t, l.Modes.SetDesktopModes(layout.TargetWin, modes))
	l.AddDeadKey(layout.TargetWin, "default", "´")
	l.SetTransform("´", "a", "á")
	return l
}

// Run exercises the store returned by newStore, which must be empty.
func Run(t *testing.T, newStore func(t *testing.T) layoutstore.Store) {
	t.Run("empty", func(t *testing.T) {
		s := newStore(t)

		locales, err := s.Locales()
		require.NoError(t, err)
		assert.Empty(t, locales)

		_, err = s.Load("se")
		assert.ErrorIs(t, err, layout.ErrNotFound)
		var loadErr *layout.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, "se", loadErr.Locale)

		p, err := s.Project()
		require.NoError(t, err)
		assert.Empty(t, p.Locales)
	})

	t.Run("save and load", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save("sme", Sample(t, "Northern Sami")))
		require.NoError(t, s.Save("se", Sample(t, "Swedish")))

		locales, err := s.Locales()
		require.NoError(t, err)
		assert.Equal(t, []string{"se", "sme"}, locales)

		l, err := s.Load("sme")
		require.NoError(t, err)
		assert.Equal(t, "Northern Sami", l.Name())
		assert.Equal(t, []layout.Target{layout.TargetWin}, l.Modes.Available())

		modes := l.Modes.DesktopModes(layout.TargetWin)
		assert.Equal(t, []string{"default", "shift"}, modes.Modifiers())
		shift, ok := modes.Get("shift")
		require.True(t, ok)
		text, ok := shift.Symbol(isokey.C01)
		require.True(t, ok)
		assert.Equal(t, "A", text)

		assert.True(t, l.IsDeadKey(layout.TargetWin, "default", "´"))
		assert.Equal(t, "á", l.Transforms["´"]["a"])
	})

	t.Run("save replaces", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save("se", Sample(t, "Old")))
		require.NoError(t, s.Save("se", Sample(t, "New")))

		l, err := s.Load("se")
		require.NoError(t, err)
		assert.Equal(t, "New", l.Name())

		locales, err := s.Locales()
		require.NoError(t, err)
		assert.Equal(t, []string{"se"}, locales)
	})

	t.Run("loaded layouts are copies", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save("se", Sample(t, "Swedish")))

		l, err := s.Load("se")
		require.NoError(t, err)
		l.DisplayNames["en"] = "Changed"

		again, err := s.Load("se")
		require.NoError(t, err)
		assert.Equal(t, "Swedish", again.Name())
	})

	t.Run("project", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SaveProject(&layout.Project{
			Locales: map[string]layout.ProjectDesc{"en": {Name: "Sami keyboards", Description: "Keyboards for Sami languages"}},
			Author:  "Divvun",
		}))

		p, err := s.Project()
		require.NoError(t, err)
		assert.Equal(t, "Sami keyboards", p.Name())
		assert.Equal(t, "Divvun", p.Author)
	})
}
