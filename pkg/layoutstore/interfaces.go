// Package layoutstore is the load/save boundary between the converters and
// wherever layout documents live.
package layoutstore

import "codeberg.org/miketth/kbdconv/pkg/layout"

// Store holds one project and one layout per locale. Load returns an error
// wrapping layout.ErrNotFound for unknown locales, as a *layout.LoadError.
// Save failures are reported as *layout.SaveError.
type Store interface {
	Locales() ([]string, error)
	Load(locale string) (*layout.Layout, error)
	Save(locale string, l *layout.Layout) error

	Project() (*layout.Project, error)
	SaveProject(p *layout.Project) error
}
