package memory

import (
	"fmt"
	"slices"
	"sync"

	"codeberg.org/miketth/kbdconv/pkg/layout"
)

type LayoutStore struct {
	layouts map[string]*layout.Layout
	project *layout.Project
	lock    sync.RWMutex
}

func NewLayoutStore() *LayoutStore {
	return &LayoutStore{
		layouts: make(map[string]*layout.Layout),
		project: &layout.Project{Locales: map[string]layout.ProjectDesc{}},
	}
}

func (s *LayoutStore) Locales() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	locales := make([]string, 0, len(s.layouts))
	for locale := range s.layouts {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales, nil
}

// Load hands out a copy, callers may modify it freely.
func (s *LayoutStore) Load(locale string) (*layout.Layout, error) {
	s.lock.RLock()
	l, ok := s.layouts[locale]
	s.lock.RUnlock()
	if !ok {
		return nil, &layout.LoadError{Locale: locale, Err: layout.ErrNotFound}
	}

	clone, err := layout.Clone(l)
	if err != nil {
		return nil, &layout.LoadError{Locale: locale, Err: err}
	}
	return clone, nil
}

func (s *LayoutStore) Save(locale string, l *layout.Layout) error {
	clone, err := layout.Clone(l)
	if err != nil {
		return &layout.SaveError{Locale: locale, Err: err}
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.layouts[locale] = clone
	return nil
}

func (s *LayoutStore) Project() (*layout.Project, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	p := *s.project
	p.Locales = make(map[string]layout.ProjectDesc, len(s.project.Locales))
	for locale, desc := range s.project.Locales {
		p.Locales[locale] = desc
	}
	return &p, nil
}

func (s *LayoutStore) SaveProject(p *layout.Project) error {
	if p == nil {
		return fmt.Errorf("save project: nil project")
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	copied := *p
	copied.Locales = make(map[string]layout.ProjectDesc, len(p.Locales))
	for locale, desc := range p.Locales {
		copied.Locales[locale] = desc
	}
	s.project = &copied
	return nil
}
