package json

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"codeberg.org/miketth/kbdconv/pkg/layout"
)

type document struct {
	Project *layout.Project            `json:"project,omitempty"`
	Layouts map[string]json.RawMessage `json:"layouts"`
}

// LayoutStore keeps every layout in one JSON file. Layouts are held in
// their encoded form and validated against the layout schema on the way in
// and on the way out.
type LayoutStore struct {
	doc   document
	file  *os.File
	lock  sync.Mutex
	dirty bool
}

func NewLayoutStore(filename string) (*LayoutStore, error) {
	fileExists := true
	info, err := os.Stat(filename)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		fileExists = false
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	store := &LayoutStore{
		doc:   document{Layouts: make(map[string]json.RawMessage)},
		file:  file,
		dirty: true,
	}

	if fileExists {
		err = store.load()
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("load: %w", err)
		}

		store.dirty = false
	}

	return store, nil
}

func (s *LayoutStore) Close() error {
	return s.file.Close()
}

func (s *LayoutStore) load() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	var doc document
	dec := json.NewDecoder(s.file)
	err = dec.Decode(&doc)
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	for locale, raw := range doc.Layouts {
		if err := layout.ValidateJSON(raw); err != nil {
			return &layout.LoadError{Locale: locale, Err: err}
		}
	}
	if doc.Layouts == nil {
		doc.Layouts = make(map[string]json.RawMessage)
	}
	s.doc = doc

	return nil
}

// Flush writes the file if anything changed since the last write.
func (s *LayoutStore) Flush() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.dirty {
		return nil
	}

	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	err = s.file.Truncate(0)
	if err != nil {
		return fmt.Errorf("truncate file: %w", err)
	}

	enc := json.NewEncoder(s.file)
	enc.SetIndent("", "  ")
	err = enc.Encode(s.doc)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	s.dirty = false

	return nil
}

func (s *LayoutStore) Locales() ([]string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	locales := make([]string, 0, len(s.doc.Layouts))
	for locale := range s.doc.Layouts {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales, nil
}

func (s *LayoutStore) Load(locale string) (*layout.Layout, error) {
	s.lock.Lock()
	raw, ok := s.doc.Layouts[locale]
	s.lock.Unlock()
	if !ok {
		return nil, &layout.LoadError{Locale: locale, Err: layout.ErrNotFound}
	}

	l := layout.New()
	if err := json.Unmarshal(raw, l); err != nil {
		return nil, &layout.LoadError{Locale: locale, Err: fmt.Errorf("decode json: %w", err)}
	}
	return l, nil
}

func (s *LayoutStore) Save(locale string, l *layout.Layout) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return &layout.SaveError{Locale: locale, Err: fmt.Errorf("encode json: %w", err)}
	}
	if err := layout.ValidateJSON(raw); err != nil {
		return &layout.SaveError{Locale: locale, Err: err}
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.doc.Layouts[locale] = raw
	s.dirty = true
	return nil
}

func (s *LayoutStore) Project() (*layout.Project, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	p := &layout.Project{Locales: map[string]layout.ProjectDesc{}}
	if s.doc.Project == nil {
		return p, nil
	}
	*p = *s.doc.Project
	p.Locales = make(map[string]layout.ProjectDesc, len(s.doc.Project.Locales))
	for locale, desc := range s.doc.Project.Locales {
		p.Locales[locale] = desc
	}
	return p, nil
}

func (s *LayoutStore) SaveProject(p *layout.Project) error {
	if p == nil {
		return fmt.Errorf("save project: nil project")
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	copied := *p
	s.doc.Project = &copied
	s.dirty = true
	return nil
}
