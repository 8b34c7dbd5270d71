package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// LayoutStore keeps each layout as a YAML document in its own row.
type LayoutStore struct {
	db      *sql.DB
	querier *Queries
}

func NewLayoutStore(filename string, log *zap.SugaredLogger) (*LayoutStore, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	querier := New(db)

	return &LayoutStore{
		db:      db,
		querier: querier,
	}, nil
}

func (s *LayoutStore) Close() error {
	return s.db.Close()
}

func (s *LayoutStore) Locales() ([]string, error) {
	locales, err := s.querier.ListLocales(context.Background())
	if err != nil {
		return nil, fmt.Errorf("sqlite select: %w", err)
	}
	return locales, nil
}

func (s *LayoutStore) Load(locale string) (*layout.Layout, error) {
	document, err := s.querier.GetLayout(context.Background(), locale)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, &layout.LoadError{Locale: locale, Err: layout.ErrNotFound}
	case err != nil:
		return nil, &layout.LoadError{Locale: locale, Err: fmt.Errorf("sqlite select: %w", err)}
	}

	l, err := layout.Decode(strings.NewReader(document))
	if err != nil {
		return nil, &layout.LoadError{Locale: locale, Err: err}
	}
	return l, nil
}

func (s *LayoutStore) Save(locale string, l *layout.Layout) error {
	document, err := layout.Marshal(l)
	if err != nil {
		return &layout.SaveError{Locale: locale, Err: err}
	}

	if err := s.querier.SetLayout(context.Background(), SetLayoutParams{
		Locale:   locale,
		Document: string(document),
	}); err != nil {
		return &layout.SaveError{Locale: locale, Err: fmt.Errorf("sqlite update: %w", err)}
	}

	return nil
}

func (s *LayoutStore) Project() (*layout.Project, error) {
	document, err := s.querier.GetProject(context.Background())
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return &layout.Project{Locales: map[string]layout.ProjectDesc{}}, nil
	case err != nil:
		return nil, fmt.Errorf("sqlite select: %w", err)
	}

	p, err := layout.DecodeProject(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}

func (s *LayoutStore) SaveProject(p *layout.Project) error {
	var buf bytes.Buffer
	if err := layout.EncodeProject(&buf, p); err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	if err := s.querier.SetProject(context.Background(), buf.String()); err != nil {
		return fmt.Errorf("sqlite update: %w", err)
	}

	return nil
}
