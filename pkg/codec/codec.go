// Package codec defines the capability every format converter exposes.
package codec

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"codeberg.org/miketth/kbdconv/pkg/layout"
)

var ErrUnknownFormat = errors.New("unknown format")

// Artifact is one generated file. Path is relative to the output directory
// of the layout it was generated from.
type Artifact struct {
	Path string
	Data []byte
}

type Exporter interface {
	Format() string
	Export(project *layout.Project, locale string, l *layout.Layout) ([]Artifact, error)
}

// Imported is one layout read from a source file.
type Imported struct {
	Locale string
	Layout *layout.Layout
}

type Importer interface {
	Format() string
	Import(path string) ([]Imported, error)
}

type Registry struct {
	exporters map[string]Exporter
	importers map[string]Importer
}

func NewRegistry() *Registry {
	return &Registry{
		exporters: map[string]Exporter{},
		importers: map[string]Importer{},
	}
}

func (r *Registry) RegisterExporter(e Exporter) {
	r.exporters[e.Format()] = e
}

func (r *Registry) RegisterImporter(i Importer) {
	r.importers[i.Format()] = i
}

func (r *Registry) Exporter(format string) (Exporter, error) {
	e, ok := r.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q, have %v", ErrUnknownFormat, format, r.ExportFormats())
	}
	return e, nil
}

func (r *Registry) Importer(format string) (Importer, error) {
	i, ok := r.importers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q, have %v", ErrUnknownFormat, format, r.ImportFormats())
	}
	return i, nil
}

func (r *Registry) ExportFormats() []string {
	return sortedNames(r.exporters)
}

func (r *Registry) ImportFormats() []string {
	return sortedNames(r.importers)
}

// Exporters resolves a list of formats, or every registered exporter when
// the list is empty.
func (r *Registry) Exporters(formats ...string) ([]Exporter, error) {
	if len(formats) == 0 {
		formats = r.ExportFormats()
	}

	sorted := slices.Clone(formats)
	slices.Sort(sorted)
	exporters := make([]Exporter, 0, len(formats))
	for _, format := range slices.Compact(sorted) {
		e, err := r.Exporter(format)
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, e)
	}
	return exporters, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
