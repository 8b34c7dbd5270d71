// Package convert runs the format codecs over the layouts of a store.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LayoutError is a failure confined to one layout, and to one format when
// Format is set. Other layouts still convert.
type LayoutError struct {
	Locale string
	Format string
	Target layout.Target
	Err    error
}

func (e *LayoutError) Error() string {
	var b strings.Builder
	b.WriteString("layout ")
	b.WriteString(e.Locale)
	if e.Format != "" {
		b.WriteString(" format ")
		b.WriteString(e.Format)
	}
	if e.Target != "" {
		b.WriteString(" target ")
		b.WriteString(string(e.Target))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

func newLayoutError(locale, format string, err error) *LayoutError {
	le := &LayoutError{Locale: locale, Format: format, Err: err}
	var te *layout.TargetError
	if errors.As(err, &te) {
		le.Target = te.Target
	}
	return le
}

type Converter struct {
	store    layoutstore.Store
	registry *codec.Registry
	log      *zap.SugaredLogger

	// Workers bounds how many layouts are exported at once.
	Workers int
}

func New(store layoutstore.Store, registry *codec.Registry, log *zap.SugaredLogger) *Converter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Converter{
		store:    store,
		registry: registry,
		log:      log,
		Workers:  4,
	}
}

// Result lists what an export run wrote, relative to the output directory.
type Result struct {
	Files []string
}

// Export converts the given locales, or every stored locale when none are
// given, into outDir/<locale>/<format>/. Per layout failures are collected
// into the returned error as *LayoutError values; the files of the layouts
// that did convert are written regardless.
func (c *Converter) Export(outDir string, formats []string, locales []string) (*Result, error) {
	exporters, err := c.registry.Exporters(formats...)
	if err != nil {
		return nil, fmt.Errorf("resolve formats: %w", err)
	}

	if len(locales) == 0 {
		locales, err = c.store.Locales()
		if err != nil {
			return nil, fmt.Errorf("list locales: %w", err)
		}
	}

	project, err := c.store.Project()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	var (
		wg     sync.WaitGroup
		lock   sync.Mutex
		result Result
		errs   error
	)
	work := make(chan string)

	workers := max(1, min(c.Workers, len(locales)))
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for locale := range work {
				files, err := c.exportLayout(outDir, project, locale, exporters)

				lock.Lock()
				result.Files = append(result.Files, files...)
				errs = multierr.Append(errs, err)
				lock.Unlock()
			}
		}()
	}

	for _, locale := range locales {
		work <- locale
	}
	close(work)
	wg.Wait()

	slices.Sort(result.Files)
	return &result, errs
}

func (c *Converter) exportLayout(outDir string, project *layout.Project, locale string, exporters []codec.Exporter) ([]string, error) {
	l, err := c.store.Load(locale)
	if err != nil {
		c.log.Warnw("cannot load layout", "locale", locale, "error", err)
		return nil, newLayoutError(locale, "", err)
	}

	var (
		files []string
		errs  error
	)
	for _, e := range exporters {
		artifacts, err := e.Export(project, locale, l)
		if err != nil {
			c.log.Warnw("export failed", "locale", locale, "format", e.Format(), "error", err)
			errs = multierr.Append(errs, newLayoutError(locale, e.Format(), err))
			continue
		}

		for _, a := range artifacts {
			rel := filepath.Join(locale, e.Format(), a.Path)
			if err := writeArtifact(filepath.Join(outDir, rel), a.Data); err != nil {
				errs = multierr.Append(errs, newLayoutError(locale, e.Format(), err))
				continue
			}
			c.log.Debugw("wrote artifact", "path", rel, "bytes", len(a.Data))
			files = append(files, rel)
		}
	}
	return files, errs
}

func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// Import reads path with the named importer and stores every layout found.
// A layout already stored for the same locale is merged with the imported
// one, the imported values winning.
func (c *Converter) Import(format, path string) ([]string, error) {
	importer, err := c.registry.Importer(format)
	if err != nil {
		return nil, err
	}

	imported, err := importer.Import(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}

	var (
		locales []string
		errs    error
	)
	for _, im := range imported {
		l, err := c.merged(im)
		if err != nil {
			errs = multierr.Append(errs, newLayoutError(im.Locale, format, err))
			continue
		}
		if err := c.store.Save(im.Locale, l); err != nil {
			errs = multierr.Append(errs, newLayoutError(im.Locale, format, err))
			continue
		}
		c.log.Infow("imported layout", "locale", im.Locale, "format", format, "targets", l.Modes.Available())
		locales = append(locales, im.Locale)
	}
	return locales, errs
}

func (c *Converter) merged(im codec.Imported) (*layout.Layout, error) {
	existing, err := c.store.Load(im.Locale)
	switch {
	case errors.Is(err, layout.ErrNotFound):
		return im.Layout, nil
	case err != nil:
		return nil, err
	}
	layout.Merge(existing, im.Layout)
	return existing, nil
}

// Errors splits an error returned by Export or Import into its per layout
// parts.
func Errors(err error) []*LayoutError {
	var out []*LayoutError
	for _, e := range multierr.Errors(err) {
		var le *LayoutError
		if errors.As(e, &le) {
			out = append(out, le)
		}
	}
	return out
}
