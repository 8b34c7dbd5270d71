package xkb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	ErrIncludeCycle    = errors.New("include cycle")
	ErrIncludeNotFound = errors.New("included file not found")
	ErrSectionNotFound = errors.New("section not found")
)

// ResolvedKey is a key statement together with the file it came from.
type ResolvedKey struct {
	KeyDef
	Path string
}

// Resolver expands include statements. Included files are looked up in
// each directory in turn and parsed at most once.
type Resolver struct {
	dirs  []string
	files map[string]*SymbolsFile
	stack []string
}

func NewResolver(dirs ...string) *Resolver {
	return &Resolver{
		dirs:  slices.DeleteFunc(slices.Clone(dirs), func(d string) bool { return d == "" }),
		files: map[string]*SymbolsFile{},
	}
}

func (r *Resolver) find(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	for _, dir := range r.dirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s)", ErrIncludeNotFound, name, strings.Join(r.dirs, ", "))
}

// Load parses a symbols file by name or path.
func (r *Resolver) Load(name string) (*SymbolsFile, error) {
	path, err := r.find(name)
	if err != nil {
		return nil, err
	}
	if file, ok := r.files[path]; ok {
		return file, nil
	}

	file, err := ParseSymbolsFile(path)
	if err != nil {
		return nil, err
	}
	r.files[path] = file
	return file, nil
}

// Resolve returns the keys of one section with all includes expanded in
// place, in statement order.
func (r *Resolver) Resolve(file *SymbolsFile, sectionName string) ([]ResolvedKey, error) {
	section, ok := file.Section(sectionName)
	if !ok {
		return nil, fmt.Errorf("%w: %s(%s)", ErrSectionNotFound, file.Path, sectionName)
	}

	id := file.Path + "(" + section.Name + ")"
	if slices.Contains(r.stack, id) {
		chain := append(slices.Clone(r.stack), id)
		return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(chain, " -> "))
	}
	r.stack = append(r.stack, id)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	var keys []ResolvedKey
	for _, item := range section.Items {
		switch {
		case item.Key != nil:
			keys = append(keys, ResolvedKey{KeyDef: *item.Key, Path: file.Path})

		case item.Include != nil:
			for _, inc := range item.Include {
				included, err := r.Load(inc.File)
				if err != nil {
					return nil, &ParseError{Path: file.Path, Line: inc.Line, Err: err}
				}
				resolved, err := r.Resolve(included, inc.Section)
				if err != nil {
					return nil, err
				}
				if inc.Augment {
					for i := range resolved {
						resolved[i].Augment = true
					}
				}
				keys = append(keys, resolved...)
			}
		}
	}
	return keys, nil
}
