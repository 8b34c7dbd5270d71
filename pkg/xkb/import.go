// Package xkb reads and writes X11 XKB symbol files.
package xkb

import (
	"fmt"
	"path/filepath"
	"strings"

	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/modifiers"
	"go.uber.org/zap"
)

const (
	Format       = "xkb"
	basicSection = "basic"
)

// Shift levels one to four of the first group.
var levels = [...]string{modifiers.Default, modifiers.Shift, modifiers.Alt, modifiers.AltShift}

type Codec struct {
	log        *zap.SugaredLogger
	symbolsDir string
	registry   *Registry
}

type Option func(*Codec)

// WithSymbolsDir adds a directory searched for included files after the
// directory of the imported file.
func WithSymbolsDir(dir string) Option {
	return func(c *Codec) {
		c.symbolsDir = dir
	}
}

// WithRegistry names imported layouts from the evdev.xml registry.
func WithRegistry(r *Registry) Option {
	return func(c *Codec) {
		c.registry = r
	}
}

func New(log *zap.SugaredLogger, opts ...Option) *Codec {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &Codec{log: log}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) Format() string {
	return Format
}

// SplitPath separates "symbols/no(smi)" into the file path and section.
func SplitPath(path string) (file, section string) {
	if !strings.HasSuffix(path, ")") {
		return path, ""
	}
	open := strings.LastIndexByte(path, '(')
	if open < 0 {
		return path, ""
	}
	return path[:open], path[open+1 : len(path)-1]
}

// Import reads one section of a symbols file, "file(section)" or just
// "file" for the default section.
func (c *Codec) Import(path string) ([]codec.Imported, error) {
	filePath, sectionName := SplitPath(path)
	filePath = filepath.Clean(filePath)

	file, err := ParseSymbolsFile(filePath)
	if err != nil {
		return nil, err
	}
	section, ok := file.Section(sectionName)
	if !ok {
		return nil, fmt.Errorf("%w: %s(%s)", ErrSectionNotFound, filePath, sectionName)
	}

	resolver := NewResolver(filepath.Dir(filePath), c.symbolsDir)
	keys, err := resolver.Resolve(file, section.Name)
	if err != nil {
		return nil, err
	}

	l, err := c.ToLayout(keys)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	base := filepath.Base(filePath)
	if name := c.registry.Description(base, section.Name); name != "" {
		l.DisplayNames["en"] = name
	} else if name := section.GroupName(); name != "" {
		l.DisplayNames["en"] = name
	}

	locale := base
	if section.Name != basicSection && !section.IsDefault() {
		locale = base + "-" + section.Name
	}
	c.log.Debugw("imported symbols", "path", filePath, "section", section.Name, "locale", locale, "keys", len(keys))

	return []codec.Imported{{Locale: locale, Layout: l}}, nil
}

type levelValue struct {
	text string
	dead bool
}

// ToLayout builds x11 modes from resolved keys. Later definitions of a key
// replace earlier ones level by level; NoSymbol leaves a level untouched,
// and augmenting keys only fill levels that are still empty.
func (c *Codec) ToLayout(keys []ResolvedKey) (*layout.Layout, error) {
	var values [len(levels)]map[isokey.Key]levelValue
	for i := range values {
		values[i] = map[isokey.Key]levelValue{}
	}

	for _, rk := range keys {
		k, err := isokey.ParseXKBName(rk.Name)
		if err != nil {
			c.log.Debugw("skipping key", "key", rk.Name, "path", rk.Path)
			continue
		}

		for i, sym := range rk.Levels {
			if i >= len(levels) {
				c.log.Debugw("ignoring extra levels", "key", rk.Name, "levels", len(rk.Levels))
				break
			}
			text, dead, err := LookupKeysym(sym)
			if err != nil {
				return nil, &ParseError{Path: rk.Path, Line: rk.Line, Err: fmt.Errorf("key <%s>: %w", rk.Name, err)}
			}
			if text == "" {
				continue
			}
			if _, set := values[i][k]; set && rk.Augment {
				continue
			}
			values[i][k] = levelValue{text: text, dead: dead}
		}
	}

	if len(values[0]) == 0 {
		return nil, layout.ErrNoDefaultLevel
	}

	l := layout.New()
	modes := layout.NewDesktopModes()
	for i, level := range levels {
		if len(values[i]) == 0 {
			continue
		}
		km := layout.DesktopKeyMap{}
		for _, k := range isokey.All() {
			v, ok := values[i][k]
			if !ok {
				continue
			}
			km.Set(k, keyvalue.Symbol(v.text))
			if v.dead {
				l.AddDeadKey(layout.TargetX11, level, v.text)
			}
		}
		modes.Set(level, km)
	}

	if err := l.Modes.SetDesktopModes(layout.TargetX11, modes); err != nil {
		return nil, err
	}
	return l, nil
}
