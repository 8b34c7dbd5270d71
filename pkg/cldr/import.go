// Package cldr reads and writes Unicode CLDR keyboard XML.
package cldr

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/modifiers"
	"go.uber.org/zap"
)

const Format = "cldr"

type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Codec struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Codec {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Codec{log: log}
}

func (c *Codec) Format() string {
	return Format
}

func Parse(r io.Reader, path string) (*Keyboard, error) {
	kbd := &Keyboard{}
	if err := xml.NewDecoder(r).Decode(kbd); err != nil {
		parseErr := &ParseError{Path: path, Err: err}
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			parseErr.Line = syntaxErr.Line
		}
		return nil, parseErr
	}
	return kbd, nil
}

func ParseFile(path string) (*Keyboard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return Parse(file, path)
}

// Import reads one keyboard file, or every keyboard file below a
// directory. Files for the same locale are merged into one layout.
func (c *Codec) Import(path string) ([]codec.Imported, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = keyboardFiles(path)
		if err != nil {
			return nil, fmt.Errorf("list keyboard files: %w", err)
		}
	}

	byLocale := map[string]*layout.Layout{}
	for _, p := range paths {
		kbd, err := ParseFile(p)
		if err != nil {
			return nil, err
		}

		locale, l, err := c.ToLayout(kbd)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", p, err)
		}
		c.log.Debugw("imported keyboard", "path", p, "locale", locale, "targets", l.Modes.Available())

		if existing, ok := byLocale[locale]; ok {
			layout.Merge(existing, l)
			continue
		}
		byLocale[locale] = l
	}

	locales := make([]string, 0, len(byLocale))
	for locale := range byLocale {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	imported := make([]codec.Imported, 0, len(locales))
	for _, locale := range locales {
		imported = append(imported, codec.Imported{Locale: locale, Layout: byLocale[locale]})
	}
	return imported, nil
}

func keyboardFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".xml" || strings.HasPrefix(d.Name(), "_") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

// SplitLocale separates "de-t-k0-windows" into the layout locale and the
// target it describes.
func SplitLocale(locale string) (string, layout.Target) {
	base, ext, _ := strings.Cut(locale, "-t-")
	platform := strings.TrimPrefix(ext, "k0-")
	platform, _, _ = strings.Cut(platform, "-")

	switch {
	case strings.Contains(locale, "android"):
		return base, layout.TargetAndroid
	case strings.Contains(locale, "windows"):
		return base, layout.TargetWin
	case strings.Contains(locale, "osx"):
		return base, layout.TargetMac
	case strings.Contains(locale, "chrome"):
		return base, layout.TargetChrome
	}

	if t, err := layout.ParseTarget(platform); err == nil {
		return base, t
	}
	return base, layout.TargetDesktop
}

func (c *Codec) ToLayout(kbd *Keyboard) (string, *layout.Layout, error) {
	kbd, err := unescapeKeyboard(kbd)
	if err != nil {
		return "", nil, err
	}
	locale, target := SplitLocale(kbd.Locale)

	l := layout.New()
	if len(kbd.Names) > 0 {
		l.DisplayNames["en"] = kbd.Names[0].Value
	}

	for _, transforms := range kbd.Transforms {
		for _, t := range transforms.Transforms {
			first, size := utf8.DecodeRuneInString(t.From)
			if first == utf8.RuneError || size == len(t.From) {
				c.log.Debugw("skipping transform", "from", t.From, "to", t.To)
				continue
			}
			l.SetTransform(string(first), t.From[size:], t.To)
		}
	}

	if target.IsMobile() {
		err = l.Modes.SetMobileModes(target, c.mobileModes(kbd, l))
	} else {
		err = l.Modes.SetDesktopModes(target, c.desktopModes(kbd, target, l))
	}
	if err != nil {
		return "", nil, err
	}

	return locale, l, nil
}

// unescapeKeyboard returns a copy of kbd with the \u{hex} escapes of key
// outputs and transforms decoded. Long press lists stay escaped, as a
// decoded space would split an alternate; they are only checked here.
func unescapeKeyboard(kbd *Keyboard) (*Keyboard, error) {
	out := *kbd

	out.KeyMaps = make([]KeyMap, len(kbd.KeyMaps))
	for i, km := range kbd.KeyMaps {
		maps := make([]Map, len(km.Maps))
		for j, m := range km.Maps {
			to, err := keyvalue.Unescape(m.To)
			if err != nil {
				return nil, fmt.Errorf("map %s: %w", m.ISO, err)
			}
			m.To = to
			for _, alt := range strings.Fields(m.LongPress) {
				if _, err := keyvalue.Unescape(alt); err != nil {
					return nil, fmt.Errorf("map %s long press: %w", m.ISO, err)
				}
			}
			maps[j] = m
		}
		km.Maps = maps
		out.KeyMaps[i] = km
	}

	out.Transforms = make([]Transforms, len(kbd.Transforms))
	for i, transforms := range kbd.Transforms {
		list := make([]Transform, len(transforms.Transforms))
		for j, t := range transforms.Transforms {
			from, err := keyvalue.Unescape(t.From)
			if err != nil {
				return nil, fmt.Errorf("transform %q: %w", t.From, err)
			}
			to, err := keyvalue.Unescape(t.To)
			if err != nil {
				return nil, fmt.Errorf("transform %q: %w", t.From, err)
			}
			list[j] = Transform{From: from, To: to}
		}
		transforms.Transforms = list
		out.Transforms[i] = transforms
	}

	return &out, nil
}

func (c *Codec) desktopModes(kbd *Keyboard, target layout.Target, l *layout.Layout) *layout.DesktopModes {
	modes := layout.NewDesktopModes()

	for _, km := range kbd.KeyMaps {
		level := modifiers.Normalize(km.Modifiers)

		raw := map[string]string{}
		for _, m := range km.Maps {
			if m.ISO != isokey.D13 {
				if _, err := isokey.Parse(m.ISO); err != nil {
					c.log.Debugw("skipping unknown iso code", "iso", m.ISO, "level", level)
					continue
				}
			}
			raw[m.ISO] = m.To
			c.addLongPress(l, m)
		}

		keys := layout.DesktopKeyMap{}
		it := isokey.NewRowIterator(raw)
		for it.Next() {
			if !it.Present() {
				continue
			}
			keys.Set(it.Key(), keyvalue.Symbol(it.Value()))
			if _, ok := l.Transforms[it.Value()]; ok {
				l.AddDeadKey(target, level, it.Value())
			}
		}

		modes.Set(level, keys)
	}

	return modes
}

// Mobile files have no physical geometry. A change of row letter in the iso
// code starts a new row.
func (c *Codec) mobileModes(kbd *Keyboard, l *layout.Layout) *layout.MobileModes {
	modes := layout.NewMobileModes()

	for _, km := range kbd.KeyMaps {
		var rows layout.MobileKeyMap
		var row []string
		var letter byte

		for _, m := range km.Maps {
			if m.ISO == "" {
				continue
			}
			if m.ISO[0] != letter && len(row) > 0 {
				rows = append(rows, row)
				row = nil
			}
			letter = m.ISO[0]
			row = append(row, mobileToken(m.To))
			c.addLongPress(l, m)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}

		modes.Set(km.Modifiers, rows)
	}

	return modes
}

func mobileToken(to string) string {
	return keyvalue.Encode(keyvalue.Symbol(to))
}

func (c *Codec) addLongPress(l *layout.Layout, m Map) {
	var alternates layout.Alternates
	for _, field := range strings.Fields(m.LongPress) {
		alt, _ := keyvalue.Unescape(field)
		alternates = append(alternates, alt)
	}
	if len(alternates) == 0 {
		return
	}
	if l.LongPress == nil {
		l.LongPress = map[string]layout.Alternates{}
	}
	l.LongPress[m.To] = alternates
}
