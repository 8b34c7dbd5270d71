// Package klc writes Microsoft Keyboard Layout Creator source files.
package klc

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/modifiers"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/transform"
)

const Format = "klc"

// Desktop targets a Windows layout is built from, in order of preference.
var exportTargets = []layout.Target{layout.TargetWin, layout.TargetDesktop}

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

type file struct {
	kbd          string
	description  string
	copyright    string
	company      string
	localeName   string
	localeID     uint32
	languageName string

	rows      []*row
	space     [5]key
	decimal   rune
	ligatures []ligature
	deadKeys  []deadKeyTable
}

type deadKeyTable struct {
	key     rune
	entries [][2]uint16
	space   uint16
}

func (c *Codec) Export(project *layout.Project, locale string, l *layout.Layout) ([]codec.Artifact, error) {
	f, err := c.build(project, locale, l)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.write(&buf); err != nil {
		return nil, fmt.Errorf("write klc: %w", err)
	}
	return []codec.Artifact{{Path: f.kbd + ".klc", Data: buf.Bytes()}}, nil
}

func (c *Codec) build(project *layout.Project, locale string, l *layout.Layout) (*file, error) {
	target, modes, err := l.Modes.FirstDesktop(exportTargets...)
	if err != nil {
		return nil, err
	}
	if _, ok := modes.Get(modifiers.Default); !ok {
		return nil, &layout.TargetError{Target: target, Err: layout.ErrNoDefaultLevel}
	}

	var win layout.WinTarget
	if l.Targets != nil && l.Targets.Win != nil {
		win = *l.Targets.Win
	}

	tag, err := language.Parse(locale)
	if err != nil {
		c.log.Warnw("unparseable locale", "locale", locale, "error", err)
		tag = language.Und
	}
	winLocale := lookupLocale(tag)
	if win.Locale != "" {
		winLocale.name = win.Locale
	}

	f := &file{
		kbd:          "kbd" + kbdName(win.ID, locale),
		description:  description(project, locale, l),
		localeName:   winLocale.name,
		localeID:     winLocale.id,
		languageName: win.LanguageName,
		decimal:      '.',
	}
	if project != nil {
		f.copyright = project.Copyright
		f.company = project.Organisation
	}
	if f.languageName == "" {
		f.languageName = display.Self.Name(tag)
	}
	if f.languageName == "" {
		f.languageName = "Undefined"
	}
	if r, _ := utf8.DecodeRuneInString(l.Decimal); l.Decimal != "" && r != utf8.RuneError {
		f.decimal = r
	}

	for _, k := range isokey.All() {
		r := c.deriveRow(target, modes, l, k)
		if r == nil {
			continue
		}
		f.rows = append(f.rows, r)
	}

	f.space = c.spaceRow(target, l)
	f.ligatures = collectLigatures(f.rows)
	f.deadKeys = c.deadKeyTables(target, f.rows, l)

	return f, nil
}

func kbdName(id, locale string) string {
	if id != "" {
		return id
	}
	runes := []rune(strings.ReplaceAll(locale, "-", ""))
	return string(runes[:min(5, len(runes))])
}

func description(project *layout.Project, locale string, l *layout.Layout) string {
	if name, ok := l.DisplayNames[locale]; ok {
		return name
	}
	if name := l.Name(); name != "" {
		return name
	}
	if project != nil {
		if desc, ok := project.Locales[locale]; ok {
			return desc.Name
		}
	}
	return locale
}

// Shift state columns, in SHIFTSTATE order.
var columnLevels = []string{
	modifiers.Default,
	modifiers.Shift,
	modifiers.Ctrl,
	modifiers.Alt,
	modifiers.AltShift,
}

func (c *Codec) deriveRow(target layout.Target, modes *layout.DesktopModes, l *layout.Layout, k isokey.Key) *row {
	lookup := func(level string) key {
		keys, ok := modes.Get(level)
		if !ok {
			return key{}
		}
		return c.deriveKey(target, l, level, k, keys.Get(k))
	}

	win := k.Windows()
	r := &row{
		scanCode:  win.ScanCode,
		vk:        win.VK,
		normal:    lookup(modifiers.Default),
		shift:     lookup(modifiers.Shift),
		ctrl:      lookup(modifiers.Ctrl),
		alt:       lookup(modifiers.Alt),
		altShift:  lookup(modifiers.AltShift),
		caps:      lookup(modifiers.Caps),
		capsShift: lookup(modifiers.CapsShift),
		altCaps:   lookup(modifiers.CapsAlt),
	}

	empty := true
	for _, out := range append(r.columns(), r.caps, r.capsShift) {
		if !out.isNone() {
			empty = false
		}
	}
	if empty {
		return nil
	}

	r.capMode = deriveCapMode(r)
	return r
}

func (c *Codec) deriveKey(target layout.Target, l *layout.Layout, level string, k isokey.Key, v keyvalue.Value) key {
	if v.IsSpecial() {
		c.log.Warnw("special key has no windows equivalent", "level", level, "key", k, "value", v)
		return key{}
	}
	text, ok := v.SymbolText()
	if !ok {
		return key{}
	}

	units := utf16Units(text)
	switch {
	case len(units) == 0 || units[0] == 0:
		return key{}
	case len(units) == 1:
		r, _ := utf8.DecodeRuneInString(text)
		if l.IsDeadKey(target, level, text) {
			return deadKey(r)
		}
		return charKey(r)
	case len(units) <= maxLigatureUnits:
		return ligatureKey(text)
	}

	c.log.Warnw("output too long for a ligature", "level", level, "key", k, "value", text, "units", len(units))
	return key{}
}

func (c *Codec) spaceRow(target layout.Target, l *layout.Layout) [5]key {
	space := [5]key{charKey(' '), charKey(' '), charKey(' ')}
	for i, level := range columnLevels {
		override, ok := l.SpaceFor(target, level)
		if !ok {
			continue
		}
		units := utf16Units(override)
		if len(units) != 1 {
			c.log.Warnw("space override must be a single character", "level", level, "value", override)
			continue
		}
		r, _ := utf8.DecodeRuneInString(override)
		space[i] = charKey(r)
	}
	return space
}

func collectLigatures(rows []*row) []ligature {
	var ligatures []ligature
	for _, r := range rows {
		for column, out := range r.columns() {
			if out.kind != keyLigature {
				continue
			}
			ligatures = append(ligatures, ligature{vk: r.vk, column: column, units: utf16Units(out.units)})
		}
	}
	return ligatures
}

// deadKeyTables pairs each dead key found in the rows with its transforms.
// The space entry falls back to the dead key itself.
func (c *Codec) deadKeyTables(target layout.Target, rows []*row, l *layout.Layout) []deadKeyTable {
	var tables []deadKeyTable
	var seen []rune

	for _, r := range rows {
		for _, out := range r.columns() {
			if out.kind != keyDead || slices.Contains(seen, out.r) {
				continue
			}
			seen = append(seen, out.r)

			transforms, ok := l.Transforms[string(out.r)]
			if !ok {
				c.log.Warnw("dead key has no transforms", "target", target, "key", string(out.r))
				continue
			}

			table := deadKeyTable{key: out.r, space: uint16(out.r)}
			inputs := make([]string, 0, len(transforms))
			for input := range transforms {
				inputs = append(inputs, input)
			}
			slices.Sort(inputs)

			for _, input := range inputs {
				in16, out16 := utf16Units(input), utf16Units(transforms[input])
				if len(in16) != 1 || len(out16) != 1 {
					c.log.Debugw("skipping multi-unit transform", "key", string(out.r), "input", input, "output", transforms[input])
					continue
				}
				if input == " " {
					table.space = out16[0]
					continue
				}
				table.entries = append(table.entries, [2]uint16{in16[0], out16[0]})
			}
			tables = append(tables, table)
		}
	}
	return tables
}

// write encodes the file as UTF-16LE with a byte order mark, which is what
// MSKLC expects.
func (f *file) write(w io.Writer) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	tw := transform.NewWriter(w, enc)

	var b strings.Builder
	f.writeText(&b)
	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}
	return tw.Close()
}

func (f *file) writeText(b *strings.Builder) {
	fmt.Fprintf(b, "KBD\t%s\t\"%s\"\n\n", f.kbd, f.description)
	fmt.Fprintf(b, "COPYRIGHT\t\"%s\"\n\n", f.copyright)
	fmt.Fprintf(b, "COMPANY\t\"%s\"\n\n", f.company)
	fmt.Fprintf(b, "LOCALENAME\t\"%s\"\n\n", f.localeName)
	fmt.Fprintf(b, "LOCALEID\t\"%08x\"\n\n", f.localeID)
	b.WriteString("VERSION\t1.0\n\n")

	b.WriteString("SHIFTSTATE\n\n0\n1\n2\n6\n7\n\n")
	b.WriteString("LAYOUT\n\n")
	for _, r := range f.rows {
		fmt.Fprintf(b, "%s\t%s\t%s", r.scanCode, r.vk, r.capMode)
		for _, out := range r.columns() {
			fmt.Fprintf(b, "\t%s", out)
		}
		b.WriteByte('\n')
		if r.capMode.sgCap {
			fmt.Fprintf(b, "-1\t-1\t0\t%s\t%s\n", r.caps, r.capsShift)
		}
	}
	fmt.Fprintf(b, "39\tSPACE\t0\t%s\t%s\t%s\t%s\t%s\n", f.space[0], f.space[1], f.space[2], f.space[3], f.space[4])
	fmt.Fprintf(b, "53\tDECIMAL\t0\t%s\t%s\t-1\t-1\t-1\n\n", charString(f.decimal), charString(f.decimal))

	if len(f.ligatures) > 0 {
		b.WriteString("LIGATURE\n\n")
		for _, lig := range f.ligatures {
			fmt.Fprintf(b, "%s\t%d", lig.vk, lig.column)
			for _, unit := range lig.units {
				fmt.Fprintf(b, "\t%04x", unit)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	for _, dk := range f.deadKeys {
		fmt.Fprintf(b, "DEADKEY\t%04x\n\n", dk.key)
		for _, entry := range dk.entries {
			fmt.Fprintf(b, "%04x\t%04x\n", entry[0], entry[1])
		}
		fmt.Fprintf(b, "0020\t%04x\n\n", dk.space)
	}

	b.WriteString(footer)

	b.WriteString("\nDESCRIPTIONS\n\n")
	fmt.Fprintf(b, "%04x\t%s\n\n", f.localeID, f.description)
	b.WriteString("LANGUAGENAMES\n\n")
	fmt.Fprintf(b, "%04x\t%s\n\n", f.localeID, f.languageName)
	b.WriteString("ENDKBD\n")
}
