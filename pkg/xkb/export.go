package xkb

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/pad"
)

// Desktop targets in the order they are tried for the basic block.
var exportTargets = []layout.Target{
	layout.TargetX11,
	layout.TargetWin,
	layout.TargetDesktop,
	layout.TargetMac,
	layout.TargetChrome,
}

// keyRows holds the output text of each key, one entry per level.
type keyRows [isokey.Count][len(levels)]string

func (r *keyRows) hasAltLevels() bool {
	for _, row := range r {
		if row[2] != "" || row[3] != "" {
			return true
		}
	}
	return false
}

type block struct {
	name   string
	target layout.Target
	rows   *keyRows
}

func (c *Codec) Export(project *layout.Project, locale string, l *layout.Layout) ([]codec.Artifact, error) {
	var buf bytes.Buffer
	if err := c.Write(&buf, project, locale, l); err != nil {
		return nil, err
	}
	return []codec.Artifact{{Path: locale, Data: buf.Bytes()}}, nil
}

// Write emits a symbols file: a basic block, one block per further
// desktop target and one block per dead key level.
func (c *Codec) Write(w io.Writer, project *layout.Project, locale string, l *layout.Layout) error {
	basicTarget, basicModes, err := l.Modes.FirstDesktop(exportTargets...)
	if err != nil {
		return err
	}
	basicRows, err := c.rowsFor(basicTarget, basicModes)
	if err != nil {
		return &layout.TargetError{Target: basicTarget, Err: err}
	}

	name := groupName(project, locale, l)
	blocks := []block{{name: basicSection, target: basicTarget, rows: basicRows}}

	var buf bytes.Buffer
	writeSymbols(&buf, blocks[0], []string{"latin"}, name, func(k isokey.Key) bool { return true })

	for _, t := range l.Modes.Available() {
		if t == basicTarget || !slices.Contains(exportTargets, t) {
			continue
		}
		rows, err := c.rowsFor(t, l.Modes.DesktopModes(t))
		if err != nil {
			c.log.Warnw("skipping target", "locale", locale, "target", t, "error", err)
			continue
		}
		b := block{name: string(t), target: t, rows: rows}
		blocks = append(blocks, b)

		buf.WriteByte('\n')
		include := fmt.Sprintf("%s(%s)", locale, basicSection)
		writeSymbols(&buf, b, []string{include}, fmt.Sprintf("%s (%s)", name, t), func(k isokey.Key) bool {
			return rows[k] != basicRows[k]
		})
	}

	for _, b := range blocks {
		c.writeDeadKeyBlocks(&buf, locale, b, l)
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func groupName(project *layout.Project, locale string, l *layout.Layout) string {
	if l.Targets != nil && l.Targets.X11 != nil && l.Targets.X11.Name != "" {
		return l.Targets.X11.Name
	}
	if name := l.Name(); name != "" {
		return name
	}
	if name := project.Name(); name != "" {
		return name
	}
	return locale
}

func (c *Codec) rowsFor(target layout.Target, modes *layout.DesktopModes) (*keyRows, error) {
	if _, ok := modes.Get(levels[0]); !ok {
		return nil, layout.ErrNoDefaultLevel
	}

	rows := &keyRows{}
	for i, level := range levels {
		km, ok := modes.Get(level)
		if !ok {
			continue
		}
		for k, v := range km {
			text, ok := v.SymbolText()
			if !ok {
				c.log.Debugw("skipping special key", "target", target, "level", level, "key", k, "value", v)
				continue
			}
			if utf8.RuneCountInString(text) != 1 {
				c.log.Warnw("value has no keysym", "target", target, "level", level, "key", k, "value", text)
				continue
			}
			rows[k][i] = text
		}
	}
	return rows, nil
}

func writeSymbols(buf *bytes.Buffer, b block, includes []string, name string, keep func(isokey.Key) bool) {
	if b.name == basicSection {
		buf.WriteString("default ")
	}
	buf.WriteString("partial alphanumeric_keys\n")
	fmt.Fprintf(buf, "xkb_symbols %s {\n", quote(b.name))

	inner := pad.New(buf)
	for _, include := range includes {
		fmt.Fprintf(inner, "include %s\n", quote(include))
	}
	fmt.Fprintf(inner, "name[Group1] = %s;\n\n", quote(name))

	for _, k := range isokey.All() {
		if !keep(k) {
			continue
		}
		if line, ok := keyLine(k, b.rows[k], -1, ""); ok {
			fmt.Fprintln(inner, line)
		}
	}

	if b.rows.hasAltLevels() {
		fmt.Fprintf(inner, "\ninclude %s\n", quote("level3(ralt_switch)"))
	}
	buf.WriteString("};\n")
}

// keyLine formats one key statement. Level override, when not negative,
// is written as the keysym dead instead of the plain symbol.
func keyLine(k isokey.Key, row [len(levels)]string, override int, dead string) (string, bool) {
	last := -1
	for i, text := range row {
		if text != "" {
			last = i
		}
	}
	if last < 0 {
		return "", false
	}

	syms := make([]string, last+1)
	for i := range syms {
		switch {
		case i == override:
			syms[i] = dead
		case row[i] == "":
			syms[i] = noSymbol
		default:
			r, _ := utf8.DecodeRuneInString(row[i])
			syms[i] = KeysymName(r)
		}
	}
	return fmt.Sprintf("key <%s> {[ %s ]};", k.XKBName(), strings.Join(syms, ", ")), true
}

func (c *Codec) writeDeadKeyBlocks(buf *bytes.Buffer, locale string, b block, l *layout.Layout) {
	for i, level := range levels {
		deadKeys := l.DeadKeysFor(b.target, level)
		if len(deadKeys) == 0 {
			continue
		}

		var lines []string
		for _, k := range isokey.All() {
			text := b.rows[k][i]
			if text == "" || !slices.Contains(deadKeys, text) {
				continue
			}
			name, ok := DeadKeysymName(text)
			if !ok {
				c.log.Warnw("no dead keysym for dead key", "locale", locale, "target", b.target, "level", level, "value", text)
				continue
			}
			if line, ok := keyLine(k, b.rows[k], i, name); ok {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}

		buf.WriteByte('\n')
		fmt.Fprintf(buf, "partial alphanumeric_keys\nxkb_symbols %s {\n", quote(deadBlockName(b.name, level)))
		inner := pad.New(buf)
		fmt.Fprintf(inner, "include %s\n\n", quote(fmt.Sprintf("%s(%s)", locale, b.name)))
		for _, line := range lines {
			fmt.Fprintln(inner, line)
		}
		buf.WriteString("};\n")
	}
}

func deadBlockName(block, level string) string {
	return block + "_dead_" + strings.ReplaceAll(level, "+", "_")
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
