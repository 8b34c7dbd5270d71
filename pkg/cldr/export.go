package cldr

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/modifiers"
	"codeberg.org/miketth/kbdconv/pkg/pad"
)

const mobileRowLetters = "EDCB"

func (c *Codec) Export(project *layout.Project, locale string, l *layout.Layout) ([]codec.Artifact, error) {
	targets := l.Modes.Available()
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: layout has no modes", layout.ErrNoCompatibleModes)
	}

	var artifacts []codec.Artifact
	for _, target := range targets {
		kbd := c.FromLayout(project, locale, target, l)

		var buf bytes.Buffer
		if err := Write(&buf, kbd); err != nil {
			return nil, fmt.Errorf("write %s keyboard: %w", target, err)
		}
		artifacts = append(artifacts, codec.Artifact{Path: string(target) + ".xml", Data: buf.Bytes()})
	}
	return artifacts, nil
}

func (c *Codec) FromLayout(project *layout.Project, locale string, target layout.Target, l *layout.Layout) *Keyboard {
	name := l.Name()
	if name == "" && project != nil {
		name = project.Locales[locale].Name
	}

	kbd := &Keyboard{
		Locale:  fmt.Sprintf("%s-t-k0-%s", locale, target),
		Version: Version{Platform: string(target), Number: "1"},
		Names:   []Name{{Value: name}},
	}

	if target.IsMobile() {
		kbd.KeyMaps = c.mobileKeyMaps(l.Modes.MobileModes(target), l)
	} else {
		kbd.KeyMaps = c.desktopKeyMaps(l.Modes.DesktopModes(target), l)
	}

	if len(l.Transforms) > 0 {
		kbd.Transforms = []Transforms{{Type: "simple", Transforms: transformList(l.Transforms)}}
	}

	return kbd
}

func (c *Codec) desktopKeyMaps(modes *layout.DesktopModes, l *layout.Layout) []KeyMap {
	var keyMaps []KeyMap
	for _, level := range modes.Modifiers() {
		keys, _ := modes.Get(level)

		km := KeyMap{}
		if level != modifiers.Default {
			km.Modifiers = level
		}

		for _, k := range isokey.All() {
			v := keys.Get(k)
			switch {
			case v.IsNone():
				continue
			case v.IsSpecial():
				c.log.Debugw("skipping special key", "key", k, "level", level, "value", v)
				continue
			}
			km.Maps = append(km.Maps, Map{
				ISO:       k.String(),
				To:        keyvalue.Escape(v.Text()),
				LongPress: longPress(l, v.Text()),
			})
		}

		keyMaps = append(keyMaps, km)
	}
	return keyMaps
}

func (c *Codec) mobileKeyMaps(modes *layout.MobileModes, l *layout.Layout) []KeyMap {
	var keyMaps []KeyMap
	for _, level := range modes.Modifiers() {
		rows, _ := modes.Get(level)

		km := KeyMap{}
		if level != modifiers.Default {
			km.Modifiers = level
		}

		if len(rows) > len(mobileRowLetters) {
			c.log.Warnw("too many rows, dropping the rest", "level", level, "rows", len(rows))
			rows = rows[:len(mobileRowLetters)]
		}
		letters := mobileRowLetters[len(mobileRowLetters)-len(rows):]

		for i, row := range rows {
			for col, token := range row {
				to := token
				if v, err := keyvalue.Decode(token); err == nil {
					s, ok := v.SymbolText()
					if !ok {
						continue
					}
					to = s
				}
				km.Maps = append(km.Maps, Map{
					ISO:       fmt.Sprintf("%c%02d", letters[i], col+1),
					To:        keyvalue.Escape(to),
					LongPress: longPress(l, to),
				})
			}
		}

		keyMaps = append(keyMaps, km)
	}
	return keyMaps
}

func transformList(transforms map[string]map[string]string) []Transform {
	var list []Transform
	for _, deadKey := range sortedKeys(transforms) {
		next := transforms[deadKey]
		for _, input := range sortedKeys(next) {
			list = append(list, Transform{
				From: keyvalue.Escape(deadKey + input),
				To:   keyvalue.Escape(next[input]),
			})
		}
	}
	return list
}

// longPress joins the escaped alternates of a key output.
func longPress(l *layout.Layout, to string) string {
	alternates := l.LongPress[to]
	escaped := make([]string, len(alternates))
	for i, alt := range alternates {
		escaped[i] = keyvalue.Escape(alt)
	}
	return strings.Join(escaped, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// Write streams kbd as indented XML with the CLDR doctype.
func Write(w io.Writer, kbd *Keyboard) error {
	ew := pad.NewErrWriter(w)

	ew.Printf("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	ew.Printf("<!DOCTYPE keyboard SYSTEM \"../dtd/ldmlKeyboard.dtd\">\n")
	ew.Printf("<keyboard locale=\"%s\">\n", escape(kbd.Locale))

	inner := ew.Indented()
	inner.Printf("<version platform=\"%s\" number=\"%s\"/>\n", escape(kbd.Version.Platform), escape(kbd.Version.Number))

	if len(kbd.Names) > 0 {
		inner.Printf("<names>\n")
		names := inner.Indented()
		for _, name := range kbd.Names {
			names.Printf("<name value=\"%s\"/>\n", escape(name.Value))
		}
		inner.Printf("</names>\n")
	}

	for _, km := range kbd.KeyMaps {
		if km.Modifiers != "" {
			inner.Printf("<keyMap modifiers=\"%s\">\n", escape(km.Modifiers))
		} else {
			inner.Printf("<keyMap>\n")
		}
		maps := inner.Indented()
		for _, m := range km.Maps {
			maps.Printf("<map iso=\"%s\" to=\"%s\"", escape(m.ISO), escape(m.To))
			if m.Transform != "" {
				maps.Printf(" transform=\"%s\"", escape(m.Transform))
			}
			if m.LongPress != "" {
				maps.Printf(" longPress=\"%s\"", escape(m.LongPress))
			}
			maps.Printf("/>\n")
		}
		inner.Printf("</keyMap>\n")
	}

	for _, transforms := range kbd.Transforms {
		inner.Printf("<transforms type=\"%s\">\n", escape(transforms.Type))
		list := inner.Indented()
		for _, t := range transforms.Transforms {
			list.Printf("<transform from=\"%s\" to=\"%s\"/>\n", escape(t.From), escape(t.To))
		}
		inner.Printf("</transforms>\n")
	}

	ew.Printf("</keyboard>\n")
	return ew.Err()
}
