package mim

import (
	"io"
	"strings"

	"codeberg.org/miketth/kbdconv/pkg/pad"
)

// inputMethod is the content of one .mim file.
type inputMethod struct {
	language    string
	name        string
	description string
	title       string
	maps        []keyMap
	states      []state
}

type keyMap struct {
	name  string
	rules []rule
}

// rule binds a key sequence to the text it inserts.
type rule struct {
	keys   keySeq
	insert string
}

// keySeq is either literal text typed on the keyboard or a single key
// with modifier prefixes, such as (C-a).
type keySeq struct {
	text      string
	modifiers []string
	key       string
}

type state struct {
	name     string
	branches []string
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`(`, `\(`,
	`)`, `\)`,
	`[`, `\[`,
	`]`, `\]`,
	`;`, `\;`,
	`'`, `\'`,
	`"`, `\"`,
)

// escape backslash-escapes the characters with a meaning in the m17n
// database format. Symbols and texts share it.
func escape(s string) string {
	return escaper.Replace(s)
}

func text(s string) string {
	return `"` + escape(s) + `"`
}

func (k keySeq) String() string {
	if k.key == "" {
		return text(k.text)
	}
	var b strings.Builder
	b.WriteByte('(')
	for _, m := range k.modifiers {
		b.WriteString(m)
		b.WriteByte('-')
	}
	b.WriteString(escape(k.key))
	b.WriteByte(')')
	return b.String()
}

func (im *inputMethod) write(w io.Writer) error {
	ew := pad.NewErrWriter(w)

	ew.Printf("(input-method %s %s)\n", escape(im.language), escape(im.name))
	if im.description != "" {
		ew.Printf("(description %s)\n", text(im.description))
	}
	ew.Printf("(title %s)\n", text(im.title))

	if len(im.maps) > 0 {
		ew.Printf("(map\n")
		inner := ew.Indented()
		for _, m := range im.maps {
			inner.Printf("(%s\n", escape(m.name))
			rules := inner.Indented()
			for _, r := range m.rules {
				rules.Printf("(%s %s)\n", r.keys, text(r.insert))
			}
			inner.Printf(")\n")
		}
		ew.Printf(")\n")
	}

	if len(im.states) > 0 {
		ew.Printf("(state\n")
		inner := ew.Indented()
		for _, s := range im.states {
			inner.Printf("(%s\n", escape(s.name))
			branches := inner.Indented()
			for _, b := range s.branches {
				branches.Printf("(%s)\n", escape(b))
			}
			inner.Printf(")\n")
		}
		ew.Printf(")\n")
	}

	return ew.Err()
}
