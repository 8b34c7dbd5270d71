// Package mim writes m17n input method (.mim) files.
package mim

import (
	"bytes"
	"fmt"
	"slices"

	"codeberg.org/miketth/kbdconv/pkg/codec"
	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/layout"
	"codeberg.org/miketth/kbdconv/pkg/modifiers"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	Format = "mim"

	mapName   = "mapping"
	initState = "init"
)

// m17n modifier prefixes. Shift is folded into the key itself unless the
// shifted character is already taken by another key.
const shiftPrefix = "S"

var prefixes = map[string]string{
	modifiers.Ctrl: "C",
	modifiers.Alt:  "A",
	modifiers.Cmd:  "s",
}

var prefixOrder = []string{"C", "A", "s"}

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

// Export writes one input method per desktop target.
func (c *Codec) Export(project *layout.Project, locale string, l *layout.Layout) ([]codec.Artifact, error) {
	var artifacts []codec.Artifact
	for _, target := range l.Modes.Available() {
		if !target.IsDesktop() {
			continue
		}

		im := c.fromLayout(project, locale, target, l)

		var buf bytes.Buffer
		if err := im.write(&buf); err != nil {
			return nil, fmt.Errorf("write %s input method: %w", target, err)
		}
		artifacts = append(artifacts, codec.Artifact{Path: string(target) + ".mim", Data: buf.Bytes()})
	}

	if len(artifacts) == 0 {
		return nil, fmt.Errorf("%w: no desktop modes", layout.ErrNoCompatibleModes)
	}
	return artifacts, nil
}

// Language returns the m17n language symbol for a layout.
func Language(locale string, l *layout.Layout) string {
	if l.Targets != nil && l.Targets.Mim != nil && l.Targets.Mim.Language != "" {
		return l.Targets.Mim.Language
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	base, _ := tag.Base()
	return base.String()
}

func (c *Codec) fromLayout(project *layout.Project, locale string, target layout.Target, l *layout.Layout) *inputMethod {
	title := l.Name()
	if title == "" && project != nil {
		title = project.Locales[locale].Name
	}
	if title == "" {
		title = locale
	}

	im := &inputMethod{
		language: Language(locale, l),
		name:     fmt.Sprintf("%s-%s", locale, target),
		title:    title,
		states:   []state{{name: initState, branches: []string{mapName}}},
	}
	if l.Targets != nil && l.Targets.Mim != nil && l.Targets.Mim.Description != "" {
		im.description = fmt.Sprintf("%s (%s %s)", l.Targets.Mim.Description, title, target)
	}

	rules := c.keyRules(target, l.Modes.DesktopModes(target))
	rules = append(rules, c.deadKeyRules(target, l)...)
	im.maps = []keyMap{{name: mapName, rules: rules}}

	return im
}

func (c *Codec) keyRules(target layout.Target, modes *layout.DesktopModes) []rule {
	var rules []rule
	used := map[string]bool{}
	for _, level := range modes.Modifiers() {
		keys, _ := modes.Get(level)

		prefix, shifted, ok := c.levelPrefix(level)
		if !ok {
			c.log.Debugw("skipping level", "target", target, "level", level)
			continue
		}

		for _, k := range isokey.All() {
			out, ok := keys.Symbol(k)
			if !ok || out == " " {
				continue
			}

			var seq keySeq
			if shifted {
				seq = sequence(prefix, string(k.ShiftedReference()))
				if used[seq.String()] {
					seq = sequence(append([]string{shiftPrefix}, prefix...), string(k.Reference()))
				}
			} else {
				seq = sequence(prefix, string(k.Reference()))
			}

			if used[seq.String()] {
				c.log.Warnw("duplicate key sequence", "target", target, "level", level, "key", k, "sequence", seq.String())
				continue
			}
			used[seq.String()] = true
			rules = append(rules, rule{keys: seq, insert: out})
		}
	}
	return rules
}

func sequence(prefix []string, key string) keySeq {
	if len(prefix) == 0 {
		return keySeq{text: key}
	}
	return keySeq{modifiers: prefix, key: key}
}

// levelPrefix maps a modifier level onto m17n prefixes. Levels using caps
// or modifiers without a prefix cannot be expressed.
func (c *Codec) levelPrefix(level string) (prefix []string, shifted, ok bool) {
	for _, token := range modifiers.Split(level) {
		if token == modifiers.Shift {
			shifted = true
			continue
		}
		p, known := prefixes[token]
		if !known {
			return nil, false, false
		}
		prefix = append(prefix, p)
	}
	slices.SortFunc(prefix, func(a, b string) int {
		return slices.Index(prefixOrder, a) - slices.Index(prefixOrder, b)
	})
	return prefix, shifted, true
}

// deadKeyRules turns each dead key of the target into two-key sequences,
// one per transform entry.
func (c *Codec) deadKeyRules(target layout.Target, l *layout.Layout) []rule {
	var rules []rule
	var seen []string

	levels := make([]string, 0, len(l.DeadKeys[target]))
	for level := range l.DeadKeys[target] {
		levels = append(levels, level)
	}
	slices.Sort(levels)

	for _, level := range levels {
		for _, deadKey := range l.DeadKeys[target][level] {
			if slices.Contains(seen, deadKey) {
				continue
			}
			seen = append(seen, deadKey)

			transforms, ok := l.Transforms[deadKey]
			if !ok {
				c.log.Warnw("dead key has no transforms", "target", target, "level", level, "key", deadKey)
				continue
			}

			next := make([]string, 0, len(transforms))
			for input := range transforms {
				next = append(next, input)
			}
			slices.Sort(next)

			for _, input := range next {
				rules = append(rules, rule{keys: keySeq{text: deadKey + input}, insert: transforms[input]})
			}
		}
	}
	return rules
}
