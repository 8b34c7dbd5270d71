// Package modifiers normalizes modifier-combination names.
//
// Layout files and platform formats spell the same combination in many
// ways ("shiftL+opt", "alt+shift", "optR?+shift"). Normalize maps all of
// them onto one canonical key so that modes from different sources line up.
package modifiers

import (
	"slices"
	"strings"
)

const (
	Default      = "default"
	Shift        = "shift"
	Caps         = "caps"
	Ctrl         = "ctrl"
	Alt          = "alt"
	Cmd          = "cmd"
	AltShift     = "alt+shift"
	CapsShift    = "caps+shift"
	CapsAlt      = "caps+alt"
	CapsAltShift = "caps+alt+shift"
	CmdShift     = "cmd+shift"
	CmdAlt       = "cmd+alt"
)

var synonyms = map[string]string{
	"shift":   Shift,
	"caps":    Caps,
	"ctrl":    Ctrl,
	"control": Ctrl,
	"alt":     Alt,
	"opt":     Alt,
	"option":  Alt,
	"altgr":   Alt,
	"cmd":     Cmd,
	"command": Cmd,
	"super":   Cmd,
	"win":     Cmd,
	"meta":    Cmd,
}

// rank orders tokens inside one combination. Unknown tokens sort after the
// known ones, alphabetically.
var rank = map[string]int{
	Cmd:   0,
	Caps:  1,
	Ctrl:  2,
	Alt:   3,
	Shift: 4,
}

// Normalize returns the canonical key for a raw modifier description.
//
// Alternatives are separated by spaces and simultaneous modifiers by "+".
// Left and right variants collapse, optional tokens (a trailing "?") are
// dropped, and the smallest alternative wins. An empty result is Default.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default
	}
	if raw == "shift caps" || raw == "caps shift" {
		return Shift
	}

	var best []string
	for i, alternative := range strings.Fields(raw) {
		group := normalizeGroup(alternative)
		if i == 0 || compareGroups(group, best) < 0 {
			best = group
		}
	}

	if len(best) == 0 {
		return Default
	}
	return strings.Join(best, "+")
}

func normalizeGroup(alternative string) []string {
	var group []string
	for _, token := range strings.Split(alternative, "+") {
		if token == "" || strings.HasSuffix(token, "?") {
			continue
		}
		token = canonicalToken(token)
		if token == Default || slices.Contains(group, token) {
			continue
		}
		group = append(group, token)
	}

	slices.SortFunc(group, compareTokens)
	return group
}

func canonicalToken(token string) string {
	if c, ok := synonyms[strings.ToLower(token)]; ok {
		return c
	}
	if n := len(token); n > 1 && (token[n-1] == 'L' || token[n-1] == 'R') {
		if c, ok := synonyms[strings.ToLower(token[:n-1])]; ok {
			return c
		}
	}
	return token
}

func compareTokens(a, b string) int {
	ra, aKnown := rank[a]
	rb, bKnown := rank[b]
	switch {
	case aKnown && bKnown:
		return ra - rb
	case aKnown:
		return -1
	case bKnown:
		return 1
	}
	return strings.Compare(a, b)
}

func compareGroups(a, b []string) int {
	return slices.Compare(a, b)
}

// Split returns the tokens of a canonical key. Default has none.
func Split(key string) []string {
	if key == Default || key == "" {
		return nil
	}
	return strings.Split(key, "+")
}

// Join builds a canonical key from arbitrary tokens.
func Join(tokens ...string) string {
	return Normalize(strings.Join(tokens, "+"))
}

// Has reports whether the canonical key includes token.
func Has(key, token string) bool {
	return slices.Contains(Split(key), token)
}
