package layout

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/miketth/kbdconv/pkg/isokey"
	"codeberg.org/miketth/kbdconv/pkg/keyvalue"
	"gopkg.in/yaml.v3"
)

// DesktopKeyMap maps physical keys to their output on one level. A missing
// key and a None value mean the same thing, so None is never stored.
type DesktopKeyMap map[isokey.Key]keyvalue.Value

// Maps with at least this many keys are written in the 48 slot string form.
const stringFormThreshold = isokey.Count / 2

func (km DesktopKeyMap) Get(k isokey.Key) keyvalue.Value {
	return km[k]
}

// Symbol returns the key's output when it is a non-empty symbol.
func (km DesktopKeyMap) Symbol(k isokey.Key) (string, bool) {
	return km[k].SymbolText()
}

func (km DesktopKeyMap) Set(k isokey.Key, v keyvalue.Value) {
	if v.IsNone() {
		delete(km, k)
		return
	}
	km[k] = v
}

// ParseDesktopKeyMap reads the string form: exactly 48 whitespace separated
// values in canonical key order.
func ParseDesktopKeyMap(s string) (DesktopKeyMap, error) {
	tokens := strings.Fields(s)
	if len(tokens) != isokey.Count {
		return nil, fmt.Errorf("%w: got %d", ErrKeyMapLength, len(tokens))
	}

	km := DesktopKeyMap{}
	for i, token := range tokens {
		k := isokey.Key(i)
		v, err := keyvalue.Decode(token)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		km.Set(k, v)
	}
	return km, nil
}

func decodeKeyMapEntries(entries map[string]string) (DesktopKeyMap, error) {
	km := DesktopKeyMap{}
	for code := range entries {
		if code == isokey.D13 {
			continue
		}
		if _, err := isokey.Parse(code); err != nil {
			return nil, err
		}
	}

	it := isokey.NewRowIterator(entries)
	for it.Next() {
		if !it.Present() {
			continue
		}
		v, err := keyvalue.Decode(it.Value())
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", it.Key(), err)
		}
		km.Set(it.Key(), v)
	}
	return km, nil
}

func (km DesktopKeyMap) useStringForm() bool {
	if len(km) < stringFormThreshold {
		return false
	}
	for _, v := range km {
		if v.IsSymbol() && v.Text() == "" {
			return false
		}
	}
	return true
}

// String renders the string form, one row per line with the D and C rows
// shifted right by one column.
func (km DesktopKeyMap) String() string {
	tokens := make([]string, isokey.Count)
	width := 1
	for i := range tokens {
		tokens[i] = keyvalue.Encode(km[isokey.Key(i)])
		width = max(width, utf8.RuneCountInString(tokens[i]))
	}

	rows := [][]string{
		tokens[isokey.E00:isokey.D01],
		tokens[isokey.D01:isokey.C01],
		tokens[isokey.C01:isokey.B00],
		tokens[isokey.B00:],
	}

	var b strings.Builder
	for i, row := range rows {
		var line strings.Builder
		if i == 1 || i == 2 {
			line.WriteString(pad(" ", width))
			line.WriteByte(' ')
		}
		for _, token := range row {
			line.WriteString(pad(token, width))
			line.WriteByte(' ')
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func (km DesktopKeyMap) entries() map[string]string {
	entries := make(map[string]string, len(km))
	for k, v := range km {
		entries[k.String()] = keyvalue.Encode(v)
	}
	return entries
}

func (km DesktopKeyMap) MarshalYAML() (interface{}, error) {
	if km.useStringForm() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.LiteralStyle, Value: km.String()}, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range isokey.All() {
		v, ok := km[k]
		if !ok {
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyvalue.Encode(v)},
		)
	}
	return node, nil
}

func (km *DesktopKeyMap) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseDesktopKeyMap(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*km = parsed
		return nil

	case yaml.MappingNode:
		var entries map[string]string
		if err := node.Decode(&entries); err != nil {
			return fmt.Errorf("line %d: decode key map: %w", node.Line, err)
		}
		parsed, err := decodeKeyMapEntries(entries)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*km = parsed
		return nil
	}

	return fmt.Errorf("line %d: key map must be a string or a mapping", node.Line)
}

func (km DesktopKeyMap) MarshalJSON() ([]byte, error) {
	if km.useStringForm() {
		return json.Marshal(km.String())
	}
	return json.Marshal(km.entries())
}

func (km *DesktopKeyMap) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseDesktopKeyMap(s)
		if err != nil {
			return err
		}
		*km = parsed
		return nil
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode key map: %w", err)
	}
	parsed, err := decodeKeyMapEntries(entries)
	if err != nil {
		return err
	}
	*km = parsed
	return nil
}

// MobileKeyMap is a list of rows. Mobile layouts are not tied to physical
// positions.
type MobileKeyMap [][]string

func ParseMobileKeyMap(s string) MobileKeyMap {
	var rows MobileKeyMap
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	return rows
}

func (km MobileKeyMap) String() string {
	var b strings.Builder
	for _, row := range km {
		b.WriteString(strings.Join(row, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (km MobileKeyMap) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.LiteralStyle, Value: km.String()}, nil
}

func (km *MobileKeyMap) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: mobile key map must be a string: %w", node.Line, err)
	}
	*km = ParseMobileKeyMap(s)
	return nil
}

func (km MobileKeyMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(km.String())
}

func (km *MobileKeyMap) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode mobile key map: %w", err)
	}
	*km = ParseMobileKeyMap(s)
	return nil
}
