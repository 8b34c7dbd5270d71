package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"codeberg.org/miketth/kbdconv/pkg/modifiers"
	"gopkg.in/yaml.v3"
)

type Target string

const (
	TargetWin     Target = "win"
	TargetMac     Target = "mac"
	TargetIOS     Target = "ios"
	TargetAndroid Target = "android"
	TargetChrome  Target = "chrome"
	TargetX11     Target = "x11"
	TargetDesktop Target = "desktop"
	TargetMobile  Target = "mobile"
)

type targetSlot struct {
	target  Target
	desktop func(m *Modes) **DesktopModes
	mobile  func(m *Modes) **MobileModes
}

var targetTable = []targetSlot{
	{target: TargetWin, desktop: func(m *Modes) **DesktopModes { return &m.Win }},
	{target: TargetMac, desktop: func(m *Modes) **DesktopModes { return &m.Mac }},
	{target: TargetIOS, mobile: func(m *Modes) **MobileModes { return &m.IOS }},
	{target: TargetAndroid, mobile: func(m *Modes) **MobileModes { return &m.Android }},
	{target: TargetChrome, desktop: func(m *Modes) **DesktopModes { return &m.Chrome }},
	{target: TargetX11, desktop: func(m *Modes) **DesktopModes { return &m.X11 }},
	{target: TargetDesktop, desktop: func(m *Modes) **DesktopModes { return &m.Desktop }},
	{target: TargetMobile, mobile: func(m *Modes) **MobileModes { return &m.Mobile }},
}

func slotFor(t Target) (targetSlot, bool) {
	for _, slot := range targetTable {
		if slot.target == t {
			return slot, true
		}
	}
	return targetSlot{}, false
}

func ParseTarget(s string) (Target, error) {
	if _, ok := slotFor(Target(s)); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}
	return Target(s), nil
}

func AllTargets() []Target {
	targets := make([]Target, len(targetTable))
	for i, slot := range targetTable {
		targets[i] = slot.target
	}
	return targets
}

func (t Target) IsDesktop() bool {
	slot, ok := slotFor(t)
	return ok && slot.desktop != nil
}

func (t Target) IsMobile() bool {
	slot, ok := slotFor(t)
	return ok && slot.mobile != nil
}

// Modes holds at most one mode map per target.
type Modes struct {
	Win     *DesktopModes `yaml:"win,omitempty" json:"win,omitempty"`
	Mac     *DesktopModes `yaml:"mac,omitempty" json:"mac,omitempty"`
	IOS     *MobileModes  `yaml:"ios,omitempty" json:"ios,omitempty"`
	Android *MobileModes  `yaml:"android,omitempty" json:"android,omitempty"`
	Chrome  *DesktopModes `yaml:"chrome,omitempty" json:"chrome,omitempty"`
	X11     *DesktopModes `yaml:"x11,omitempty" json:"x11,omitempty"`
	Desktop *DesktopModes `yaml:"desktop,omitempty" json:"desktop,omitempty"`
	Mobile  *MobileModes  `yaml:"mobile,omitempty" json:"mobile,omitempty"`
}

func (m *Modes) DesktopModes(t Target) *DesktopModes {
	slot, ok := slotFor(t)
	if !ok || slot.desktop == nil {
		return nil
	}
	return *slot.desktop(m)
}

func (m *Modes) MobileModes(t Target) *MobileModes {
	slot, ok := slotFor(t)
	if !ok || slot.mobile == nil {
		return nil
	}
	return *slot.mobile(m)
}

func (m *Modes) SetDesktopModes(t Target, modes *DesktopModes) error {
	slot, ok := slotFor(t)
	if !ok || slot.desktop == nil {
		return fmt.Errorf("%w: %q is not a desktop target", ErrUnknownTarget, t)
	}
	*slot.desktop(m) = modes
	return nil
}

func (m *Modes) SetMobileModes(t Target, modes *MobileModes) error {
	slot, ok := slotFor(t)
	if !ok || slot.mobile == nil {
		return fmt.Errorf("%w: %q is not a mobile target", ErrUnknownTarget, t)
	}
	*slot.mobile(m) = modes
	return nil
}

// Available lists the targets that have modes, in table order.
func (m *Modes) Available() []Target {
	var targets []Target
	for _, slot := range targetTable {
		switch {
		case slot.desktop != nil && *slot.desktop(m) != nil:
			targets = append(targets, slot.target)
		case slot.mobile != nil && *slot.mobile(m) != nil:
			targets = append(targets, slot.target)
		}
	}
	return targets
}

// FirstDesktop returns the first present desktop modes among the given
// targets.
func (m *Modes) FirstDesktop(prefer ...Target) (Target, *DesktopModes, error) {
	for _, t := range prefer {
		if modes := m.DesktopModes(t); modes != nil {
			return t, modes, nil
		}
	}
	return "", nil, fmt.Errorf("%w: want one of %v, have %v", ErrNoCompatibleModes, prefer, m.Available())
}

// ModeMap is an insertion ordered map from canonical modifier key to a key
// map. Keys are normalized on the way in.
type ModeMap[T any] struct {
	order []string
	maps  map[string]T
}

type (
	DesktopModes = ModeMap[DesktopKeyMap]
	MobileModes  = ModeMap[MobileKeyMap]
)

func NewModeMap[T any]() *ModeMap[T] {
	return &ModeMap[T]{maps: map[string]T{}}
}

func NewDesktopModes() *DesktopModes {
	return NewModeMap[DesktopKeyMap]()
}

func NewMobileModes() *MobileModes {
	return NewModeMap[MobileKeyMap]()
}

func (m *ModeMap[T]) Get(mod string) (T, bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	v, ok := m.maps[modifiers.Normalize(mod)]
	return v, ok
}

func (m *ModeMap[T]) Set(mod string, v T) {
	if m.maps == nil {
		m.maps = map[string]T{}
	}
	mod = modifiers.Normalize(mod)
	if _, ok := m.maps[mod]; !ok {
		m.order = append(m.order, mod)
	}
	m.maps[mod] = v
}

func (m *ModeMap[T]) Delete(mod string) {
	mod = modifiers.Normalize(mod)
	if _, ok := m.maps[mod]; !ok {
		return
	}
	delete(m.maps, mod)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == mod })
}

// Modifiers returns the stored modifier keys in insertion order.
func (m *ModeMap[T]) Modifiers() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.order)
}

func (m *ModeMap[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

func (m ModeMap[T]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, mod := range m.order {
		value := &yaml.Node{}
		if err := value.Encode(m.maps[mod]); err != nil {
			return nil, fmt.Errorf("encode mode %s: %w", mod, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: mod}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

func (m *ModeMap[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: modes must be a mapping", node.Line)
	}

	*m = ModeMap[T]{maps: map[string]T{}}
	for i := 0; i+1 < len(node.Content); i += 2 {
		mod := node.Content[i].Value
		var v T
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("decode mode %s: %w", mod, err)
		}
		m.Set(mod, v)
	}
	return nil
}

func (m ModeMap[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mod := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mod)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.maps[mod])
		if err != nil {
			return nil, fmt.Errorf("encode mode %s: %w", mod, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *ModeMap[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read modes: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("modes must be an object, got %v", tok)
	}

	*m = ModeMap[T]{maps: map[string]T{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read mode key: %w", err)
		}
		mod, _ := tok.(string)

		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode mode %s: %w", mod, err)
		}
		m.Set(mod, v)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read modes: %w", err)
	}
	return nil
}
