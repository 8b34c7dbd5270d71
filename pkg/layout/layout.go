// Package layout is the intermediate representation every format converts
// to and from.
package layout

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound          = errors.New("layout not found")
	ErrNoDefaultLevel    = errors.New("no default level")
	ErrNoCompatibleModes = errors.New("no compatible modes")
	ErrKeyMapLength      = errors.New("key map string must hold 48 keys")
	ErrUnknownTarget     = errors.New("unknown target")
)

type LoadError struct {
	Locale string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load layout %s: %v", e.Locale, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type SaveError struct {
	Locale string
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save layout %s: %v", e.Locale, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// TargetError reports a failure confined to the modes of one target.
type TargetError struct {
	Target Target
	Err    error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("target %s: %v", e.Target, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

type ProjectDesc struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type Project struct {
	Locales      map[string]ProjectDesc `yaml:"locales" json:"locales"`
	Author       string                 `yaml:"author" json:"author"`
	Email        string                 `yaml:"email" json:"email"`
	Copyright    string                 `yaml:"copyright" json:"copyright"`
	Organisation string                 `yaml:"organisation" json:"organisation"`
}

// Name returns the project name for the English locale, or for the first
// locale when there is no English entry.
func (p *Project) Name() string {
	if p == nil {
		return ""
	}
	if desc, ok := p.Locales["en"]; ok {
		return desc.Name
	}
	for _, locale := range sortedKeys(p.Locales) {
		return p.Locales[locale].Name
	}
	return ""
}

type Strings struct {
	Space  string `yaml:"space" json:"space"`
	Return string `yaml:"return" json:"return"`
}

type WinTarget struct {
	// Locale is the Windows locale name, which does not always match the
	// layout's own locale.
	Locale       string `yaml:"locale" json:"locale"`
	LanguageName string `yaml:"languageName,omitempty" json:"languageName,omitempty"`
	ID           string `yaml:"id,omitempty" json:"id,omitempty"`
}

type MimTarget struct {
	Language    string `yaml:"language,omitempty" json:"language,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type X11Target struct {
	// Name overrides the group name written into symbol files.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

type Targets struct {
	Win *WinTarget `yaml:"win,omitempty" json:"win,omitempty"`
	Mim *MimTarget `yaml:"mim,omitempty" json:"mim,omitempty"`
	X11 *X11Target `yaml:"x11,omitempty" json:"x11,omitempty"`
}

// Alternates is a long-press list. Files store it as one space separated
// string.
type Alternates []string

func (a Alternates) MarshalYAML() (interface{}, error) {
	return strings.Join(a, " "), nil
}

func (a *Alternates) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("decode long press: %w", err)
	}
	*a = strings.Fields(s)
	return nil
}

type Layout struct {
	DisplayNames map[string]string `yaml:"displayNames" json:"displayNames"`
	Modes        Modes             `yaml:"modes" json:"modes"`

	Decimal string `yaml:"decimal,omitempty" json:"decimal,omitempty"`

	// Space overrides the space bar output, by target and level.
	Space map[Target]map[string]string `yaml:"space,omitempty" json:"space,omitempty"`

	// DeadKeys lists the dead keys by target and level.
	DeadKeys map[Target]map[string][]string `yaml:"deadKeys,omitempty" json:"deadKeys,omitempty"`

	LongPress map[string]Alternates `yaml:"longpress,omitempty" json:"longpress,omitempty"`

	// Transforms maps a dead key to the following input and the final
	// output.
	Transforms map[string]map[string]string `yaml:"transforms,omitempty" json:"transforms,omitempty"`

	Strings *Strings `yaml:"strings,omitempty" json:"strings,omitempty"`
	Targets *Targets `yaml:"targets,omitempty" json:"targets,omitempty"`
}

func New() *Layout {
	return &Layout{DisplayNames: map[string]string{}}
}

// Name returns the English display name, falling back to the first one.
func (l *Layout) Name() string {
	if name, ok := l.DisplayNames["en"]; ok {
		return name
	}
	for _, locale := range sortedKeys(l.DisplayNames) {
		return l.DisplayNames[locale]
	}
	return ""
}

// DeadKeysFor returns the dead keys recorded for one target and level.
func (l *Layout) DeadKeysFor(target Target, level string) []string {
	return l.DeadKeys[target][level]
}

func (l *Layout) IsDeadKey(target Target, level, value string) bool {
	return slices.Contains(l.DeadKeysFor(target, level), value)
}

// AddDeadKey records value as a dead key unless it already is one.
func (l *Layout) AddDeadKey(target Target, level, value string) {
	if l.IsDeadKey(target, level, value) {
		return
	}
	if l.DeadKeys == nil {
		l.DeadKeys = map[Target]map[string][]string{}
	}
	if l.DeadKeys[target] == nil {
		l.DeadKeys[target] = map[string][]string{}
	}
	l.DeadKeys[target][level] = append(l.DeadKeys[target][level], value)
}

func (l *Layout) SpaceFor(target Target, level string) (string, bool) {
	s, ok := l.Space[target][level]
	return s, ok
}

func (l *Layout) SetTransform(deadKey, next, output string) {
	if l.Transforms == nil {
		l.Transforms = map[string]map[string]string{}
	}
	if l.Transforms[deadKey] == nil {
		l.Transforms[deadKey] = map[string]string{}
	}
	l.Transforms[deadKey][next] = output
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
