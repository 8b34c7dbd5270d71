package xkb

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrSyntax = errors.New("syntax error")

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

// SymbolsFile is one parsed file from the symbols directory.
type SymbolsFile struct {
	Path     string
	Sections []*Section
}

// Section returns the named section. An empty name selects the section
// flagged default, or the first one.
func (f *SymbolsFile) Section(name string) (*Section, bool) {
	if len(f.Sections) == 0 {
		return nil, false
	}
	if name == "" {
		for _, s := range f.Sections {
			if s.IsDefault() {
				return s, true
			}
		}
		return f.Sections[0], true
	}
	for _, s := range f.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

type Section struct {
	Name  string
	Flags []string
	Line  int
	Items []Item
}

func (s *Section) IsDefault() bool {
	for _, flag := range s.Flags {
		if flag == "default" {
			return true
		}
	}
	return false
}

// GroupName returns the first name[GroupN] value.
func (s *Section) GroupName() string {
	for _, item := range s.Items {
		if item.GroupName != "" {
			return item.GroupName
		}
	}
	return ""
}

// Item is one statement of a section. Exactly one field is set.
type Item struct {
	Include   []Include
	Key       *KeyDef
	GroupName string
}

type Include struct {
	File    string
	Section string
	Line    int
	// Augment includes only fill levels that are still empty.
	Augment bool
}

func (i Include) String() string {
	if i.Section == "" {
		return i.File
	}
	return i.File + "(" + i.Section + ")"
}

// ParseInclude splits an include string such as "latin(type4)+level3(ralt_switch)".
// A part joined with '|' augments instead of overriding.
func ParseInclude(s string, line int) ([]Include, error) {
	var includes []Include
	augment := false
	rest := s
	for len(rest) > 0 {
		end := strings.IndexAny(rest, "+|")
		if end < 0 {
			end = len(rest)
		}
		part := strings.TrimSpace(rest[:end])

		if part != "" {
			file, section, hasSection := strings.Cut(part, "(")
			if hasSection {
				var ok bool
				section, ok = strings.CutSuffix(section, ")")
				if !ok || section == "" {
					return nil, fmt.Errorf("%w: bad include %q", ErrSyntax, s)
				}
			}
			if file == "" {
				return nil, fmt.Errorf("%w: bad include %q", ErrSyntax, s)
			}
			includes = append(includes, Include{File: file, Section: section, Line: line, Augment: augment})
		}

		if end == len(rest) {
			break
		}
		augment = rest[end] == '|'
		rest = rest[end+1:]
	}
	return includes, nil
}

// KeyDef is one key statement. Levels holds the keysyms of the first group.
type KeyDef struct {
	Name    string
	Levels  []string
	Line    int
	Augment bool
}

type parser struct {
	tokens []token
	pos    int
}

func ParseSymbols(src, path string) (*SymbolsFile, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}

	p := &parser{tokens: tokens}
	file := &SymbolsFile{Path: path}
	for p.peek().kind != tokEOF {
		section, err := p.section()
		if err != nil {
			return nil, &ParseError{Path: path, Line: p.peek().line, Err: err}
		}
		file.Sections = append(file.Sections, section)
	}
	return file, nil
}

func ParseSymbolsFile(path string) (*SymbolsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseSymbols(string(data), path)
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, value string) (token, error) {
	tok := p.advance()
	if tok.kind != kind || (value != "" && tok.value != value) {
		want := kind.String()
		if value != "" {
			want = fmt.Sprintf("%q", value)
		}
		return tok, fmt.Errorf("%w: expected %s, got %s", ErrSyntax, want, tok)
	}
	return tok, nil
}

func (p *parser) accept(kind tokenKind, value string) bool {
	if p.peek().is(kind, value) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) section() (*Section, error) {
	section := &Section{Line: p.peek().line}

	for {
		tok, err := p.expect(tokIdent, "")
		if err != nil {
			return nil, err
		}
		if tok.value == "xkb_symbols" {
			break
		}
		section.Flags = append(section.Flags, tok.value)
	}

	name, err := p.expect(tokString, "")
	if err != nil {
		return nil, err
	}
	section.Name = name.value

	if _, err := p.expect(tokPunct, "{"); err != nil {
		return nil, err
	}

	for !p.peek().is(tokPunct, "}") {
		if p.peek().kind == tokEOF {
			return nil, fmt.Errorf("%w: unterminated section %q", ErrSyntax, section.Name)
		}
		item, ok, err := p.statement()
		if err != nil {
			return nil, err
		}
		if ok {
			section.Items = append(section.Items, item)
		}
	}
	p.advance()
	p.accept(tokPunct, ";")

	return section, nil
}

func (p *parser) statement() (Item, bool, error) {
	tok := p.peek()

	if tok.is(tokPunct, ";") {
		p.advance()
		return Item{}, false, nil
	}
	if tok.is(tokPunct, "]") || tok.is(tokPunct, ")") {
		return Item{}, false, fmt.Errorf("%w: unexpected %s", ErrSyntax, tok)
	}

	if tok.kind == tokIdent {
		switch tok.value {
		case "include", "augment", "override", "replace":
			p.advance()
			if p.peek().kind == tokString {
				s := p.advance()
				includes, err := ParseInclude(s.value, s.line)
				if err != nil {
					return Item{}, false, err
				}
				if tok.value == "augment" && len(includes) > 0 {
					includes[0].Augment = true
				}
				p.accept(tokPunct, ";")
				return Item{Include: includes}, true, nil
			}
			// "override key <X> ..." merge modifiers on a key statement.
			if tok.value != "include" && p.peek().is(tokIdent, "key") {
				item, ok, err := p.statement()
				if item.Key != nil {
					item.Key.Augment = tok.value == "augment"
				}
				return item, ok, err
			}
			return Item{}, false, fmt.Errorf("%w: expected string after %s", ErrSyntax, tok.value)

		case "name":
			p.advance()
			if err := p.skipIndex(); err != nil {
				return Item{}, false, err
			}
			if _, err := p.expect(tokPunct, "="); err != nil {
				return Item{}, false, err
			}
			s, err := p.expect(tokString, "")
			if err != nil {
				return Item{}, false, err
			}
			p.accept(tokPunct, ";")
			return Item{GroupName: s.value}, true, nil

		case "key":
			if p.tokens[p.pos+1].kind == tokKeyName {
				key, err := p.keyDef()
				if err != nil {
					return Item{}, false, err
				}
				return Item{Key: key}, true, nil
			}
		}
	}

	// modifier_map, key.type, virtual_modifiers and friends carry no symbols.
	return Item{}, false, p.skipStatement()
}

func (p *parser) skipIndex() error {
	if !p.accept(tokPunct, "[") {
		return nil
	}
	for !p.accept(tokPunct, "]") {
		if p.advance().kind == tokEOF {
			return fmt.Errorf("%w: unterminated index", ErrSyntax)
		}
	}
	return nil
}

func (p *parser) skipStatement() error {
	depth := 0
	for {
		tok := p.peek()
		switch {
		case tok.kind == tokEOF:
			return fmt.Errorf("%w: unexpected end of file", ErrSyntax)
		case tok.is(tokPunct, "{"), tok.is(tokPunct, "["), tok.is(tokPunct, "("):
			depth++
		case tok.is(tokPunct, "}"), tok.is(tokPunct, "]"), tok.is(tokPunct, ")"):
			if depth == 0 {
				// closing brace of the section
				return nil
			}
			depth--
		case tok.is(tokPunct, ";") && depth == 0:
			p.advance()
			return nil
		}
		p.advance()
	}
}

// keyDef parses `key <NAME> { ... };`. Only the symbols of the first
// group are kept.
func (p *parser) keyDef() (*KeyDef, error) {
	start := p.advance()
	name := p.advance()
	key := &KeyDef{Name: name.value, Line: start.line}

	if _, err := p.expect(tokPunct, "{"); err != nil {
		return nil, err
	}

	for !p.accept(tokPunct, "}") {
		tok := p.peek()
		switch {
		case tok.kind == tokEOF:
			return nil, fmt.Errorf("%w: unterminated key <%s>", ErrSyntax, key.Name)

		case tok.is(tokPunct, ","):
			p.advance()

		case tok.is(tokPunct, "["):
			levels, err := p.keysymList()
			if err != nil {
				return nil, err
			}
			if key.Levels == nil {
				key.Levels = levels
			}

		case tok.is(tokIdent, "symbols"):
			p.advance()
			group, err := p.groupIndex()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokPunct, "="); err != nil {
				return nil, err
			}
			levels, err := p.keysymList()
			if err != nil {
				return nil, err
			}
			if group == "" || strings.EqualFold(group, "Group1") || group == "1" {
				key.Levels = levels
			}

		default:
			if err := p.skipKeyField(); err != nil {
				return nil, err
			}
		}
	}
	p.accept(tokPunct, ";")

	return key, nil
}

func (p *parser) groupIndex() (string, error) {
	if !p.accept(tokPunct, "[") {
		return "", nil
	}
	group, err := p.expect(tokIdent, "")
	if err != nil {
		return "", err
	}
	if _, err := p.expect(tokPunct, "]"); err != nil {
		return "", err
	}
	return group.value, nil
}

// skipKeyField skips `type = "..."`, `actions[Group1] = [...]` and similar.
func (p *parser) skipKeyField() error {
	depth := 0
	for {
		tok := p.peek()
		switch {
		case tok.kind == tokEOF:
			return fmt.Errorf("%w: unexpected end of file", ErrSyntax)
		case tok.is(tokPunct, "["), tok.is(tokPunct, "("), tok.is(tokPunct, "{"):
			depth++
		case tok.is(tokPunct, "]"), tok.is(tokPunct, ")"):
			depth--
		case tok.is(tokPunct, "}"):
			if depth == 0 {
				return nil
			}
			depth--
		case tok.is(tokPunct, ",") && depth == 0:
			return nil
		}
		p.advance()
	}
}

func (p *parser) keysymList() ([]string, error) {
	if _, err := p.expect(tokPunct, "["); err != nil {
		return nil, err
	}

	var levels []string
	for {
		tok := p.advance()
		switch {
		case tok.kind == tokIdent:
			levels = append(levels, tok.value)
		case tok.is(tokPunct, "{"):
			// multiple keysyms on one level are not representable
			for !p.accept(tokPunct, "}") {
				if p.advance().kind == tokEOF {
					return nil, fmt.Errorf("%w: unterminated keysym group", ErrSyntax)
				}
			}
			levels = append(levels, "NoSymbol")
		default:
			return nil, fmt.Errorf("%w: expected keysym, got %s", ErrSyntax, tok)
		}

		next := p.advance()
		switch {
		case next.is(tokPunct, ","):
		case next.is(tokPunct, "]"):
			return levels, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']', got %s", ErrSyntax, next)
		}
	}
}
