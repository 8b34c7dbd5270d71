package xkb

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokKeyName
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokKeyName:
		return "key name"
	case tokPunct:
		return "punctuation"
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

type token struct {
	kind  tokenKind
	value string
	line  int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return t.kind.String()
	case tokString:
		return fmt.Sprintf("%q", t.value)
	case tokKeyName:
		return "<" + t.value + ">"
	}
	return t.value
}

func (t token) is(kind tokenKind, value string) bool {
	return t.kind == kind && t.value == value
}

type lexer struct {
	src  string
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) peekByte(offset int) byte {
	if l.pos+offset < len(l.src) {
		return l.src[l.pos+offset]
	}
	return 0
}

func (l *lexer) skipSpaceAndComments() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '#' || (c == '/' && l.peekByte(1) == '/'):
			end := strings.IndexByte(l.src[l.pos:], '\n')
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end
			}
		case c == '/' && l.peekByte(1) == '*':
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				return fmt.Errorf("line %d: unterminated comment", l.line)
			}
			comment := l.src[l.pos : l.pos+2+end+2]
			l.line += strings.Count(comment, "\n")
			l.pos += len(comment)
		default:
			return nil
		}
	}
	return nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || r == '.'
}

func (l *lexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	line := l.line
	c := l.src[l.pos]

	switch {
	case c == '"':
		return l.lexString()

	case c == '<':
		end := strings.IndexAny(l.src[l.pos+1:], ">\n")
		if end < 0 || l.src[l.pos+1+end] != '>' {
			return token{}, fmt.Errorf("line %d: unterminated key name", line)
		}
		name := l.src[l.pos+1 : l.pos+1+end]
		l.pos += end + 2
		return token{kind: tokKeyName, value: name, line: line}, nil
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if isIdentStart(r) {
		start := l.pos
		l.pos += size
		for l.pos < len(l.src) {
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if !isIdentPart(r) {
				break
			}
			l.pos += size
		}
		return token{kind: tokIdent, value: l.src[start:l.pos], line: line}, nil
	}

	l.pos += size
	return token{kind: tokPunct, value: string(r), line: line}, nil
}

func (l *lexer) lexString() (token, error) {
	line := l.line
	l.pos++

	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{kind: tokString, value: b.String(), line: line}, nil
		case '\\':
			if l.pos+1 < len(l.src) {
				b.WriteByte(l.src[l.pos+1])
				l.pos += 2
				continue
			}
		case '\n':
			l.line++
		}
		b.WriteByte(c)
		l.pos++
	}
	return token{}, fmt.Errorf("line %d: unterminated string", line)
}

func tokenize(src string) ([]token, error) {
	lex := newLexer(src)
	var tokens []token
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}
