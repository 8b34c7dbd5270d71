// Package pad indents nested blocks in generated text files.
package pad

import (
	"bytes"
	"fmt"
	"io"
)

const Indent = "    "

// Writer prefixes every non-empty line written through it with Indent.
// Writers nest: wrapping a Writer indents by another level.
type Writer struct {
	w         io.Writer
	onNewline bool
}

func New(w io.Writer) *Writer {
	return &Writer{w: w, onNewline: true}
}

func (p *Writer) Write(b []byte) (int, error) {
	n := len(b)
	for len(b) > 0 {
		if p.onNewline && b[0] != '\n' {
			if _, err := io.WriteString(p.w, Indent); err != nil {
				return 0, err
			}
		}

		split := len(b)
		p.onNewline = false
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			split = i + 1
			p.onNewline = true
		}

		if _, err := p.w.Write(b[:split]); err != nil {
			return 0, err
		}
		b = b[split:]
	}
	return n, nil
}

// ErrWriter keeps the first write error. Writers made with Indented share
// the error through the chain, so only the outermost one needs checking.
type ErrWriter struct {
	w   io.Writer
	err error
}

func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

// Indented returns a writer one indent level deeper than e.
func (e *ErrWriter) Indented() *ErrWriter {
	return &ErrWriter{w: New(e)}
}

func (e *ErrWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func (e *ErrWriter) Printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *ErrWriter) Err() error {
	return e.err
}
