package layout

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func Decode(r io.Reader) (*Layout, error) {
	l := New()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(l); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return l, nil
}

func Encode(w io.Writer, l *Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return nil
}

func Marshal(l *Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) (*Layout, error) {
	return Decode(bytes.NewReader(data))
}

func DecodeProject(r io.Reader) (*Project, error) {
	p := &Project{Locales: map[string]ProjectDesc{}}
	if err := yaml.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return p, nil
}

func EncodeProject(w io.Writer, p *Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Clone returns a deep copy by round tripping through YAML.
func Clone(l *Layout) (*Layout, error) {
	data, err := Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("clone layout: %w", err)
	}
	return Unmarshal(data)
}
