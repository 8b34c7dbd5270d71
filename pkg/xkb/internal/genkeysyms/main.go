// Command genkeysyms turns X11's keysymdef.h into the keysym name table of
// the xkb package.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	exactRe  = regexp.MustCompile(`^#define XK_([a-zA-Z_0-9]+)\s+0x([0-9a-f]+)\s*/\* U\+([0-9A-F]{4,6}) (.*) \*/\s*$`)
	legacyRe = regexp.MustCompile(`^#define XK_([a-zA-Z_0-9]+)\s+0x([0-9a-f]+)\s*/\*\(U\+([0-9A-F]{4,6}) (.*)\)\*/\s*$`)
	plainRe  = regexp.MustCompile(`^#define XK_([a-zA-Z_0-9]+)\s+0x([0-9a-f]+)\s*(/\*\s*(.*)\s*\*/)?\s*$`)
)

type entry struct {
	name string
	r    rune
}

func main() {
	out := flag.String("o", "keysyms_gen.go", "output file")
	flag.Parse()

	in := "/usr/include/X11/keysymdef.h"
	if flag.NArg() > 0 {
		in = flag.Arg(0)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		log.Fatalf("read keysymdef: %v", err)
	}

	exact, legacy, err := parse(bytes.NewReader(data))
	if err != nil {
		log.Fatalf("parse keysymdef: %v", err)
	}

	src, err := render(exact, legacy)
	if err != nil {
		log.Fatalf("render table: %v", err)
	}

	if err := os.WriteFile(*out, src, 0644); err != nil {
		log.Fatalf("write table: %v", err)
	}
}

// parse splits the keysyms into names with an exact Unicode mapping and
// legacy names: approximate mappings, and names repeating the value of an
// exactly mapped one. Dead keys and function keys have no character and are
// left out.
func parse(r io.Reader) (exact, legacy []entry, err error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	byValue := map[string]rune{}
	for _, line := range lines {
		m := exactRe.FindStringSubmatch(line)
		if m == nil || strings.HasPrefix(m[1], "dead_") {
			continue
		}
		if _, ok := byValue[m[2]]; ok {
			continue
		}
		r, err := codePoint(m[3])
		if err != nil {
			return nil, nil, err
		}
		byValue[m[2]] = r
	}

	seen := map[string]bool{}
	for _, line := range lines {
		name, r, isExact, ok, err := classify(line, byValue)
		if err != nil {
			return nil, nil, err
		}
		if !ok || strings.HasPrefix(name, "dead_") || seen[name] {
			continue
		}

		seen[name] = true
		if isExact {
			exact = append(exact, entry{name: name, r: r})
		} else {
			legacy = append(legacy, entry{name: name, r: r})
		}
	}
	return exact, legacy, nil
}

func classify(line string, byValue map[string]rune) (name string, r rune, exact, ok bool, err error) {
	if m := exactRe.FindStringSubmatch(line); m != nil {
		r, err = codePoint(m[3])
		return m[1], r, true, err == nil, err
	}
	if m := legacyRe.FindStringSubmatch(line); m != nil {
		r, err = codePoint(m[3])
		return m[1], r, false, err == nil, err
	}
	if m := plainRe.FindStringSubmatch(line); m != nil {
		r, ok = byValue[m[2]]
		return m[1], r, false, ok, nil
	}
	return "", 0, false, false, nil
}

func codePoint(hex string) (rune, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("code point %s: %w", hex, err)
	}
	return rune(v), nil
}

func render(exact, legacy []entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by genkeysyms from keysymdef.h. DO NOT EDIT.\n\n")
	b.WriteString("package xkb\n\n")

	b.WriteString("// keysymdefNames holds the keysyms with an exact Unicode mapping, in\n")
	b.WriteString("// keysymdef.h order.\n")
	writeTable(&b, "keysymdefNames", exact)

	b.WriteString("\n// keysymdefLegacy holds approximate mappings and names repeating an\n")
	b.WriteString("// earlier keysym. They are accepted on input only.\n")
	writeTable(&b, "keysymdefLegacy", legacy)

	return format.Source(b.Bytes())
}

func writeTable(b *bytes.Buffer, name string, entries []entry) {
	fmt.Fprintf(b, "var %s = []keysym{\n", name)
	for _, e := range entries {
		fmt.Fprintf(b, "\t{%q, 0x%04X},\n", e.name, e.r)
	}
	b.WriteString("}\n")
}
