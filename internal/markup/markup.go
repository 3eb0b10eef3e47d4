// Package markup is a tiny element tree with a line-oriented encoder.
//
// The encoder writes one tag per line with four-space indentation, the layout
// ENA's programmatic submission examples use. Every text and attribute value
// is escaped on the way out.
package markup

import (
	"bufio"
	"strings"
	"unicode/utf8"
)

// Indent is one nesting level.
const Indent = "    "

// Declaration is the XML prolog line.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

type Attr struct {
	Name  string
	Value string
}

// Element is a tag with attributes and either text or children.
// An element with neither renders self-closed unless HasText is set, in
// which case an explicit empty pair <X></X> is written.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	HasText  bool
	Children []Element
}

// Leaf is an element with text content.
func Leaf(name, text string) Element {
	return Element{Name: name, Text: text, HasText: true}
}

// Empty is a self-closing element carrying only attributes.
func Empty(name string, attrs ...Attr) Element {
	return Element{Name: name, Attrs: attrs}
}

// Node is an element with nested children.
func Node(name string, attrs []Attr, children ...Element) Element {
	return Element{Name: name, Attrs: attrs, Children: children}
}

// A is shorthand for an attribute.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// EscapeText returns s safe for use as element text. Characters XML cannot
// carry, and invalid UTF-8, become U+FFFD.
func EscapeText(s string) string { return escape(s, false) }

// EscapeAttr is EscapeText plus '"', for double-quoted attribute values.
func EscapeAttr(s string) string { return escape(s, true) }

func escape(s string, attr bool) string {
	if clean(s, attr) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		i += n
		switch {
		case r == utf8.RuneError && n == 1, !legal(r):
			b.WriteRune(utf8.RuneError)
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '"' && attr:
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// clean reports whether s needs no rewriting at all.
func clean(s string, attr bool) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r == '&' || r == '<' || r == '>' || (attr && r == '"') || !legal(r) {
			return false
		}
	}
	return true
}

// legal reports whether r is in the XML 1.0 Char production.
func legal(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// Write renders e at depth into w, terminating every line with '\n'.
func Write(w *bufio.Writer, e Element, depth int) error {
	var err error
	walk(e, depth, func(s string) {
		if err != nil {
			return
		}
		if _, err = w.WriteString(s); err == nil {
			err = w.WriteByte('\n')
		}
	})
	return err
}

// Open and Close are the bare wrapper tags used for document roots.
func Open(name string) string  { return "<" + name + ">" }
func Close(name string) string { return "</" + name + ">" }

func walk(e Element, depth int, emit func(string)) {
	pad := strings.Repeat(Indent, depth)
	head := startTag(e)
	switch {
	case len(e.Children) > 0:
		emit(pad + head + ">")
		for _, c := range e.Children {
			walk(c, depth+1, emit)
		}
		emit(pad + Close(e.Name))
	case e.HasText:
		emit(pad + head + ">" + EscapeText(e.Text) + Close(e.Name))
	default:
		emit(pad + head + "/>")
	}
}

func startTag(e Element) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(EscapeAttr(a.Value))
		b.WriteByte('"')
	}
	return b.String()
}
