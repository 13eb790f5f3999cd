package ofxparser

import (
	"encoding/xml"
	"strings"
	"unicode/utf8"
)

var (
	// XML escape sequences.
	// from https://golang.org/src/encoding/xml/xml.go
	escQuot = "&#34;" // shorter than "&quot;"
	escAmp  = "&amp;"
	escLt   = "&lt;"
	escGt   = "&gt;"
	escFffd = "\uFFFD" // Unicode replacement character
)

// Decide whether the given rune is in the XML Character Range, per
// the Char production of http://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
// Lifted from https://golang.org/src/encoding/xml/xml.go
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// escapeText escapes s for use as character data. Unlike xml.EscapeText, line breaks and tabs are
// kept as is so that line numbers survive re-serialization.
func escapeText(s string, quote bool) string {
	var (
		result strings.Builder
		esc    string
		last   = 0
	)
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '"':
			if !quote {
				continue
			}
			esc = escQuot
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			if !isInCharacterRange(r) || (r == utf8.RuneError && width == 1) {
				esc = escFffd
				break
			}
			continue
		}
		result.WriteString(s[last : i-width])
		result.WriteString(esc)
		last = i
	}
	result.WriteString(s[last:])
	return result.String()
}

// qualifiedName returns prefix:local for names read with RawToken, which leaves the prefix in
// Name.Space.
func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// writeStartTag writes the given start element to the given builder.
// based on https://golang.org/src/encoding/xml/marshal.go
func writeStartTag(e *xml.StartElement, buff *strings.Builder) {
	buff.WriteByte('<')
	buff.WriteString(qualifiedName(e.Name))
	for _, attr := range e.Attr {
		if attr.Name.Local == "" {
			continue
		}
		buff.WriteByte(' ')
		buff.WriteString(qualifiedName(attr.Name))
		buff.WriteString(`="`)
		buff.WriteString(escapeText(attr.Value, true))
		buff.WriteByte('"')
	}
	buff.WriteByte('>')
}

// writeEndTag writes the closing tag for the given name to the given builder.
func writeEndTag(name string, buff *strings.Builder) {
	buff.WriteString("</")
	buff.WriteString(name)
	buff.WriteByte('>')
}
