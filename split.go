package ofxparser

import (
	"regexp"
	"strings"
)

var (
	rootTagPattern   = regexp.MustCompile(`(?i)<OFX>`)
	headerLine       = regexp.MustCompile(`^([A-Za-z0-9_]+):(.*)$`)
	headerPI         = regexp.MustCompile(`(?is)<\?OFX\s(.*?)\?>`)
	headerPIAttrPair = regexp.MustCompile(`([A-Za-z0-9_]+)\s*=\s*"([^"]*)"`)
)

// Header holds the text preceding the OFX root tag and the fields parsed from it.
type Header struct {
	Raw    string
	Fields map[string]string
}

// Get returns the value of the named header field.
func (h Header) Get(key string) string {
	return h.Fields[strings.ToUpper(key)]
}

// Version returns the declared OFX version, e.g. "102" or "220".
func (h Header) Version() string {
	return h.Get("VERSION")
}

// ParseHeader parses both the OFX 1.x "KEY:VALUE" header lines and the attributes of an
// OFX 2.x <?OFX ...?> processing instruction.
func ParseHeader(raw string) Header {
	h := Header{Raw: raw, Fields: make(map[string]string)}
	for _, line := range strings.Split(normalizeNewlines(raw), "\n") {
		if m := headerLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			h.Fields[strings.ToUpper(m[1])] = strings.TrimSpace(m[2])
		}
	}
	if m := headerPI.FindStringSubmatch(raw); m != nil {
		for _, pair := range headerPIAttrPair.FindAllStringSubmatch(m[1], -1) {
			h.Fields[strings.ToUpper(pair[1])] = pair[2]
		}
	}
	return h
}

// rootIndex returns the offset of the first case-insensitive <OFX> in data, or -1.
func rootIndex(data []byte) int {
	loc := rootTagPattern.FindIndex(data)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// SplitDocument splits the decoded document at the first case-insensitive <OFX> tag into the
// trimmed header and body.
func SplitDocument(text string) (header, body string, err error) {
	loc := rootTagPattern.FindStringIndex(text)
	if loc == nil {
		return "", "", ErrMalformedDocument
	}
	return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[0]:]), nil
}
