package ofxparser

import (
	"regexp"
	"strings"

	"github.com/golang/glog"
)

// valueChars is the closed set of characters an implicitly terminated value may contain. Letters
// cover every script, so accented Latin letters such as ü, ß and º are accepted.
const valueChars = `\w\p{L}\p{N}.\-_+, ;:\[\]'&/\\*()+{}!£$?=@€#%±§~` + "`"

var (
	emptyTagLine  = regexp.MustCompile(`^<([A-Za-z0-9.]+)>\s*$`)
	unclosedValue = regexp.MustCompile(`<([A-Za-z0-9.]+)>[` + valueChars + `]+$`)
)

// lineOutcome tells which rule rewrote a line.
type lineOutcome int

const (
	lineUnchanged lineOutcome = iota
	lineEmptyClosed
	lineValueClosed
)

func (o lineOutcome) String() string {
	switch o {
	case lineEmptyClosed:
		return "empty-closed"
	case lineValueClosed:
		return "value-closed"
	}
	return "unchanged"
}

// normalizeNewlines converts \r\n and lone \r to \n.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// NormalizeSGML closes the tags SGML OFX leaves open at the end of a line, using the default
// aggregate table.
func NormalizeSGML(body string) string {
	return normalizeSGML(body, IsAggregate)
}

func normalizeSGML(body string, isAggregate func(string) bool) string {
	lines := strings.Split(normalizeNewlines(body), "\n")
	var closed, emptied int
	for i, line := range lines {
		out, outcome := closeUnclosedTags(line, isAggregate)
		switch outcome {
		case lineEmptyClosed:
			emptied++
		case lineValueClosed:
			closed++
		}
		if outcome != lineUnchanged {
			glog.V(3).Infof("line %d %s: %q -> %q", i+1, outcome, line, out)
		}
		lines[i] = strings.TrimSpace(out)
	}
	glog.V(2).Infof("normalized %d lines: %d values closed, %d empty elements", len(lines), closed, emptied)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// closeUnclosedTags rewrites a single line. A lone opening tag becomes an empty element unless
// it names an aggregate; a line ending in an unterminated value gets the matching end tag.
func closeUnclosedTags(line string, isAggregate func(string) bool) (string, lineOutcome) {
	trimmed := strings.TrimSpace(line)
	if m := emptyTagLine.FindStringSubmatch(trimmed); m != nil {
		if isAggregate(m[1]) {
			return line, lineUnchanged
		}
		return "<" + m[1] + "></" + m[1] + ">", lineEmptyClosed
	}
	if m := unclosedValue.FindStringSubmatch(trimmed); m != nil {
		return trimmed + "</" + m[1] + ">", lineValueClosed
	}
	return line, lineUnchanged
}
