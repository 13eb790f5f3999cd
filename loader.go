package ofxparser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
)

// errorCollector gathers well-formedness errors for a single parse.
type errorCollector struct {
	errors []ParseError
}

func (c *errorCollector) add(line, column int, severity Severity, format string, args ...interface{}) {
	e := ParseError{Line: line, Column: column, Severity: severity, Message: fmt.Sprintf(format, args...)}
	glog.V(3).Infof("well-formedness %s", e)
	c.errors = append(c.errors, e)
}

// CheckWellFormed reports every well-formedness error found in text, in document order. Tag
// nesting errors are recovered from and collected; a syntax error ends the check since the
// tokenizer can not resume after it.
func CheckWellFormed(text string) []ParseError {
	var (
		errs       errorCollector
		tags       = NewStack()
		decoder    = xml.NewDecoder(strings.NewReader(text))
		seenRoot   bool
		rootClosed bool
	)
	decoder.Strict = true
	decoder.Entity = map[string]string{}

	for {
		line, column := decoder.InputPos()
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			errLine, errColumn := decoder.InputPos()
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				errs.add(syntaxErr.Line, errColumn, SeverityFatal, "%s", syntaxErr.Msg)
			} else {
				errs.add(errLine, errColumn, SeverityFatal, "%v", err)
			}
			return errs.errors
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := qualifiedName(t.Name)
			if rootClosed && tags.IsEmpty() {
				errs.add(line, column, SeverityError, "extra content at the end of the document: <%s>", name)
			}
			seenRoot = true
			tags.Push(&OpenTag{Name: name, Line: line, Column: column})
		case xml.EndElement:
			name := qualifiedName(t.Name)
			idx := tags.Index(name)
			switch {
			case tags.IsEmpty():
				errs.add(line, column, SeverityError, "unexpected end tag </%s>", name)
			case idx < 0:
				errs.add(line, column, SeverityError, "unexpected end tag </%s>, expected </%s>", name, tags.Peek().Name)
			default:
				for tags.Size() > idx+1 {
					open, _ := tags.Pop()
					errs.add(line, column, SeverityError,
						"opening and ending tag mismatch: <%s> line %d and </%s>", open.Name, open.Line, name)
				}
				_, _ = tags.Pop()
				if tags.IsEmpty() {
					rootClosed = true
				}
			}
		case xml.CharData:
			if tags.IsEmpty() && strings.TrimSpace(string(t)) != "" {
				errs.add(line, column, SeverityError, "content outside of the root element")
			}
		}
	}

	line, column := decoder.InputPos()
	for !tags.IsEmpty() {
		open, _ := tags.Pop()
		errs.add(line, column, SeverityFatal,
			"premature end of data: <%s> opened at line %d column %d is not closed", open.Name, open.Line, open.Column)
	}
	if !seenRoot {
		errs.add(line, column, SeverityFatal, "document is empty")
	}
	return errs.errors
}

// LoadXML parses text into an XML tree. It fails with a *ParseFailure carrying every error found
// when text is not well-formed.
func LoadXML(text string) (*xmlquery.Node, error) {
	if errs := CheckWellFormed(text); len(errs) > 0 {
		glog.V(2).Infof("xml is not well-formed: %d error(s)", len(errs))
		return nil, &ParseFailure{Errors: errs}
	}
	root, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, treeFailure(err)
	}
	return root, nil
}

// treeFailure wraps an error returned while building the tree. xmlquery only exposes the line of
// a syntax error, so Column is left 0 (unknown) and Line is 0 for any other error.
func treeFailure(err error) *ParseFailure {
	e := ParseError{Severity: SeverityFatal, Message: err.Error()}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		e.Line = syntaxErr.Line
		e.Message = syntaxErr.Msg
	}
	return &ParseFailure{Errors: []ParseError{e}}
}
