package ofxparser

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/golang/glog"
)

// balanceTags closes elements SGML leaves implicitly terminated:
//   - a start tag arriving while the innermost open element is a value element that already
//     holds text closes that element first;
//   - an end tag matching an element deeper in the stack closes every element above it.
//
// End tags without a matching open element and elements still open at the end are written
// unchanged so that the loader reports them. On a syntax error the input is returned as is.
func balanceTags(text string, aggregates aggregateSet) string {
	var (
		tags    = NewStack()
		out     strings.Builder
		decoder = xml.NewDecoder(strings.NewReader(text))
		closed  int
	)
	decoder.Strict = true

	closeTop := func() {
		t, _ := tags.Pop()
		writeEndTag(t.Name, &out)
		closed++
	}

	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			glog.V(2).Infof("tag balancing skipped: %v", err)
			return text
		}

		switch t := token.(type) {
		case xml.StartElement:
			if top := tags.Peek(); top != nil && top.HasText && !aggregates.contains(top.Name) {
				glog.V(3).Infof("StartTag %s: closing value element %s", qualifiedName(t.Name), top.Name)
				closeTop()
			}
			tags.Push(&OpenTag{Name: qualifiedName(t.Name)})
			writeStartTag(&t, &out)
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if idx := tags.Index(name); idx >= 0 {
				for tags.Size() > idx+1 {
					glog.V(3).Infof("EndTag %s: closing %s, stack %v", name, tags.Peek().Name, tags.Dump())
					closeTop()
				}
				_, _ = tags.Pop()
			} else {
				glog.V(3).Infof("EndTag %s: no open element, stack %v", name, tags.Dump())
			}
			writeEndTag(name, &out)
		case xml.CharData:
			if top := tags.Peek(); top != nil && strings.TrimSpace(string(t)) != "" {
				top.HasText = true
			}
			out.WriteString(escapeText(string(t), false))
		case xml.Comment:
			out.WriteString("<!--")
			out.Write(t)
			out.WriteString("-->")
		case xml.ProcInst:
			out.WriteString("<?")
			out.WriteString(t.Target)
			if len(t.Inst) > 0 {
				out.WriteByte(' ')
				out.Write(t.Inst)
			}
			out.WriteString("?>")
		case xml.Directive:
			out.WriteString("<!")
			out.Write(t)
			out.WriteByte('>')
		}
	}
	glog.V(2).Infof("tag balancing closed %d elements, %d left open", closed, tags.Size())
	return out.String()
}
