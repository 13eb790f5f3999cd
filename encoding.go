package ofxparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingUTF8        = "UTF-8"
	EncodingWindows1252 = "Windows-1252"

	// DefaultEncoding is used when the header declares no charset or an unknown one.
	DefaultEncoding = EncodingWindows1252
)

var charsetPattern = regexp.MustCompile(`(?i)CHARSET:(\d+)`)

// charsetTable maps declared OFX charset codes to the encoding actually used to decode the
// document. 28591 is nominally ISO-8859-1 but exporters declaring it emit UTF-8.
var charsetTable = map[uint64]string{
	65001: EncodingUTF8,
	28591: EncodingUTF8,
}

// EncodingTag is a declared charset code and the encoding name it resolves to.
type EncodingTag struct {
	Code     uint64
	Declared bool
	Name     string
}

// Encoding returns the text encoding for the tag's name.
func (t EncodingTag) Encoding() encoding.Encoding {
	if t.Name == EncodingUTF8 {
		return unicode.UTF8BOM
	}
	enc, err := htmlindex.Get(t.Name)
	if err != nil {
		glog.Warningf("unknown encoding %q, falling back to %s", t.Name, DefaultEncoding)
		enc, _ = htmlindex.Get(DefaultEncoding)
	}
	return enc
}

// DetectEncoding looks for a CHARSET:<digits> declaration in header and resolves it through the
// charset table. It never fails: anything unresolved maps to DefaultEncoding.
func DetectEncoding(header []byte) EncodingTag {
	tag := EncodingTag{Name: DefaultEncoding}
	m := charsetPattern.FindSubmatch(header)
	if m == nil {
		glog.V(2).Infof("no charset declared, assuming %s", tag.Name)
		return tag
	}
	tag.Declared = true
	code, err := strconv.ParseUint(string(m[1]), 10, 64)
	if err != nil {
		glog.V(2).Infof("charset code %s out of range, assuming %s", m[1], tag.Name)
		return tag
	}
	tag.Code = code
	if name, ok := charsetTable[code]; ok {
		tag.Name = name
	}
	glog.V(2).Infof("charset %d resolved to %s", tag.Code, tag.Name)
	return tag
}

// Decode converts raw from the tag's encoding to UTF-8. Bytes that can not be decoded are
// replaced with U+FFFD.
func Decode(raw []byte, tag EncodingTag) string {
	out, err := tag.Encoding().NewDecoder().Bytes(raw)
	if err != nil {
		glog.V(2).Infof("decoding from %s failed (%v), replacing invalid sequences", tag.Name, err)
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(out)
}
