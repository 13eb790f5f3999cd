package ofxparser

import (
	"regexp"
	"strings"
)

// PlaceholderTransactionType replaces empty <TRNTYPE> values.
const PlaceholderTransactionType = "OTHER"

// emptyTrnType matches a <TRNTYPE> with no value before the end of the line, the end of the text
// or the next start tag. An explicit <TRNTYPE></TRNTYPE> is only filled when whitespace separates
// the two tags.
var emptyTrnType = regexp.MustCompile(`<TRNTYPE>(?:[ \t]+(</)|[ \t]*(\r\n|\r|\n|$|<[^/]))`)

// Sanitize applies the document wide fixes run before line normalization. Ampersands are
// dropped outright rather than escaped, and empty <TRNTYPE> values are filled with
// PlaceholderTransactionType.
func Sanitize(body string) string {
	body = strings.ReplaceAll(body, "&", "")
	return emptyTrnType.ReplaceAllString(body, "<TRNTYPE>"+PlaceholderTransactionType+"${1}${2}")
}
