package ofxparser_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofxparser"
)

var _ = Describe("ofxparser", func() {
	Describe("balanceTags()", func() {
		DescribeTable("should close implicitly terminated elements", func(input, expected string) {
			Expect(ofxparser.BalanceTags(input)).To(Equal(expected))
		},
			Entry("when an ancestor end tag closes open elements",
				`<OFX><BANKMSGSRSV1><MEMO></OFX>`,
				`<OFX><BANKMSGSRSV1><MEMO></MEMO></BANKMSGSRSV1></OFX>`),
			Entry("when values are followed by the next tag",
				`<STATUS><CODE>0<SEVERITY>INFO</STATUS>`,
				`<STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>`),
			Entry("when a value is followed by a sibling on the same line",
				"<OFX>\n<DTSTART>20190101<DTEND>20190131</DTEND>\n</OFX>",
				"<OFX>\n<DTSTART>20190101</DTSTART><DTEND>20190131</DTEND>\n</OFX>"),
			Entry("when the aggregate end tag is missing for a nested aggregate",
				`<OFX><BANKTRANLIST><STMTTRN><NAME>Foo</NAME></BANKTRANLIST></OFX>`,
				`<OFX><BANKTRANLIST><STMTTRN><NAME>Foo</NAME></STMTTRN></BANKTRANLIST></OFX>`),
		)
		DescribeTable("should leave the input untouched", func(input string) {
			Expect(ofxparser.BalanceTags(input)).To(Equal(input))
		},
			Entry("when already well formed", "<OFX>\n<NAME>A &gt; B</NAME>\n<!-- note -->\n</OFX>"),
			Entry("when an aggregate holds text", `<STATUS>baz<SEVERITY>INFO</SEVERITY></STATUS>`),
			Entry("when an end tag has no start tag", `<OFX></FOO></OFX>`),
			Entry("when elements are left open", `<OFX><STMTTRN><NAME>Foo`),
			Entry("when containing malformed tokens", "<OFX>\n< bad\n</OFX>"),
		)
	})
})
