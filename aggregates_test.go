package ofxparser_test

import (
	"reflect"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofxparser"
)

var _ = Describe("ofxparser", func() {
	Describe("GetAggregates()", func() {
		It("should return a fresh copy on every call.", func() {
			i1 := ofxparser.GetAggregates()
			i2 := ofxparser.GetAggregates()
			Expect(i1).To(HaveKey("OFX"))
			Expect(reflect.ValueOf(i1).Pointer()).NotTo(Equal(reflect.ValueOf(i2).Pointer()))
		})
		It("should not let callers change the known aggregates.", func() {
			i := ofxparser.GetAggregates()
			delete(i, "STMTTRN")
			i["MEMO"] = struct{}{}
			Expect(ofxparser.IsAggregate("STMTTRN")).To(BeTrue())
			Expect(ofxparser.IsAggregate("MEMO")).To(BeFalse())
			Expect(ofxparser.GetAggregates()).To(HaveKey("STMTTRN"))
			line, _ := ofxparser.CloseUnclosedTags("<MEMO>")
			Expect(line).To(Equal("<MEMO></MEMO>"))
		})
	})
	Describe("IsAggregate()", func() {
		DescribeTable("should return true if the element is aggregate", func(name string, expected bool) {
			Expect(ofxparser.IsAggregate(name)).To(Equal(expected))
		},
			Entry("OFX", "OFX", true),
			Entry("lower case ofx", "ofx", true),
			Entry("SIGNONMSGSRSV1", "SIGNONMSGSRSV1", true),
			Entry("SONRS", "SONRS", true),
			Entry("STATUS", "STATUS", true),
			Entry("BANKMSGSRSV1", "BANKMSGSRSV1", true),
			Entry("STMTTRN", "STMTTRN", true),
			Entry("LEDGERBAL", "LEDGERBAL", true),
			Entry("CREDITCARDMSGSRSV1", "CREDITCARDMSGSRSV1", true),
			Entry("INVSTMTRS", "INVSTMTRS", true),

			Entry("CODE", "CODE", false),
			Entry("MEMO", "MEMO", false),
			Entry("TRNTYPE", "TRNTYPE", false),
			Entry("INTU.BID", "INTU.BID", false),
		)
	})
})
