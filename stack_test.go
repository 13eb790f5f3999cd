package ofxparser_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofxparser"
)

var _ = Describe("ofxparser", func() {
	Describe("NewStack()", func() {
		It("should return an initialized empty stack", func() {
			s := ofxparser.NewStack()
			Expect(s).ToNot(BeNil())
			Expect(s.IsEmpty()).To(BeTrue())
			Expect(s.Size()).To(Equal(0))
			Expect(s.Peek()).To(BeNil())
		})
	})
	Describe("TagStack", func() {
		var s ofxparser.TagStack
		BeforeEach(func() {
			s = ofxparser.NewStack()
		})
		Describe("Push()", func() {
			It("should add the given tag to the stack", func() {
				s.Push(&ofxparser.OpenTag{Name: "OFX"})
				Expect(s.IsEmpty()).To(BeFalse())
				Expect(s.Size()).To(Equal(1))
				Expect(s.Peek().Name).To(Equal("OFX"))
			})
		})
		Describe("Pop()", func() {
			It("should remove the last tag from the stack", func() {
				t1 := &ofxparser.OpenTag{Name: "test1"}
				t2 := &ofxparser.OpenTag{Name: "test2"}
				s.Push(t1)
				s.Push(t2)
				t, err := s.Pop()
				Expect(err).To(BeNil())
				Expect(t).To(Equal(t2))
				Expect(s.Size()).To(Equal(1))
				Expect(s.Peek()).To(Equal(t1))
			})
			It("should return an error when popping an empty stack", func() {
				t, err := s.Pop()
				Expect(err).To(MatchError("error - popping from empty stack"))
				Expect(t).To(BeNil())
			})
		})
		Describe("Index()", func() {
			It("should return the innermost position of the named tag", func() {
				for _, name := range []string{"OFX", "STMTTRN", "NAME", "STMTTRN"} {
					s.Push(&ofxparser.OpenTag{Name: name})
				}
				Expect(s.Index("OFX")).To(Equal(0))
				Expect(s.Index("STMTTRN")).To(Equal(3))
				Expect(s.Index("MEMO")).To(Equal(-1))
				Expect(s.Dump()).To(Equal([]string{"OFX", "STMTTRN", "NAME", "STMTTRN"}))
			})
		})
	})
})
