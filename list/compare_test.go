package list_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/clarus/list"
)

var _ = Describe("Comparison", func() {
	It("should compare equal lists", func() {
		Expect(list.Equal(list.Of(1, 2), list.Of(1, 2))).To(BeTrue())
		Expect(list.Equal(list.New[int](), list.New[int]())).To(BeTrue())
	})

	It("should tell unequal lists apart", func() {
		Expect(list.Equal(list.Of(1, 2), list.Of(1, 3))).To(BeFalse())
		Expect(list.Equal(list.Of(1, 2), list.Of(1, 2, 3))).To(BeFalse())
	})

	It("should compare with a custom equality", func() {
		eq := func(a string, b string) bool { return strings.EqualFold(a, b) }

		Expect(list.EqualFunc(list.Of("a", "B"), list.Of("A", "b"), eq)).To(BeTrue())
	})

	DescribeTable("should order lexicographically",
		func(a, b *list.List[int], expected int) {
			Expect(list.Compare(a, b)).To(Equal(expected))
			Expect(list.Compare(b, a)).To(Equal(-expected))
			Expect(list.Less(a, b)).To(Equal(expected < 0))
		},
		Entry("first difference decides", list.Of(1, 2, 9), list.Of(1, 3), -1),
		Entry("prefix sorts first", list.Of(1, 2), list.Of(1, 2, 0), -1),
		Entry("empty sorts first", list.New[int](), list.Of(0), -1),
		Entry("equal lists", list.Of(4, 5), list.Of(4, 5), 0),
	)

	It("should order with a custom comparison", func() {
		byLen := func(a, b string) int { return len(a) - len(b) }

		Expect(list.CompareFunc(list.Of("aaa"), list.Of("bb"), byLen)).To(BeNumerically(">", 0))
	})

	It("should find contained values", func() {
		l := list.Of(3, 1, 2)

		Expect(list.Contains(l, 1)).To(BeTrue())
		Expect(list.Contains(l, 4)).To(BeFalse())
		Expect(list.ContainsFunc(l, func(v int) bool { return v > 2 })).To(BeTrue())
		Expect(list.Index(l, 2)).To(Equal(2))
		Expect(list.Index(l, 5)).To(Equal(-1))
	})
})
