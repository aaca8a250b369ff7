package list_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/clarus/list"
)

var _ = Describe("Cursor", func() {
	It("should visit every element once", func() {
		l := list.Of(1, 2, 3)

		var visited []int
		for c := l.ConstCursor(); c.More(); {
			visited = append(visited, c.Next())
		}

		Expect(visited).To(Equal([]int{1, 2, 3}))
	})

	It("should modify elements in place", func() {
		l := list.Of(1, 2, 3)

		for c := l.Cursor(); c.More(); {
			*c.Next() *= 10
		}

		Expect(l.Slice()).To(Equal([]int{10, 20, 30}))
	})

	It("should panic past the last element", func() {
		c := list.Of(1).ConstCursor()
		c.Next()

		Expect(c.More()).To(BeFalse())
		Expect(func() { c.Next() }).To(Panic())
	})

	It("should stop when the list is cleared", func() {
		l := list.Of(1, 2, 3)
		c := l.Cursor()
		c.Next()

		l.Clear()

		Expect(c.More()).To(BeFalse())
	})

	It("should not move on an empty or nil list", func() {
		var nilList *list.List[int]

		Expect(list.New[int]().ConstCursor().More()).To(BeFalse())
		Expect(nilList.ConstCursor().More()).To(BeFalse())
		Expect(nilList.Cursor().More()).To(BeFalse())
	})
})
