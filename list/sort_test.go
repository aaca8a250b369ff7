package list_test

import (
	"cmp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/clarus/list"
)

var _ = Describe("Sort", func() {
	It("should return a sorted copy", func() {
		l := list.Of(3, 1, 2)

		s := list.Sorted(l)

		Expect(s.Slice()).To(Equal([]int{1, 2, 3}))
		Expect(l.Slice()).To(Equal([]int{3, 1, 2}))
	})

	It("should sort in place", func() {
		l := list.Of(3, 1, 2)
		alias := list.New[int]()
		alias.Rebind(l)

		list.Sort(l)

		Expect(l.Slice()).To(Equal([]int{1, 2, 3}))
		Expect(alias.Slice()).To(Equal([]int{1, 2, 3}))
	})

	It("should sort with a comparison", func() {
		desc := func(a, b int) int { return cmp.Compare(b, a) }
		l := list.Of(3, 1, 2)

		s := list.SortedFunc(l, desc)
		list.SortFunc(l, desc)

		Expect(s.Slice()).To(Equal([]int{3, 2, 1}))
		Expect(l.Slice()).To(Equal([]int{3, 2, 1}))
	})

	It("should keep equal elements in order with a stable sort", func() {
		type pair struct {
			key, order int
		}

		l := list.Of(pair{2, 0}, pair{1, 1}, pair{2, 2}, pair{1, 3})

		list.SortStableFunc(l, func(a, b pair) int { return cmp.Compare(a.key, b.key) })

		Expect(l.Slice()).To(Equal([]pair{{1, 1}, {1, 3}, {2, 0}, {2, 2}}))
	})

	It("should produce a permutation of the input", func() {
		l := list.Of(5, 3, 5, 1, 4)

		s := list.Sorted(l)

		Expect(s.Slice()).To(ConsistOf(l.Slice()))
		for i := 1; i < s.Size(); i++ {
			prev, _ := s.At(i - 1)
			cur, _ := s.At(i)
			Expect(prev).To(BeNumerically("<=", cur))
		}
	})
})
