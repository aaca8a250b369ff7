package list_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/clarus/list"
)

var _ = Describe("JSON", func() {
	It("should encode as an array", func() {
		data, err := json.Marshal(list.Of(1, 2))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("[1,2]"))

		data, err = json.Marshal(&list.List[int]{})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("[]"))
	})

	It("should decode into a shared buffer", func() {
		l := list.Of(9)
		alias := list.New[int]()
		alias.Rebind(l)

		err := json.Unmarshal([]byte("[1, 2, 3]"), l)

		Expect(err).NotTo(HaveOccurred())
		Expect(alias.Slice()).To(Equal([]int{1, 2, 3}))
	})

	It("should decode lists inside structs", func() {
		var s struct {
			Values *list.List[string] `json:"values"`
		}

		err := json.Unmarshal([]byte(`{"values": ["a", "b"]}`), &s)

		Expect(err).NotTo(HaveOccurred())
		Expect(s.Values.Slice()).To(Equal([]string{"a", "b"}))
	})
})
