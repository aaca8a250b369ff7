package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/clarus/list"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Monitor", func() {
	var (
		mockCtrl *gomock.Controller
		l        *MockInspectable
		m        *Monitor
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		l = NewMockInspectable(mockCtrl)
		m = NewMonitor().WithProfileDuration(10 * time.Millisecond)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		m.Router().ServeHTTP(rec, req)

		return rec
	}

	It("should replace reserved port numbers with a random port", func() {
		m.WithPortNumber(80)
		Expect(m.portNumber).To(Equal(0))

		m.WithPortNumber(8080)
		Expect(m.portNumber).To(Equal(8080))
	})

	It("should not register a name twice", func() {
		m.RegisterList("a", l)

		Expect(func() { m.RegisterList("a", l) }).To(Panic())
	})

	It("should list the registered lists in order", func() {
		other := NewMockInspectable(mockCtrl)
		l.EXPECT().Size().Return(3)
		other.EXPECT().Size().Return(0)

		m.RegisterList("b", l)
		m.RegisterList("a", other)

		rec := get("/api/lists")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(
			`[{"name":"b","size":3},{"name":"a","size":0}]`))
	})

	It("should show an empty list of lists", func() {
		rec := get("/api/lists")

		Expect(rec.Body.String()).To(MatchJSON(`[]`))
	})

	It("should show the content of a list", func() {
		l.EXPECT().Size().Return(2)
		l.EXPECT().String().Return("[1, 2]")
		m.RegisterList("nums", l)

		rec := get("/api/list/nums")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(MatchJSON(
			`{"name":"nums","size":2,"text":"[1, 2]"}`))
	})

	It("should reply 404 for unknown lists", func() {
		Expect(get("/api/list/missing").Code).To(Equal(http.StatusNotFound))
		Expect(get("/api/list/missing/detail").Code).
			To(Equal(http.StatusNotFound))
	})

	It("should reflect mutations of a live list", func() {
		nums := list.Of(1, 2)
		m.RegisterList("nums", nums)

		nums.AppendValue(3)
		rec := get("/api/list/nums")

		Expect(rec.Body.String()).To(MatchJSON(
			`{"name":"nums","size":3,"text":"[1, 2, 3]"}`))
	})

	It("should serialize the detail of a list", func() {
		m.RegisterList("nums", list.Of(1, 2))

		rec := get("/api/list/nums/detail")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(json.Valid(rec.Body.Bytes())).To(BeTrue())
	})

	It("should report process resources", func() {
		rec := get("/api/resource")

		Expect(rec.Code).To(Equal(http.StatusOK))

		rsp := resourceRsp{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.MemorySize).To(BeNumerically(">", 0))
	})

	It("should collect a profile", func() {
		rec := get("/api/profile")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(json.Valid(rec.Body.Bytes())).To(BeTrue())
	})

	It("should reject other methods", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/lists", nil)
		rec := httptest.NewRecorder()
		m.Router().ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
	})

	It("should serve on a random port", func() {
		url := m.StartServer()

		rsp, err := http.Get(url + "/api/lists")
		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()

		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})
})
