package gnuplot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing/iotest"

	"github.com/sarchlab/clarus/list"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Gnuplot", func() {
	var (
		mockCtrl *gomock.Controller
		printer  *MockPrinter
		g        *Gnuplot
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		printer = NewMockPrinter(mockCtrl)
		g = New(printer)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should send a command", func() {
		printer.EXPECT().Printf("set title %q", "test").Return(nil)

		Expect(g.Command("set title %q", "test")).To(Succeed())
	})

	It("should set defaults", func() {
		var sent []string
		printer.EXPECT().
			Printf("%s", gomock.Any()).
			DoAndReturn(func(_ string, args ...any) error {
				sent = append(sent, args[0].(string))
				return nil
			}).
			Times(10)

		Expect(g.SetDefaults()).To(Succeed())
		Expect(sent[0]).To(Equal("set terminal x11"))
		Expect(sent).To(ContainElement("set size ratio -1"))
		Expect(sent[9]).To(Equal("unset key"))
	})

	It("should stop at the first failure", func() {
		printer.EXPECT().Printf("%s", "set terminal x11").Return(errors.New("broken pipe"))

		Expect(g.SetDefaults()).To(MatchError("broken pipe"))
	})

	It("should plot data up to the first empty line", func() {
		data := "1 2 3\n4 5 6\n\n7 8 9\n"

		gomock.InOrder(
			printer.EXPECT().Printf("plot '-' using %d:%d with points notitle", 1, 3),
			printer.EXPECT().Printf("%s", "1 2 3"),
			printer.EXPECT().Printf("%s", "4 5 6"),
			printer.EXPECT().Printf("e"),
			printer.EXPECT().Flush(),
		)

		Expect(g.Plot2DFrom(strings.NewReader(data), 1, 3)).To(Succeed())
	})

	It("should report a failed data read", func() {
		readErr := errors.New("disk error")
		printer.EXPECT().Printf("plot '-' using %d:%d with points notitle", 1, 2)

		err := g.Plot2DFrom(iotest.ErrReader(readErr), 1, 2)

		Expect(err).To(MatchError(readErr))
	})

	It("should plot a data file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "data.txt")
		Expect(os.WriteFile(path, []byte("0 1\n"), 0o644)).To(Succeed())

		gomock.InOrder(
			printer.EXPECT().Printf("plot '-' using %d:%d with points notitle", 1, 2),
			printer.EXPECT().Printf("%s", "0 1"),
			printer.EXPECT().Printf("e"),
			printer.EXPECT().Flush(),
		)

		Expect(g.Plot2D(path, 1, 2)).To(Succeed())
	})

	It("should fail on a missing data file", func() {
		err := g.Plot2D(filepath.Join(GinkgoT().TempDir(), "none"), 1, 2)

		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("should plot a list", func() {
		gomock.InOrder(
			printer.EXPECT().Printf("plot '-' using 1:2 with lines notitle"),
			printer.EXPECT().Printf("%d %g", 0, 0.5),
			printer.EXPECT().Printf("%d %g", 1, 2.0),
			printer.EXPECT().Printf("e"),
			printer.EXPECT().Flush(),
		)

		Expect(g.PlotList(list.Of(0.5, 2))).To(Succeed())
	})

	It("should run a real process", func() {
		path := filepath.Join(GinkgoT().TempDir(), "commands.txt")

		session, err := MakeBuilder().
			WithProgram("cat > " + path).
			WithAutoflush(false).
			Build(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(session.Command("set grid")).To(Succeed())
		Expect(session.Close()).To(Succeed())

		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("set grid\n"))
	})
})
