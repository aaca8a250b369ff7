// Package gnuplot drives an interactive gnuplot process.
package gnuplot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/clarus/command"
	"github.com/sarchlab/clarus/list"
)

// Printer receives gnuplot commands, one per line.
type Printer interface {
	Printf(format string, args ...any) error
	Flush() error
}

// Builder can build Gnuplot sessions.
type Builder struct {
	program   string
	autoflush bool
}

// MakeBuilder creates a builder that runs "gnuplot" with autoflush enabled.
func MakeBuilder() Builder {
	return Builder{
		program:   "gnuplot",
		autoflush: true,
	}
}

// WithProgram sets the shell command that reads gnuplot commands from its
// standard input.
func (b Builder) WithProgram(program string) Builder {
	b.program = program
	return b
}

// WithAutoflush sets whether every command is flushed as soon as it is sent.
func (b Builder) WithAutoflush(autoflush bool) Builder {
	b.autoflush = autoflush
	return b
}

// Build starts the gnuplot process.
func (b Builder) Build(ctx context.Context) (*Gnuplot, error) {
	out, err := command.NewShellOutput(ctx, b.autoflush, b.program)
	if err != nil {
		return nil, err
	}

	return New(out), nil
}

// Gnuplot sends commands to a gnuplot session.
type Gnuplot struct {
	out Printer
}

// New creates a session over the given printer.
func New(out Printer) *Gnuplot {
	return &Gnuplot{out: out}
}

// Command sends a single formatted command.
func (g *Gnuplot) Command(format string, args ...any) error {
	return g.out.Printf(format, args...)
}

// SetDefaults configures an x11 terminal with a grid, mouse support, axis
// labels, a [-10:10] range on every axis, a 1:1 aspect ratio and no legend.
func (g *Gnuplot) SetDefaults() error {
	defaults := []string{
		"set terminal x11",
		"set grid",
		"set mouse",
		`set xlabel "x"`,
		`set ylabel "y"`,
		"set trange [-10:10]",
		"set xrange [-10:10]",
		"set yrange [-10:10]",
		"set size ratio -1",
		"unset key",
	}

	for _, d := range defaults {
		err := g.out.Printf("%s", d)
		if err != nil {
			return err
		}
	}

	return nil
}

// Plot2D plots columns c0 and c1 of the data file at path as points. The file
// is read up to its end or its first empty line.
func (g *Gnuplot) Plot2D(path string, c0, c1 int) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return g.Plot2DFrom(file, c0, c1)
}

// Plot2DFrom is like Plot2D but reads the data from r.
func (g *Gnuplot) Plot2DFrom(r io.Reader, c0, c1 int) error {
	err := g.out.Printf("plot '-' using %d:%d with points notitle", c0, c1)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && scanner.Text() != "" {
		err = g.out.Printf("%s", scanner.Text())
		if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading plot data: %w", err)
	}

	return g.endData()
}

// PlotList plots the values of a list against their indices as a line.
func (g *Gnuplot) PlotList(values *list.List[float64]) error {
	err := g.out.Printf("plot '-' using 1:2 with lines notitle")
	if err != nil {
		return err
	}

	for i, v := range values.All() {
		err = g.out.Printf("%d %g", i, v)
		if err != nil {
			return err
		}
	}

	return g.endData()
}

func (g *Gnuplot) endData() error {
	err := g.out.Printf("e")
	if err != nil {
		return err
	}

	return g.out.Flush()
}

// Close ends the session if the printer can be closed.
func (g *Gnuplot) Close() error {
	if c, ok := g.out.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
