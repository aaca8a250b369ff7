// Package command pipes text lines into and out of child processes.
package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"slices"
	"strings"

	"github.com/sarchlab/clarus/list"
)

// Shell is the shell used by NewShellInput and NewShellOutput.
var Shell = []string{"sh", "-c"}

// Input reads the standard output of a child process line by line.
type Input struct {
	cmd    *exec.Cmd
	reader *bufio.Reader
}

// NewInput starts the named program and returns an Input over its standard
// output.
func NewInput(ctx context.Context, name string, args ...string) (*Input, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	err = cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("could not start %q: %w", name, err)
	}

	return &Input{cmd: cmd, reader: bufio.NewReader(stdout)}, nil
}

// NewShellInput runs command in the shell and returns an Input over its
// standard output.
func NewShellInput(ctx context.Context, command string) (*Input, error) {
	return NewInput(ctx, Shell[0], shellArgs(command)...)
}

func shellArgs(command string) []string {
	return append(slices.Clone(Shell[1:]), command)
}

// ReadLine returns the next line without its line terminator. It returns
// false once the process has closed its output.
func (in *Input) ReadLine() (string, bool, error) {
	line, err := in.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", false, nil
		}

		err = nil
	}

	if err != nil {
		return "", false, err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, true, nil
}

// ReadAll reads the remaining lines into a list.
func (in *Input) ReadAll() (*list.List[string], error) {
	lines := list.New[string]()

	for {
		line, ok, err := in.ReadLine()
		if err != nil {
			return lines, err
		}

		if !ok {
			return lines, nil
		}

		lines.AppendValue(line)
	}
}

// Close waits for the process to exit.
func (in *Input) Close() error {
	_, _ = io.Copy(io.Discard, in.reader)

	return in.cmd.Wait()
}

// Output writes formatted lines to the standard input of a child process.
type Output struct {
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	writer    *bufio.Writer
	autoflush bool
}

// NewOutput starts the named program and returns an Output writing to its
// standard input. With autoflush, every line is flushed as soon as it is
// written.
func NewOutput(
	ctx context.Context,
	autoflush bool,
	name string,
	args ...string,
) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	err = cmd.Start()
	if err != nil {
		return nil, fmt.Errorf("could not start %q: %w", name, err)
	}

	return &Output{
		cmd:       cmd,
		stdin:     stdin,
		writer:    bufio.NewWriter(stdin),
		autoflush: autoflush,
	}, nil
}

// NewShellOutput runs command in the shell and returns an Output writing to
// its standard input.
func NewShellOutput(
	ctx context.Context,
	autoflush bool,
	command string,
) (*Output, error) {
	return NewOutput(ctx, autoflush, Shell[0], shellArgs(command)...)
}

// Printf formats according to format, appends a line break, and writes the
// line to the process.
func (o *Output) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(o.writer, format+"\n", args...)
	if err != nil {
		return err
	}

	if o.autoflush {
		return o.Flush()
	}

	return nil
}

// Flush sends buffered lines to the process.
func (o *Output) Flush() error {
	return o.writer.Flush()
}

// Close flushes pending lines, closes the process's input and waits for it to
// exit.
func (o *Output) Close() error {
	flushErr := o.Flush()

	closeErr := o.stdin.Close()
	waitErr := o.cmd.Wait()

	return errors.Join(flushErr, closeErr, waitErr)
}
