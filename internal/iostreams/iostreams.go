package iostreams

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams provides access to standard input/output streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	colorEnabled bool
}

// New creates a new IOStreams with default stdin/stdout/stderr
func New() *IOStreams {
	s := &IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
	s.colorEnabled = s.shouldEnableColor()
	return s
}

// Test returns IOStreams backed by buffers, with color disabled
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{In: in, Out: out, ErrOut: errOut}, in, out, errOut
}

// IsStdoutTTY returns true if stdout is a terminal
func (s *IOStreams) IsStdoutTTY() bool {
	return isTerminal(s.Out)
}

// IsStdinTTY returns true if stdin is a terminal
func (s *IOStreams) IsStdinTTY() bool {
	return isTerminal(s.In)
}

func isTerminal(v interface{}) bool {
	if f, ok := v.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// ColorEnabled returns true if color output is enabled
func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

func (s *IOStreams) shouldEnableColor() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("SNIPPER_NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return s.IsStdoutTTY()
}

// Color codes
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// ColorFunc returns a function that wraps text in color codes if color is enabled
func (s *IOStreams) ColorFunc(color string) func(string) string {
	if !s.colorEnabled {
		return func(text string) string { return text }
	}
	return func(text string) string {
		return color + text + Reset
	}
}

// Success prints a success message (green checkmark)
func (s *IOStreams) Success(format string, a ...interface{}) {
	s.mark(s.Out, Green, "✓", format, a...)
}

// Error prints an error message (red X)
func (s *IOStreams) Error(format string, a ...interface{}) {
	s.mark(s.ErrOut, Red, "✗", format, a...)
}

// Warning prints a warning message (yellow !)
func (s *IOStreams) Warning(format string, a ...interface{}) {
	s.mark(s.ErrOut, Yellow, "!", format, a...)
}

// Info prints an info message
func (s *IOStreams) Info(format string, a ...interface{}) {
	fmt.Fprintf(s.Out, format+"\n", a...)
}

func (s *IOStreams) mark(w io.Writer, color, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if s.colorEnabled {
		fmt.Fprintf(w, "%s%s %s%s\n", color, symbol, msg, Reset)
		return
	}
	fmt.Fprintf(w, "%s %s\n", symbol, msg)
}
