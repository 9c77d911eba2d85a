package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Kind selects the rendering of a message.
type Kind int

const (
	Plain Kind = iota
	Command
	Success
	Warning
	Error
)

// Printer is the user-facing output channel. Error messages go to the error
// stream, everything else to the output stream. When a stream is not a
// terminal, color is stripped and command echoes get a literal "$ " prefix so
// captured output stays copy-pasteable.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	colorOut bool
	colorErr bool
}

// NewPrinter builds a printer for the process's standard streams, detecting
// terminal attachment per stream.
func NewPrinter() *Printer {
	return &Printer{
		out:      os.Stdout,
		errOut:   os.Stderr,
		colorOut: streamSupportsColor(os.Stdout),
		colorErr: streamSupportsColor(os.Stderr),
	}
}

// NewPrinterTo builds a printer over explicit writers with color forced on or
// off. Used by tests and by callers that already know the answer.
func NewPrinterTo(out, errOut io.Writer, colored bool) *Printer {
	return &Printer{out: out, errOut: errOut, colorOut: colored, colorErr: colored}
}

func streamSupportsColor(f *os.File) bool {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

var kindColors = map[Kind]*color.Color{
	Plain:   color.New(color.FgHiBlack),
	Success: color.New(color.FgGreen),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed),
}

// Print writes one message of the given kind.
func (p *Printer) Print(kind Kind, text string) {
	w, colored := p.out, p.colorOut
	if kind == Error {
		w, colored = p.errOut, p.colorErr
	}

	if !colored {
		if kind == Command {
			text = "$ " + text
		}
		fmt.Fprintln(w, text)
		return
	}

	if c, ok := kindColors[kind]; ok {
		fmt.Fprintln(w, c.Sprint(text))
		return
	}
	// Command keeps the terminal's default color.
	fmt.Fprintln(w, text)
}

func (p *Printer) Plainf(format string, args ...interface{}) {
	p.Print(Plain, fmt.Sprintf(format, args...))
}

func (p *Printer) Commandf(format string, args ...interface{}) {
	p.Print(Command, fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...interface{}) {
	p.Print(Success, fmt.Sprintf(format, args...))
}

func (p *Printer) Warningf(format string, args ...interface{}) {
	p.Print(Warning, fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...interface{}) {
	p.Print(Error, fmt.Sprintf(format, args...))
}
