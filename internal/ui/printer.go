package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes styled command output to a writer
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer that writes to out, or stdout when out is nil
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Print writes a string to output
func (p *Printer) Print(s string) {
	fmt.Fprint(p.out, s)
}

// Println writes a string with newline to output
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// PrintHeader prints a styled header
func (p *Printer) PrintHeader(h *Header) {
	p.Println(h.Render())
	p.Println("")
}

// PrintResult prints a styled result box
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.Render())
}

// PrintSuccess prints a success box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.PrintResult(NewSuccessResult(title, details...))
}

// PrintError prints a failure box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.PrintResult(NewFailureResult(title, err, troubleshooting))
}
