package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes UI components to a writer. The non-interactive commands
// (check, format, config, the line-mode flows) print through it.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintLines writes multiple lines
func (p *Printer) PrintLines(lines ...string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(p.out, line)
	}
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a page header
func (p *Printer) PrintHeader(title string, showBack bool) {
	p.Println(NewHeader(title, showBack).SetWidth(p.width).Render())
	p.Newline()
}

// PrintResult prints any result box
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	p.PrintResult(NewSuccessResult(title, details...))
}

// PrintError prints a failure result box with hints
func (p *Printer) PrintError(title, message string, hints ...string) {
	p.PrintResult(NewFailureResult(title, message, hints...))
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Detail) {
	p.PrintResult(NewWarningResult(title, details...))
}

// PrintFieldError prints a single validation message the way forms show it
func (p *Printer) PrintFieldError(message string) {
	p.Println(FieldErrorStyle.Render(FailureMarker + " " + message))
}
