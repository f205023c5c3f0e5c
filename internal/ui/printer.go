// Package ui renders user-facing status output. Commands talk to the
// Printer interface so tests can capture plain text instead of parsing
// ANSI escape codes.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer is the presentation sink for the provisioning workflow.
type Printer interface {
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Info(format string, args ...any)
	Title(format string, args ...any)
	Banner(text string)
	Blank()
}

// ConsolePrinter writes styled status lines to a writer. Color degrades
// automatically when the writer is not a terminal.
type ConsolePrinter struct {
	out io.Writer

	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	info  lipgloss.Style
	title lipgloss.Style
	box   lipgloss.Style
}

// NewConsolePrinter creates a printer bound to w.
func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	r := lipgloss.NewRenderer(w)
	return &ConsolePrinter{
		out:   w,
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		info:  r.NewStyle().Foreground(lipgloss.Color("6")),
		title: r.NewStyle().Bold(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 3),
	}
}

// Success prints a green [OK] line.
func (p *ConsolePrinter) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.ok.Render("[OK]"), fmt.Sprintf(format, args...))
}

// Warn prints a yellow [!!] line.
func (p *ConsolePrinter) Warn(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.warn.Render("[!!]"), fmt.Sprintf(format, args...))
}

// Error prints a red [XX] line.
func (p *ConsolePrinter) Error(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.fail.Render("[XX]"), fmt.Sprintf(format, args...))
}

// Info prints an indented detail line.
func (p *ConsolePrinter) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.info.Render("  ->"), fmt.Sprintf(format, args...))
}

// Title prints a bold section heading.
func (p *ConsolePrinter) Title(format string, args ...any) {
	fmt.Fprintf(p.out, "\n%s\n", p.title.Render(fmt.Sprintf(format, args...)))
}

// Blank prints an empty line.
func (p *ConsolePrinter) Blank() {
	fmt.Fprintln(p.out)
}

// Banner prints a boxed headline.
func (p *ConsolePrinter) Banner(text string) {
	fmt.Fprintln(p.out, p.box.Render(text))
}

// Ensure ConsolePrinter implements Printer.
var _ Printer = (*ConsolePrinter)(nil)
