package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/piforge/claudeup/internal/ui"
)

// Printer records every line the workflow would show the user.
type Printer struct {
	mu    sync.Mutex
	lines []string
}

// NewPrinter creates a recording printer.
func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) record(prefix, format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = append(p.lines, prefix+fmt.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...any) { p.record("OK ", format, args...) }
func (p *Printer) Warn(format string, args ...any)    { p.record("WARN ", format, args...) }
func (p *Printer) Error(format string, args ...any)   { p.record("ERROR ", format, args...) }
func (p *Printer) Info(format string, args ...any)    { p.record("INFO ", format, args...) }
func (p *Printer) Title(format string, args ...any)   { p.record("TITLE ", format, args...) }
func (p *Printer) Banner(text string)                 { p.record("BANNER ", "%s", text) }
func (p *Printer) Blank()                             {}

// Lines returns a copy of everything recorded so far.
func (p *Printer) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}

// Contains reports whether any recorded line contains substr.
func (p *Printer) Contains(substr string) bool {
	for _, line := range p.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

var _ ui.Printer = (*Printer)(nil)
