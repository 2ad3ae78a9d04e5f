package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the output handler used by demonstrations and reports.
// It renders each call according to its mode and style provider and
// writes the result to its writer.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Linef outputs formatted text followed by a newline.
func (p *Printer) Linef(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...))
}

// Println outputs text with a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text)
}

// Success outputs success text (typically green).
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text)
}

// Warning outputs warning text (typically yellow).
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text)
}

// Error outputs error text (typically red).
func (p *Printer) Error(text string) {
	p.output(SemanticError, text)
}

// Heading outputs a section heading.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text)
}

// Muted outputs secondary text.
func (p *Printer) Muted(text string) {
	p.output(SemanticMuted, text)
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

func (p *Printer) output(semantic SemanticType, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprint(p.writer, p.render(semantic, text)) // Ignore write errors for output operations
}

func (p *Printer) render(semantic SemanticType, text string) string {
	var style TextStyle
	switch {
	case p.mode == ModeStyled && p.styleProvider != nil && p.styleProvider.IsAvailable():
		style = p.styleProvider.GetStyle(string(semantic))
	case p.mode != ModePlain && p.IsStylable():
		style = p.styleProvider.GetStyle(string(semantic))
	default:
		style = NewPlainStyleProvider().GetStyle(string(semantic))
	}

	result := style.Render(text)
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}
