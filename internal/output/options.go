package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider.
// If the provider is nil or not available, the printer falls back to plain text.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter configures the printer to write to the specified writer.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode configures the printer to operate in a specific output mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// TestMode configures the printer for deterministic output.
// Transcripts captured from demonstrations always use it.
func TestMode() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.forcePlain = true
	}
}
