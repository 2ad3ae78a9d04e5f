package output

// PlainTextStyle implements TextStyle for plain text output without any styling.
type PlainTextStyle struct {
	prefix string
}

// NewPlainTextStyle creates a new plain text style with an optional prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render returns the text after the style's prefix.
func (p *PlainTextStyle) Render(text string) string {
	return p.prefix + text
}

// PlainStyleProvider implements StyleProvider for plain text output.
// Semantic types are distinguished by short prefixes instead of colors,
// which keeps captured transcripts stable across terminals.
type PlainStyleProvider struct{}

// NewPlainStyleProvider creates a new plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{}
}

// GetStyle returns the plain style with the semantic prefix.
func (p *PlainStyleProvider) GetStyle(semantic string) TextStyle {
	switch SemanticType(semantic) {
	case SemanticSuccess:
		return NewPlainTextStyle("✓ ")
	case SemanticWarning:
		return NewPlainTextStyle("⚠ ")
	case SemanticError:
		return NewPlainTextStyle("✗ ")
	case SemanticHeading:
		return NewPlainTextStyle("== ")
	default:
		return NewPlainTextStyle("")
	}
}

// IsAvailable always returns true.
func (p *PlainStyleProvider) IsAvailable() bool {
	return true
}
