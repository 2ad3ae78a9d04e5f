// Package output provides the console output system for patternlab.
// Demonstrations and reports write through a Printer; styling is injected
// through a StyleProvider so plain and styled output share one code path.
package output

// StyleProvider supplies text styles by semantic type.
// The output package depends only on this interface, not on a concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider can render styles.
	// The printer falls back to plain text otherwise.
	IsAvailable() bool
}

// TextStyle renders text with styling. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text string) string
}

// Mode defines the output modes a printer can operate in.
type Mode int

const (
	// ModeAuto uses the style provider when one is available
	ModeAuto Mode = iota

	// ModeStyled forces styled output
	ModeStyled

	// ModePlain forces plain text output with semantic prefixes
	ModePlain
)

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticHeading represents a section heading.
	SemanticHeading SemanticType = "heading"
	// SemanticMuted represents secondary text such as captured transcripts.
	SemanticMuted SemanticType = "muted"
)
