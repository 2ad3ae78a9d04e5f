package golden

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Pattern replaces run-specific content with a named placeholder.
type Pattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Normalizer makes transcripts comparable across runs and machines.
type Normalizer struct {
	patterns []Pattern
}

// NewNormalizer creates a normalizer with the built-in patterns.
func NewNormalizer() *Normalizer {
	n := &Normalizer{}

	// Memory addresses printed by %p
	n.Add("memory_address", regexp.MustCompile(`0x[a-fA-F0-9]{8,16}`))
	// RFC 4122 identifiers, e.g. run IDs
	n.Add("uuid", regexp.MustCompile(`\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`))

	return n
}

// Add registers an additional pattern.
func (n *Normalizer) Add(name string, pattern *regexp.Regexp) {
	n.patterns = append(n.patterns, Pattern{Name: name, Pattern: pattern})
}

// NormalizeLine strips ANSI styling and trailing whitespace and replaces
// every pattern match with "<name>".
func (n *Normalizer) NormalizeLine(line string) string {
	normalized := strings.TrimRight(ansi.Strip(line), " \t\r")
	for _, p := range n.patterns {
		normalized = p.Pattern.ReplaceAllString(normalized, "<"+p.Name+">")
	}
	return normalized
}

// Normalize normalizes every line of a transcript and joins them.
// Trailing newlines are removed from the whole transcript.
func (n *Normalizer) Normalize(lines []string) string {
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = n.NormalizeLine(line)
	}
	return strings.TrimRight(strings.Join(normalized, "\n"), "\n")
}
