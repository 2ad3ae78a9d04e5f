package reporter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"patternlab/internal/output"
	"patternlab/internal/runner"
)

// Format selects a report renderer.
type Format string

const (
	// FormatText is the plain line-oriented report.
	FormatText Format = "text"
	// FormatStyled is the text report colored with a lipgloss theme.
	FormatStyled Format = "styled"
	// FormatYAML is a machine-readable YAML document.
	FormatYAML Format = "yaml"
	// FormatMarkdown is a markdown document rendered for the terminal.
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported report formats.
func Formats() []Format {
	return []Format{FormatText, FormatStyled, FormatYAML, FormatMarkdown}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Formats() {
		if f == normalized {
			return f, nil
		}
	}

	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown format %q (expected one of: %s)", name, strings.Join(names, ", "))
}

// RenderOptions carries renderer dependencies.
type RenderOptions struct {
	// Styles is used by FormatStyled. Nil falls back to plain prefixes.
	Styles output.StyleProvider
	// MarkdownStyle is a glamour standard style name ("auto", "dark", "notty", ...).
	MarkdownStyle string
	// WordWrap is the markdown wrap width; zero means 80.
	WordWrap int
}

// Render renders the report in the requested format.
func (r *Reporter) Render(report *runner.Report, format Format, opts RenderOptions) (string, error) {
	switch format {
	case FormatText, "":
		return strings.Join(r.Format(report), "\n") + "\n", nil
	case FormatStyled:
		return r.Styled(report, opts.Styles), nil
	case FormatYAML:
		data, err := r.YAML(report)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatMarkdown:
		return r.RenderMarkdown(report, opts.MarkdownStyle, opts.WordWrap)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// Styled renders the text report through a themed printer.
func (r *Reporter) Styled(report *runner.Report, styles output.StyleProvider) string {
	buffer := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buffer), output.WithStyles(styles), output.WithMode(output.ModeStyled))

	printer.Heading(Header(report))
	for _, entry := range report.Results {
		if entry.Result.Succeeded {
			printer.Success(StatusLine(entry))
		} else {
			printer.Error(StatusLine(entry))
		}
		if r.Verbose {
			for _, line := range entry.Result.Lines {
				printer.Muted(transcriptIndent + line)
			}
		}
	}

	return buffer.String()
}

type yamlReport struct {
	RunID    string       `yaml:"run_id"`
	Category string       `yaml:"category,omitempty"`
	Passed   int          `yaml:"passed"`
	Failed   int          `yaml:"failed"`
	Results  []yamlResult `yaml:"results"`
}

type yamlResult struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Status   string   `yaml:"status"`
	Kind     string   `yaml:"kind,omitempty"`
	Message  string   `yaml:"message,omitempty"`
	Output   []string `yaml:"output,omitempty"`
}

// YAML renders the report as a YAML document. Captured output is included
// only in verbose mode.
func (r *Reporter) YAML(report *runner.Report) ([]byte, error) {
	doc := yamlReport{
		RunID:   report.RunID,
		Passed:  report.PassCount(),
		Failed:  report.FailCount(),
		Results: make([]yamlResult, 0, len(report.Results)),
	}
	if report.Filtered() {
		doc.Category = report.Category.String()
	}

	for _, entry := range report.Results {
		item := yamlResult{
			Name:     entry.Name,
			Category: entry.Category.String(),
			Status:   entry.Result.Status(),
			Message:  entry.Result.Message(),
		}
		if entry.Result.Failure != nil {
			item.Kind = string(entry.Result.Failure.Kind)
		}
		if r.Verbose {
			item.Output = entry.Result.Lines
		}
		doc.Results = append(doc.Results, item)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

// Markdown returns the markdown source of the report.
func (r *Reporter) Markdown(report *runner.Report) string {
	var sb strings.Builder

	sb.WriteString("# Pattern catalog run\n\n")
	if report.Filtered() {
		fmt.Fprintf(&sb, "Category: *%s*\n\n", report.Category.Title())
	}
	fmt.Fprintf(&sb, "**%d passed, %d failed**\n\n", report.PassCount(), report.FailCount())

	if len(report.Results) > 0 {
		sb.WriteString("| Example | Category | Status | Message |\n")
		sb.WriteString("| --- | --- | --- | --- |\n")
		for _, entry := range report.Results {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
				escapeCell(entry.Name), entry.Category.Title(), entry.Result.Status(), escapeCell(entry.Result.Message()))
		}
	}

	if r.Verbose {
		for _, entry := range report.Results {
			if len(entry.Result.Lines) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "\n## %s\n\n```text\n%s\n```\n", entry.Name, strings.Join(entry.Result.Lines, "\n"))
		}
	}

	return sb.String()
}

// RenderMarkdown renders the markdown report with glamour.
func (r *Reporter) RenderMarkdown(report *runner.Report, style string, wordWrap int) (string, error) {
	if style == "" {
		style = "notty"
	}
	if wordWrap <= 0 {
		wordWrap = 80
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	if style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(r.Markdown(report))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

func escapeCell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}
