package creational

import (
	"fmt"
	"strings"

	"patternlab/internal/output"
)

// Header renders the title of a document. Header and Body are the
// products of one document family.
type Header interface {
	Render(title string) string
}

// Body renders the paragraphs of a document.
type Body interface {
	Render(paragraphs []string) string
}

// DocumentFactory creates matching headers and bodies.
type DocumentFactory interface {
	CreateHeader() Header
	CreateBody() Body
	Name() string
}

type htmlHeader struct{}

func (htmlHeader) Render(title string) string { return "<h1>" + title + "</h1>" }

type htmlBody struct{}

func (htmlBody) Render(paragraphs []string) string {
	return "<p>" + strings.Join(paragraphs, "</p><p>") + "</p>"
}

type markdownHeader struct{}

func (markdownHeader) Render(title string) string { return "# " + title }

type markdownBody struct{}

func (markdownBody) Render(paragraphs []string) string {
	return strings.Join(paragraphs, " / ")
}

// HTMLFactory creates the HTML document family.
type HTMLFactory struct{}

func (HTMLFactory) CreateHeader() Header { return htmlHeader{} }
func (HTMLFactory) CreateBody() Body     { return htmlBody{} }
func (HTMLFactory) Name() string         { return "html" }

// MarkdownFactory creates the Markdown document family.
type MarkdownFactory struct{}

func (MarkdownFactory) CreateHeader() Header { return markdownHeader{} }
func (MarkdownFactory) CreateBody() Body     { return markdownBody{} }
func (MarkdownFactory) Name() string         { return "markdown" }

// RenderDocument uses only the factory interface, so it never mixes families.
func RenderDocument(factory DocumentFactory, title string, paragraphs []string) string {
	return fmt.Sprintf("%s %s", factory.CreateHeader().Render(title), factory.CreateBody().Render(paragraphs))
}

func demoAbstractFactory(p *output.Printer) error {
	paragraphs := []string{"Invoice #1001", "Total due: $120.00"}

	for _, factory := range []DocumentFactory{HTMLFactory{}, MarkdownFactory{}} {
		p.Linef("%s: %s", factory.Name(), RenderDocument(factory, "Statement", paragraphs))
	}
	return nil
}
