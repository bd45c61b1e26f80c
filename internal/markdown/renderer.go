// Package markdown renders note content to HTML with a fixed set of extensions.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "friendly"

// Document is the result of rendering one note.
type Document struct {
	// HTML is the rendered body fragment.
	HTML string
	// TOC is a nested list linking to every heading, empty when there are none.
	TOC     string
	Summary Summary
}

// Renderer converts Markdown to HTML. The extension set is fixed: fenced
// code (CommonMark), syntax highlighting, typographic punctuation,
// footnotes and heading ids with a table of contents. Raw HTML in the
// source is omitted from the output.
//
// A Renderer holds no per-document state and is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a Renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Typographer,
				extension.Footnote,
				highlighting.NewHighlighting(
					highlighting.WithStyle(HighlightStyle),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render parses source once and produces the body, table of contents and summary.
func (r *Renderer) Render(source []byte) (*Document, error) {
	doc := r.md.Parser().Parse(text.NewReader(source))

	out := &Document{Summary: ExtractSummary(doc, source)}

	var body bytes.Buffer
	if err := r.md.Renderer().Render(&body, source, doc); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	out.HTML = body.String()

	tree, err := toc.Inspect(doc, source)
	if err != nil {
		return nil, fmt.Errorf("inspect headings: %w", err)
	}
	if list := toc.RenderList(tree); list != nil {
		var nav bytes.Buffer
		if err := r.md.Renderer().Render(&nav, source, list); err != nil {
			return nil, fmt.Errorf("render table of contents: %w", err)
		}
		out.TOC = nav.String()
	}

	return out, nil
}
