package markdown

import (
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// Summary is the page title and description derived from a document.
type Summary struct {
	Title       string
	Description string
}

// ExtractSummary scans the top-level nodes of doc in order. The first
// level-1 heading with text becomes the title and the first paragraph with
// text becomes the description; scanning stops once both are set.
func ExtractSummary(doc ast.Node, source []byte) Summary {
	var s Summary
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if s.Title == "" && node.Level == 1 {
				s.Title = plainText(node, source)
			}
		case *ast.Paragraph:
			if s.Description == "" {
				s.Description = plainText(node, source)
			}
		}
		if s.Title != "" && s.Description != "" {
			break
		}
	}
	return s
}

// plainText returns the text under n with markup dropped, entities decoded
// and runs of whitespace collapsed to single spaces.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := c.(type) {
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			v := node.Segment.Value(source)
			if !node.IsRaw() {
				v = util.UnescapePunctuations(v)
				v = util.ResolveNumericReferences(v)
				v = util.ResolveEntityNames(v)
			}
			b.Write(v)
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			if node.IsCode() {
				b.WriteString(html.UnescapeString(string(node.Value)))
			} else {
				b.Write(node.Value)
			}
		case *ast.AutoLink:
			b.Write(node.Label(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
