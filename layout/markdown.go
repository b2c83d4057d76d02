package layout

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RenderMarkdown appends a markdown document to the engine's line sequence
// using goldmark's AST. Headings scale and embolden, list items get a
// bullet, paragraphs wrap to the measured column width.
func (e *Engine) RenderMarkdown(source string) error {
	md := goldmark.New()
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))
	e.walkMarkdown(doc, src)
	return nil
}

func (e *Engine) walkMarkdown(node ast.Node, source []byte) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			e.renderHeading(string(n.Text(source)), n.Level)
		case *ast.Paragraph:
			e.renderParagraph(markdownParagraphText(n, source))
		case *ast.List:
			e.walkMarkdown(n, source)
		case *ast.ListItem:
			e.renderListItem(markdownListItemText(n, source))
		case *ast.FencedCodeBlock:
			for i := 0; i < n.Lines().Len(); i++ {
				seg := n.Lines().At(i)
				e.emit(strings.TrimRight(string(seg.Value(source)), "\n"), 0, false)
			}
			e.emit("", 0, false)
		}
	}
}

func markdownParagraphText(n *ast.Paragraph, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(child.Text(source))
	}
	return sb.String()
}

func markdownListItemText(n *ast.ListItem, source []byte) string {
	child := n.FirstChild()
	if child == nil {
		return ""
	}
	if p, ok := child.(*ast.Paragraph); ok {
		return markdownParagraphText(p, source)
	}
	return string(child.Text(source))
}
