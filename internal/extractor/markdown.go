package extractor

import (
	"bytes"
	"io"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor builds an outline from Markdown heading structure
// using goldmark. Markdown has no pages, so every entry reports page 1.
// The first level-1 heading becomes the title.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (*outline.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var entries []outline.Heading
	title := ""
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		txt := outline.Normalize(inlineText(heading, src))
		if txt == "" {
			return ast.WalkContinue, nil
		}
		if heading.Level == 1 && title == "" {
			title = txt + "  "
		}
		if level, ok := levelFor(heading.Level); ok {
			entries = append(entries, outline.Heading{Level: level, Text: txt, Page: 1})
		}
		return ast.WalkContinue, nil
	})

	return &outline.Document{Title: title, Outline: outline.Dedupe(entries)}, nil
}

// inlineText collects the text content of a goldmark inline subtree.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}
