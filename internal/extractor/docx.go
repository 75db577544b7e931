package extractor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXExtractor builds an outline from Heading1-Heading3 paragraph
// styles. DOCX page breaks are a rendering concern the format does not
// expose reliably, so every entry reports page 1. The first Heading1
// becomes the title.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Extract(r io.Reader, filename string) (*outline.Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "pdfoutline-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var entries []outline.Heading
	title := ""
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		depth := docxHeadingDepth(para)
		if depth == 0 {
			continue
		}
		txt := outline.Normalize(docxParagraphText(para))
		if txt == "" {
			continue
		}
		if depth == 1 && title == "" {
			title = txt + "  "
		}
		if level, ok := levelFor(depth); ok {
			entries = append(entries, outline.Heading{Level: level, Text: txt, Page: 1})
		}
	}

	return &outline.Document{Title: title, Outline: outline.Dedupe(entries)}, nil
}

func docxHeadingDepth(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	switch {
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "heading 1"):
		return 1
	case strings.EqualFold(style, "Heading2") || strings.EqualFold(style, "heading 2"):
		return 2
	case strings.EqualFold(style, "Heading3") || strings.EqualFold(style, "heading 3"):
		return 3
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}
