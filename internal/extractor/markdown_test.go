package extractor

import (
	"strings"
	"testing"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

func TestMarkdownExtractor_HeadingLevels(t *testing.T) {
	input := `# Installation Guide

Some intro text.

## Requirements

More text.

### Disk Space

#### Too Deep To Matter

## Setup
`
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "guide.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Installation Guide  " {
		t.Errorf("title = %q, want %q", doc.Title, "Installation Guide  ")
	}

	want := []outline.Heading{
		{Level: outline.H1, Text: "Installation Guide", Page: 1},
		{Level: outline.H2, Text: "Requirements", Page: 1},
		{Level: outline.H3, Text: "Disk Space", Page: 1},
		{Level: outline.H2, Text: "Setup", Page: 1},
	}
	if len(doc.Outline) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(doc.Outline), len(want), doc.Outline)
	}
	for i, w := range want {
		if doc.Outline[i] != w {
			t.Errorf("entry[%d] = %+v, want %+v", i, doc.Outline[i], w)
		}
	}
}

func TestMarkdownExtractor_NoHeadings(t *testing.T) {
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader("just a paragraph\n\nand another"), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "" {
		t.Errorf("title = %q, want empty", doc.Title)
	}
	if len(doc.Outline) != 0 {
		t.Errorf("got %d entries, want 0", len(doc.Outline))
	}
}

func TestMarkdownExtractor_InlineFormattingInHeadings(t *testing.T) {
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader("## The *Important* Part"), "fmt.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Outline) != 1 {
		t.Fatalf("got %d entries, want 1", len(doc.Outline))
	}
	if doc.Outline[0].Text != "The Important Part" {
		t.Errorf("text = %q, want %q", doc.Outline[0].Text, "The Important Part")
	}
}

func TestMarkdownExtractor_DuplicateHeadingsCollapse(t *testing.T) {
	input := "## Usage\n\ntext\n\n## Usage\n"
	e := &MarkdownExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "dup.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Outline) != 1 {
		t.Errorf("got %d entries, want 1 after dedup: %+v", len(doc.Outline), doc.Outline)
	}
}
