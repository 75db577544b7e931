package extractor

import (
	"strings"
	"testing"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

func TestHTMLExtractor_TitleTagAndHeadings(t *testing.T) {
	input := `<html>
<head><title>User Manual</title></head>
<body>
<nav><h2>Navigation</h2></nav>
<h1>Getting Started</h1>
<p>Body text.</p>
<h2>First Steps</h2>
<h3>Checking  the   Install</h3>
<h4>Ignored Depth</h4>
</body>
</html>`
	e := &HTMLExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "manual.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "User Manual  " {
		t.Errorf("title = %q, want %q", doc.Title, "User Manual  ")
	}

	want := []outline.Heading{
		{Level: outline.H1, Text: "Getting Started", Page: 1},
		{Level: outline.H2, Text: "First Steps", Page: 1},
		{Level: outline.H3, Text: "Checking the Install", Page: 1},
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

func TestHTMLExtractor_FirstH1AsTitleFallback(t *testing.T) {
	input := `<html><body><h1>Release Notes</h1></body></html>`
	e := &HTMLExtractor{}
	doc, err := e.Extract(strings.NewReader(input), "notes.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Release Notes  " {
		t.Errorf("title = %q, want %q", doc.Title, "Release Notes  ")
	}
}

func TestHTMLExtractor_NoHeadings(t *testing.T) {
	e := &HTMLExtractor{}
	doc, err := e.Extract(strings.NewReader("<html><body><p>hi</p></body></html>"), "empty.html")
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

func TestForFile_Registry(t *testing.T) {
	cases := map[string]bool{
		"a.pdf":      true,
		"b.md":       true,
		"c.markdown": true,
		"d.html":     true,
		"e.htm":      true,
		"f.docx":     true,
		"g.csv":      false,
		"h.txt":      false,
		"noext":      false,
	}
	for name, ok := range cases {
		if got := IsSupportedExtension(name); got != ok {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", name, got, ok)
		}
		_, err := ForFile(name, Options{})
		if ok && err != nil {
			t.Errorf("ForFile(%q): unexpected error %v", name, err)
		}
		if !ok && err == nil {
			t.Errorf("ForFile(%q): expected error", name)
		}
	}
}
