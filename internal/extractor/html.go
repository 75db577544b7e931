package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"golang.org/x/net/html"
)

// HTMLExtractor builds an outline from h1-h3 tags. The <title> tag
// wins as the document title, falling back to the first h1. HTML has
// no pages, so every entry reports page 1.
type HTMLExtractor struct{}

func (e *HTMLExtractor) Extract(r io.Reader, filename string) (*outline.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := outline.Normalize(findTitle(root))

	var entries []outline.Heading
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			}
			if depth := tagDepth(n.Data); depth > 0 {
				txt := outline.Normalize(textContent(n))
				if txt != "" {
					if level, ok := levelFor(depth); ok {
						entries = append(entries, outline.Heading{Level: level, Text: txt, Page: 1})
					}
					if title == "" && depth == 1 {
						title = txt
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	if title != "" {
		title += "  "
	}
	return &outline.Document{Title: title, Outline: outline.Dedupe(entries)}, nil
}

func tagDepth(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
