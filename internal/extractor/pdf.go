package extractor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor infers a title and heading outline from a PDF's text
// layer. It tries the Go library first, then falls back to pdftotext
// if available. Pages without extractable text contribute nothing.
type PDFExtractor struct {
	FallbackPdftotext bool
}

func (e *PDFExtractor) Extract(r io.Reader, filename string) (*outline.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "pdfoutline-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := extractPages(tmpPath)
	if err != nil && e.FallbackPdftotext {
		pages, err = pdftotextPages(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	doc := &outline.Document{Outline: outline.Build(pages)}
	if len(pages) > 0 {
		doc.Title = outline.SelectTitle(strings.Split(pages[0].Text, "\n"))
	}
	return doc, nil
}

// extractPages reads the text layer of every page in physical order.
// A page with a null object or a failed text extraction is kept as an
// empty page so page numbering stays aligned with the source.
func extractPages(path string) ([]outline.Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]outline.Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, outline.Page{Number: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, outline.Page{Number: i})
			continue
		}
		pages = append(pages, outline.Page{Number: i, Text: text})
	}
	return pages, nil
}

// pdftotextPages shells out to pdftotext, which separates pages with
// form feeds.
func pdftotextPages(path string) ([]outline.Page, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	chunks := strings.Split(string(out), "\f")
	pages := make([]outline.Page, 0, len(chunks))
	for i, chunk := range chunks {
		pages = append(pages, outline.Page{Number: i + 1, Text: chunk})
	}
	return pages, nil
}
