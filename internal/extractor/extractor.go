package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Extractor produces an outline Document from raw document bytes.
type Extractor interface {
	Extract(r io.Reader, filename string) (*outline.Document, error)
}

// Options tunes format-specific behavior.
type Options struct {
	// PDFFallbackPdftotext shells out to pdftotext when the Go
	// library cannot open a document.
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// levelFor maps a structural heading depth (1-based) onto an outline
// level. Depths beyond 3 have no outline representation.
func levelFor(depth int) (outline.Level, bool) {
	switch depth {
	case 1:
		return outline.H1, true
	case 2:
		return outline.H2, true
	case 3:
		return outline.H3, true
	}
	return "", false
}
