// Package outline infers a document title and a hierarchical heading
// outline from plain page text, using only textual patterns. It knows
// nothing about fonts, layout or embedded metadata.
package outline

// Level is the structural depth of a heading, H1 being the shallowest.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// Heading is one entry in a document outline. Page is the 1-based
// physical page the line was found on.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Page is the extracted text of one physical page. Text may be empty
// when the page has no extractable text layer.
type Page struct {
	Number int
	Text   string
}

// Document is the per-document output record.
type Document struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}
