package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// Exclusion patterns, matched against the lowercased line. Leader dots
// are the one substring match (TOC entries carry them anywhere); the
// rest anchor at the start of the line.
var (
	reAllDigits  = regexp.MustCompile(`^\d+$`)
	rePageNumber = regexp.MustCompile(`^page\s+\d+`)
	reDatePrefix = regexp.MustCompile(`^\d{1,2}\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)
	reLeaderDots = regexp.MustCompile(`\.{3,}`)
)

// Level-assignment patterns, matched against the lowercased line.
var (
	reH1Numbered = regexp.MustCompile(`^\d+\.\s+.+`)
	reH1Chapter  = regexp.MustCompile(`^chapter\s+\d+\s*:?\s*.+`)
	reH1Part     = regexp.MustCompile(`^part\s+[ivx]+\s*:?\s*.+`)
	reH2Numbered = regexp.MustCompile(`^\d+\.\d+\s+.+`)
	reH3Numbered = regexp.MustCompile(`^\d+\.\d+\.\d+\s+.+`)
)

// h1Vocabulary is the set of section names that are headings on their
// own, whatever their capitalization.
var h1Vocabulary = map[string]bool{
	"introduction":      true,
	"overview":          true,
	"background":        true,
	"summary":           true,
	"conclusion":        true,
	"references":        true,
	"bibliography":      true,
	"acknowledgements":  true,
	"acknowledgments":   true,
	"appendix":          true,
	"index":             true,
	"glossary":          true,
	"abstract":          true,
	"revision history":  true,
	"table of contents": true,
}

// Classify decides whether a line is a heading and at what level. The
// page number is carried into the result unchanged; it plays no part
// in the decision. The rules are ordered and the first match wins, so
// "1. OVERVIEW" is an H1 numbered heading, never re-tested against the
// all-caps rule. Lines that look structural but aren't (page numbers,
// dates, URLs, copyright lines, TOC entries with leader dots) are
// rejected up front.
func Classify(raw string, page int) (Heading, bool) {
	line := Normalize(raw)
	if len(line) < 3 || len(line) > 200 {
		return Heading{}, false
	}

	lower := strings.ToLower(line)
	if reAllDigits.MatchString(lower) ||
		rePageNumber.MatchString(lower) ||
		strings.HasPrefix(lower, "©") ||
		strings.HasPrefix(lower, "www.") ||
		strings.HasPrefix(lower, "http") ||
		reDatePrefix.MatchString(lower) ||
		reLeaderDots.MatchString(lower) {
		return Heading{}, false
	}

	// Numbered or named top-level sections: "1. Introduction",
	// "Chapter 2: Methods", "Part IV: Results".
	if reH1Numbered.MatchString(lower) || reH1Chapter.MatchString(lower) || reH1Part.MatchString(lower) {
		return Heading{Level: H1, Text: line, Page: page}, true
	}

	if h1Vocabulary[lower] {
		return Heading{Level: H1, Text: line, Page: page}, true
	}

	if reH2Numbered.MatchString(lower) {
		return Heading{Level: H2, Text: line, Page: page}, true
	}

	if reH3Numbered.MatchString(lower) {
		return Heading{Level: H3, Text: line, Page: page}, true
	}

	// Short all-caps lines. "No lowercase letters" is the test, so a
	// line with no letters at all can qualify if nothing above caught it.
	if !strings.ContainsFunc(line, unicode.IsLower) &&
		len(line) >= 5 && len(line) <= 60 &&
		len(strings.Fields(line)) <= 8 {
		return Heading{Level: H1, Text: line, Page: page}, true
	}

	// Colon-terminated labels ("Executive Summary:").
	if strings.HasSuffix(line, ":") &&
		len(line) >= 10 && len(line) <= 80 &&
		len(strings.Fields(line)) <= 10 {
		text := strings.TrimSpace(strings.TrimSuffix(line, ":"))
		return Heading{Level: H2, Text: text, Page: page}, true
	}

	return Heading{}, false
}
