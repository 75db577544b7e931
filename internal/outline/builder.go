package outline

import "strings"

// Build runs the classifier over every line of every page, in page then
// line order, and returns the deduplicated heading sequence. Pages with
// no text contribute nothing; a document with no headings yields an
// empty (non-nil) outline. Build never fails.
func Build(pages []Page) []Heading {
	var entries []Heading
	for _, p := range pages {
		if p.Text == "" {
			continue
		}
		for _, raw := range strings.Split(p.Text, "\n") {
			line := Normalize(raw)
			if len(line) < 3 {
				continue
			}
			if h, ok := Classify(raw, p.Number); ok {
				entries = append(entries, h)
			}
		}
	}
	return Dedupe(entries)
}

// Dedupe keeps the first occurrence of each distinct (level, text, page)
// triple, preserving original order.
func Dedupe(entries []Heading) []Heading {
	seen := make(map[Heading]bool, len(entries))
	unique := make([]Heading, 0, len(entries))
	for _, h := range entries {
		if seen[h] {
			continue
		}
		seen[h] = true
		unique = append(unique, h)
	}
	return unique
}
