package outline

import (
	"regexp"
	"strings"
)

// maxTitleCandidates bounds how far down the first page we look before
// giving up; lines beyond that are body text, not titles.
const maxTitleCandidates = 15

// titleSkipWords are substrings (case-insensitive) that disqualify a
// line from being the title: boilerplate, metadata, URLs.
var titleSkipWords = []string{
	"copyright", "version", "page", "©", "date", "www", "http",
}

var numberedPrefix = regexp.MustCompile(`^\d+\.`)

// SelectTitle picks the best title candidate from the raw lines of a
// document's first page. It returns the first line that is between 15
// and 150 characters, has at least three words, carries no metadata
// markers, is not heading-shaped ("1. ..."), and is not a table of
// contents label. A non-empty result has two trailing spaces appended,
// which downstream consumers rely on. No qualifying line yields "".
func SelectTitle(firstPageLines []string) string {
	var candidates []string
	for _, raw := range firstPageLines {
		line := Normalize(raw)
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
		if len(candidates) == maxTitleCandidates {
			break
		}
	}

	for _, line := range candidates {
		if len(line) < 15 || len(line) > 150 {
			continue
		}
		if len(strings.Fields(line)) < 3 {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, titleSkipWords) {
			continue
		}
		if numberedPrefix.MatchString(line) {
			continue
		}
		if strings.HasPrefix(lower, "table of") {
			continue
		}
		return line + "  "
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
