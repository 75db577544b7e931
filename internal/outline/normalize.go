package outline

import "strings"

// Normalize collapses every run of whitespace (spaces, tabs, newlines)
// into a single space and trims the ends. Idempotent; empty in, empty out.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
