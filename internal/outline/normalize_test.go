package outline

import "testing"

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	cases := map[string]string{
		"":                      "",
		"   ":                   "",
		"hello":                 "hello",
		"  hello  world  ":      "hello world",
		"tabs\tand\nnewlines":   "tabs and newlines",
		"a\r\n b\t\tc":          "a b c",
		"1.  Introduction\n":    "1. Introduction",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "  x  y  ", "already normal", "\t\n", "a  b\nc"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
