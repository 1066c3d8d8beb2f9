package charset

import (
	"strings"
	"testing"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		in                        string
		lower, upper, digit, punc bool
	}{
		{"", false, false, false, false},
		{"abc", true, false, false, false},
		{"ABC", false, true, false, false},
		{"123", false, false, true, false},
		{"-", false, false, false, true},
		{"~", false, false, false, true},
		{"aB3!", true, true, true, true},
		{"[]{}|", false, false, false, false},
		{"ÄÖÜß", false, false, false, false},
	}

	for _, tt := range tests {
		if got := HasLower(tt.in); got != tt.lower {
			t.Errorf("HasLower(%q) = %v, want %v", tt.in, got, tt.lower)
		}
		if got := HasUpper(tt.in); got != tt.upper {
			t.Errorf("HasUpper(%q) = %v, want %v", tt.in, got, tt.upper)
		}
		if got := HasDigit(tt.in); got != tt.digit {
			t.Errorf("HasDigit(%q) = %v, want %v", tt.in, got, tt.digit)
		}
		if got := HasPunct(tt.in); got != tt.punc {
			t.Errorf("HasPunct(%q) = %v, want %v", tt.in, got, tt.punc)
		}
	}
}

func TestAllIsUnionOfClasses(t *testing.T) {
	if len(All) != len(Lowercase)+len(Uppercase)+len(Digits)+len(Punctuation) {
		t.Fatalf("All has %d characters, want sum of classes", len(All))
	}
	for _, class := range Classes {
		if !strings.Contains(All, class) {
			t.Errorf("All missing class %q", class)
		}
	}
}

func TestPunctuationHasNoDuplicates(t *testing.T) {
	seen := make(map[rune]bool)
	for _, r := range Punctuation {
		if seen[r] {
			t.Errorf("duplicate punctuation %q", r)
		}
		seen[r] = true
	}
}
