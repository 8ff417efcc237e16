package textutil

import "testing"

func TestSameTitle(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "Heat", "Heat", true},
		{"case differs", "The Matrix", "the MATRIX", true},
		{"surrounding whitespace", "  Alien\t", "alien", true},
		{"inner whitespace matters", "Blade Runner", "BladeRunner", false},
		{"different titles", "Alien", "Aliens", false},
		{"both empty", "", "   ", true},
		{"non-ascii fold", "STRASSE", "strasse", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameTitle(tt.a, tt.b); got != tt.want {
				t.Fatalf("SameTitle(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTitleKeyEmpty(t *testing.T) {
	if got := TitleKey(" \t "); got != "" {
		t.Fatalf("TitleKey(blank) = %q, want empty", got)
	}
}
