package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// TitleKey returns the comparison key for a user-facing title: surrounding
// whitespace removed and letters case-folded. Two titles match for lookup
// purposes when their keys are equal.
func TitleKey(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	// Casers carry state and are not shared.
	return cases.Fold().String(value)
}

// SameTitle reports whether a and b are equal after trimming and case folding.
func SameTitle(a, b string) bool {
	return TitleKey(a) == TitleKey(b)
}
