package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName normalizes a name for case-insensitive comparison
func FoldName(s string) string {
	// Casers are stateful, so one is built per call
	return cases.Fold().String(strings.TrimSpace(s))
}

// SameName reports whether two names are equal ignoring case and surrounding space
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}
