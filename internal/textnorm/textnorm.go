// Package textnorm canonicalizes labels read from data files and questions.
package textnorm

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the NFC, case-folded form of s for case-insensitive
// comparison.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Equal reports whether a and b are equal ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
