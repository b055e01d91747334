package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares user input for a search: surrounding whitespace is
// dropped and the rest is put in NFC, so a term typed with combining
// accents matches the composed forms stored in the corpus.
func Normalize(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}
