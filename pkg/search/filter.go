package search

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/suffix"
)

// accented letters that count as word characters in Spanish text
const spanishLetters = "ñÑáéíóúüÁÉÍÓÚÜ"

func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(spanishLetters, r)
}

// Tokenize lowercases s and splits it on every run of characters that are
// not ASCII letters, digits or Spanish accented letters.
// "La casa, grande" -> [la casa grande]
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isTokenRune(r)
	})
}

// MatchesSuffix reports whether the primary Basque form of w ends in s.
// Forms shorter than the suffix, and forms that are themselves suffixes
// (leading hyphen), never match.
func MatchesSuffix(w dictionary.WordPair, s suffix.Suffix) bool {
	primary := w.PrimaryBasque()
	if utf8.RuneCountInString(primary) < utf8.RuneCountInString(string(s)) {
		return false
	}
	if strings.HasPrefix(primary, "-") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(primary), strings.ToLower(string(s)))
}

// MatchesTerm reports whether w matches term: a prefix of the Basque form
// or Basque synonyms, or a whole word of the Spanish form or Spanish
// synonyms. Case is ignored.
func MatchesTerm(w dictionary.WordPair, term string) bool {
	lowerTerm := strings.ToLower(term)
	return matchesBasque(w, lowerTerm) || matchesSpanish(w, lowerTerm)
}

func matchesBasque(w dictionary.WordPair, lowerTerm string) bool {
	if strings.HasPrefix(strings.ToLower(w.Basque), lowerTerm) {
		return true
	}
	return w.SynonymsBasque != "" && strings.HasPrefix(strings.ToLower(w.SynonymsBasque), lowerTerm)
}

func matchesSpanish(w dictionary.WordPair, lowerTerm string) bool {
	return containsToken(w.Spanish, lowerTerm) || containsToken(w.SynonymsSpanish, lowerTerm)
}

func containsToken(text, lowerTerm string) bool {
	for _, tok := range Tokenize(text) {
		if tok == lowerTerm {
			return true
		}
	}
	return false
}

// Filter returns the entries matching q, in their original order.
// The suffix constraint is applied first, then the term.
func Filter(entries []dictionary.WordPair, q Query) []dictionary.WordPair {
	results := make([]dictionary.WordPair, 0)
	if !q.Active() {
		return results
	}

	for _, w := range entries {
		if q.suffixActive() && !MatchesSuffix(w, q.Suffix) {
			continue
		}
		if q.Term != "" && !MatchesTerm(w, q.Term) {
			continue
		}
		results = append(results, w)
	}
	return results
}
