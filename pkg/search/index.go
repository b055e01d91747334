package search

import (
	"slices"
	"strings"

	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/suffix"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index holds lookup structures over a fixed, ordered entry list.
// Positions stored in it are indexes into that list, so sorting a set of
// positions restores corpus order. It is read-only once built.
type Index struct {
	entries  []dictionary.WordPair
	basque   *patricia.Trie   // lowercased basque / basque synonyms -> []int
	tokens   map[string][]int // spanish token -> positions
	suffixes map[suffix.Suffix][]int
}

// NewIndex builds the index. Suffix position lists are precomputed for
// every catalog entry; other suffixes fall back to a scan.
func NewIndex(entries []dictionary.WordPair, catalog *suffix.Catalog) *Index {
	idx := &Index{
		entries:  entries,
		basque:   patricia.NewTrie(),
		tokens:   make(map[string][]int),
		suffixes: make(map[suffix.Suffix][]int),
	}

	for pos, w := range entries {
		idx.insertBasque(strings.ToLower(w.Basque), pos)
		idx.insertBasque(strings.ToLower(w.SynonymsBasque), pos)

		seen := make(map[string]struct{})
		for _, text := range []string{w.Spanish, w.SynonymsSpanish} {
			for _, tok := range Tokenize(text) {
				if _, dup := seen[tok]; dup {
					continue
				}
				seen[tok] = struct{}{}
				idx.tokens[tok] = append(idx.tokens[tok], pos)
			}
		}
	}

	if catalog != nil {
		for _, d := range catalog.All() {
			idx.suffixes[d.Value] = idx.scanSuffix(d.Value)
		}
	}

	log.Debugf("Index built: entries=[%d] tokens=[%d] suffixes=[%d]",
		len(entries), len(idx.tokens), len(idx.suffixes))
	return idx
}

func (idx *Index) insertBasque(key string, pos int) {
	if key == "" {
		return
	}
	prefix := patricia.Prefix(key)
	if item := idx.basque.Get(prefix); item != nil {
		positions := item.([]int)
		if positions[len(positions)-1] != pos {
			idx.basque.Set(prefix, append(positions, pos))
		}
		return
	}
	idx.basque.Insert(prefix, []int{pos})
}

func (idx *Index) scanSuffix(s suffix.Suffix) []int {
	var positions []int
	for pos, w := range idx.entries {
		if MatchesSuffix(w, s) {
			positions = append(positions, pos)
		}
	}
	return positions
}

// suffixPositions returns the ascending positions matching s.
func (idx *Index) suffixPositions(s suffix.Suffix) []int {
	if positions, ok := idx.suffixes[s]; ok {
		return positions
	}
	return idx.scanSuffix(s)
}

// termPositions returns the ascending, distinct positions matching term.
func (idx *Index) termPositions(term string) []int {
	lowerTerm := strings.ToLower(term)
	var positions []int

	err := idx.basque.VisitSubtree(patricia.Prefix(lowerTerm), func(p patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
	}
	positions = append(positions, idx.tokens[lowerTerm]...)

	slices.Sort(positions)
	return slices.Compact(positions)
}

// Search answers q with the same result Filter gives over the entries.
func (idx *Index) Search(q Query) []dictionary.WordPair {
	results := make([]dictionary.WordPair, 0)
	if !q.Active() {
		return results
	}

	var positions []int
	switch {
	case q.suffixActive() && q.Term != "":
		positions = intersectSorted(idx.suffixPositions(q.Suffix), idx.termPositions(q.Term))
	case q.suffixActive():
		positions = idx.suffixPositions(q.Suffix)
	default:
		positions = idx.termPositions(q.Term)
	}

	for _, pos := range positions {
		results = append(results, idx.entries[pos])
	}
	return results
}

// Stats returns the index sizes.
func (idx *Index) Stats() map[string]int {
	basqueKeys := 0
	_ = idx.basque.Visit(func(patricia.Prefix, patricia.Item) error {
		basqueKeys++
		return nil
	})
	return map[string]int{
		"indexedEntries": len(idx.entries),
		"basqueKeys":     basqueKeys,
		"spanishTokens":  len(idx.tokens),
		"cachedSuffixes": len(idx.suffixes),
	}
}

func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
