package search

import (
	"fmt"
	"testing"

	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/suffix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinCorpus(t testing.TB) *dictionary.Corpus {
	t.Helper()
	corpus, err := dictionary.NewLoader("eu", true, nil).Load()
	require.NoError(t, err)
	return corpus
}

func TestIndexMatchesFilter(t *testing.T) {
	corpus := builtinCorpus(t)
	cat := suffix.Default()
	entries := corpus.Entries()
	idx := NewIndex(entries, cat)

	terms := []string{
		"", "e", "eder", "EDER", "etxe", "casa", "Casa", "compañero", "análisis",
		"i", "ik", "ikasi", "aprender", "de", "z", "ñ", "Ñabardura", "-", "-ta",
		"zzz", "la casa", " ", "u", "ur", "sufijo", "b",
	}
	suffixes := append([]suffix.Suffix{suffix.None, "xyz"}, func() []suffix.Suffix {
		var out []suffix.Suffix
		for _, d := range cat.All() {
			out = append(out, d.Value)
		}
		return out
	}()...)

	for _, mode := range []Mode{ModeGeneral, ModeSuffix} {
		for _, s := range suffixes {
			for _, term := range terms {
				q := Query{Term: term, Mode: mode, Suffix: s}
				t.Run(fmt.Sprintf("%s/%s/%q", mode, s, term), func(t *testing.T) {
					assert.Equal(t, Filter(entries, q), idx.Search(q))
				})
			}
		}
	}
}

func TestIndexSynonymSharingKey(t *testing.T) {
	entries := []dictionary.WordPair{
		{Basque: "gaztaldi", Spanish: "juventud", SynonymsBasque: "gaztaldi"},
		{Basque: "gaztaro", Spanish: "juventud"},
	}
	idx := NewIndex(entries, nil)

	got := idx.Search(Query{Term: "gazta", Mode: ModeGeneral})
	assert.Len(t, got, 2)

	got = idx.Search(Query{Term: "juventud", Mode: ModeGeneral})
	assert.Len(t, got, 2)
}

func TestIndexStats(t *testing.T) {
	entries := []dictionary.WordPair{
		{Basque: "etxe", Spanish: "casa", SynonymsBasque: "etxebizitza", SynonymsSpanish: "hogar, casa"},
		{Basque: "ur", Spanish: "agua"},
	}
	stats := NewIndex(entries, suffix.Default()).Stats()
	assert.Equal(t, 2, stats["indexedEntries"])
	assert.Equal(t, 3, stats["basqueKeys"])
	assert.Equal(t, 3, stats["spanishTokens"])
	assert.Equal(t, 20, stats["cachedSuffixes"])
}

func TestIntersectSorted(t *testing.T) {
	assert.Equal(t, []int{2, 5}, intersectSorted([]int{1, 2, 5, 7}, []int{2, 3, 5}))
	assert.Empty(t, intersectSorted(nil, []int{1}))
}

func TestTermPositionsDistinct(t *testing.T) {
	entries := []dictionary.WordPair{
		{Basque: "etxe", Spanish: "casa", SynonymsBasque: "etxebizitza"},
		{Basque: "ur", Spanish: "agua"},
		{Basque: "kasa", Spanish: "kasa"},
	}
	idx := NewIndex(entries, nil)

	assert.Equal(t, []int{0}, idx.termPositions("etxe"))
	assert.Equal(t, []int{2}, idx.termPositions("KASA"))
	assert.Empty(t, idx.termPositions("zzz"))
}
