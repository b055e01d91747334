package dictionary

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var basque = language.Make("eu")

func TestBuildCorpusDeduplicates(t *testing.T) {
	words := []WordPair{
		{ID: "w1", Basque: "etxe", Spanish: "casa", SynonymsSpanish: "hogar"},
		{ID: "w2", Basque: "ur", Spanish: "agua"},
		{ID: "w3", Basque: "etxe", Spanish: "casa", SynonymsSpanish: "morada"},
	}
	verbs := []WordPair{
		{ID: "v1", Basque: "etxe", Spanish: "casa"},
		{ID: "v2", Basque: "etxe", Spanish: "edificio"},
		{ID: "v3", Basque: "ur", Spanish: "agua"},
	}

	corpus := BuildCorpus(basque, words, verbs)

	require.Equal(t, 3, corpus.Len())
	count := 0
	for _, w := range corpus.Entries() {
		if w.Basque == "etxe" && w.Spanish == "casa" {
			count++
			// first occurrence wins, later synonyms are dropped
			assert.Equal(t, "w1", w.ID)
			assert.Equal(t, "hogar", w.SynonymsSpanish)
		}
	}
	assert.Equal(t, 1, count)

	stats := corpus.Stats()
	assert.Equal(t, 6, stats["inputWords"])
	assert.Equal(t, 3, stats["droppedDuplicates"])
}

func TestBuildCorpusDedupIsCaseSensitive(t *testing.T) {
	corpus := BuildCorpus(basque,
		[]WordPair{{ID: "a", Basque: "Etxe", Spanish: "casa"}},
		[]WordPair{{ID: "b", Basque: "etxe", Spanish: "casa"}},
	)
	assert.Equal(t, 2, corpus.Len())
}

func TestBuildCorpusSortOrder(t *testing.T) {
	words := []WordPair{
		{ID: "1", Basque: "zoriontasun", Spanish: "felicidad"},
		{ID: "2", Basque: "Ñabardura", Spanish: "matiz"},
		{ID: "3", Basque: "ahate", Spanish: "pato"},
		{ID: "4", Basque: "nahi", Spanish: "deseo"},
		{ID: "5", Basque: "Etxe", Spanish: "casa"},
		{ID: "6", Basque: "ederra", Spanish: "bonito"},
		{ID: "7", Basque: "-tasun", Spanish: "sufijo"},
		{ID: "8", Basque: "álamo", Spanish: "álamo"},
	}

	corpus := BuildCorpus(basque, words)
	entries := corpus.Entries()
	require.Len(t, entries, len(words))

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, corpus.Compare(entries[i-1].Basque, entries[i].Basque), 0,
			"%q should not sort after %q", entries[i-1].Basque, entries[i].Basque)
	}

	// accents and case do not push words to the end as byte order would
	pos := func(b string) int {
		for i, w := range entries {
			if w.Basque == b {
				return i
			}
		}
		return -1
	}
	assert.Less(t, pos("álamo"), pos("ederra"))
	assert.Less(t, pos("Etxe"), pos("nahi"))
	assert.Less(t, pos("Etxe"), pos("Ñabardura"))
	assert.Less(t, pos("Ñabardura"), pos("zoriontasun"))
}

func TestBuildCorpusStableForEqualKeys(t *testing.T) {
	corpus := BuildCorpus(basque, []WordPair{
		{ID: "1", Basque: "egin", Spanish: "hacer"},
		{ID: "2", Basque: "egin", Spanish: "cumplir"},
		{ID: "3", Basque: "egin", Spanish: "tener"},
	})
	ids := []string{corpus.At(0).ID, corpus.At(1).ID, corpus.At(2).ID}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestCorpusEntriesIsACopy(t *testing.T) {
	corpus := BuildCorpus(basque, []WordPair{{ID: "1", Basque: "ur", Spanish: "agua"}})
	entries := corpus.Entries()
	entries[0].Spanish = "fuego"
	assert.Equal(t, "agua", corpus.At(0).Spanish)
}

func TestPrimaryBasque(t *testing.T) {
	testCases := []struct {
		basque   string
		expected string
	}{
		{"ederra, polita", "ederra"},
		{"  etxe ", "etxe"},
		{"-tasun", "-tasun"},
		{"", ""},
		{", hutsa", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, WordPair{Basque: tc.basque}.PrimaryBasque(), tc.basque)
	}
}

func TestCompareSharedCollator(t *testing.T) {
	corpus := BuildCorpus(basque, []WordPair{{Basque: "etxe", Spanish: "casa"}})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				assert.Negative(t, corpus.Compare("Etxe", "Ñabardura"))
				assert.Positive(t, corpus.Compare("zuhaitz", "álamo"))
				assert.Zero(t, corpus.Compare("etxe", "etxe"))
			}
		}()
	}
	wg.Wait()
}
