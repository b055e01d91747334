package search

import (
	"testing"

	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/suffix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestEngineIndexedAndLinearAgree(t *testing.T) {
	corpus := builtinCorpus(t)
	cat := suffix.Default()

	indexed := NewEngine(corpus, cat, true)
	linear := NewEngine(corpus, cat, false)
	require.True(t, indexed.Indexed())
	require.False(t, linear.Indexed())

	queries := []Query{
		{Term: "eder", Mode: ModeGeneral},
		{Mode: ModeSuffix, Suffix: suffix.Tasun},
		{Term: "z", Mode: ModeSuffix, Suffix: suffix.Tasun},
		{Term: "casa", Mode: ModeGeneral},
		{Mode: ModeGeneral},
	}
	for _, q := range queries {
		a := indexed.Search(q)
		b := linear.Search(q)
		assert.Equal(t, b.Matches, a.Matches, "%+v", q)
		assert.Equal(t, len(a.Matches), a.Count)
	}
}

func TestEngineBuiltinExamples(t *testing.T) {
	engine := NewEngine(builtinCorpus(t), suffix.Default(), true)

	res := engine.Search(Query{Mode: ModeSuffix, Suffix: suffix.Tasun})
	forms := basqueForms(res.Matches)
	assert.Contains(t, forms, "edertasun")
	assert.Contains(t, forms, "zoriontasun")
	assert.NotContains(t, forms, "-tasun")

	res = engine.Search(Query{Term: "eder", Mode: ModeGeneral})
	forms = basqueForms(res.Matches)
	assert.Contains(t, forms, "edertasun")
	assert.NotContains(t, forms, "zoriontasun")

	res = engine.Search(Query{Term: "casa", Mode: ModeGeneral})
	forms = basqueForms(res.Matches)
	assert.Contains(t, forms, "etxe")

	assert.Zero(t, engine.Search(Query{Mode: ModeGeneral}).Count)
}

func TestResultLimit(t *testing.T) {
	corpus := dictionary.BuildCorpus(language.Make("eu"), []dictionary.WordPair{
		{Basque: "ur", Spanish: "agua"},
		{Basque: "urte", Spanish: "año"},
		{Basque: "urre", Spanish: "oro"},
	})
	res := NewEngine(corpus, nil, true).Search(Query{Term: "ur", Mode: ModeGeneral})

	require.Equal(t, 3, res.Count)
	assert.Len(t, res.Limit(2), 2)
	assert.Len(t, res.Limit(0), 3)
	assert.Len(t, res.Limit(10), 3)
}

func TestEngineStats(t *testing.T) {
	corpus := builtinCorpus(t)

	stats := NewEngine(corpus, suffix.Default(), true).Stats()
	assert.Equal(t, 1, stats["index"])
	assert.Equal(t, corpus.Len(), stats["totalWords"])
	assert.Equal(t, corpus.Len(), stats["indexedEntries"])

	stats = NewEngine(corpus, suffix.Default(), false).Stats()
	assert.Equal(t, 0, stats["index"])
}
