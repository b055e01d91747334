package search

import (
	"time"

	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/suffix"
)

// Searcher answers dictionary queries.
type Searcher interface {
	// Search returns every entry matching q, in corpus order
	Search(q Query) Result

	// Stats returns statistics about the searched corpus
	Stats() map[string]int
}

// Result is the outcome of one search.
type Result struct {
	Matches []dictionary.WordPair
	Count   int
	Elapsed time.Duration
}

// Limit returns at most n matches. n <= 0 means all of them.
func (r Result) Limit(n int) []dictionary.WordPair {
	if n > 0 && len(r.Matches) > n {
		return r.Matches[:n]
	}
	return r.Matches
}

// Engine searches one corpus, through the index or by a linear pass.
type Engine struct {
	corpus  *dictionary.Corpus
	entries []dictionary.WordPair
	index   *Index
}

// NewEngine creates an engine over corpus. With useIndex the lookup
// structures are built up front; catalog decides which suffix lists are
// precomputed.
func NewEngine(corpus *dictionary.Corpus, catalog *suffix.Catalog, useIndex bool) *Engine {
	e := &Engine{
		corpus:  corpus,
		entries: corpus.Entries(),
	}
	if useIndex {
		e.index = NewIndex(e.entries, catalog)
	}
	return e
}

// Search runs q against the corpus.
func (e *Engine) Search(q Query) Result {
	start := time.Now()

	var matches []dictionary.WordPair
	if e.index != nil {
		matches = e.index.Search(q)
	} else {
		matches = Filter(e.entries, q)
	}

	return Result{
		Matches: matches,
		Count:   len(matches),
		Elapsed: time.Since(start),
	}
}

// Indexed reports whether the engine uses the index.
func (e *Engine) Indexed() bool {
	return e.index != nil
}

func (e *Engine) Stats() map[string]int {
	stats := e.corpus.Stats()
	if e.index != nil {
		for k, v := range e.index.Stats() {
			stats[k] = v
		}
		stats["index"] = 1
	} else {
		stats["index"] = 0
	}
	return stats
}
