package dictionary

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Corpus is the deduplicated, sorted word list. It never changes after
// BuildCorpus returns, so it is safe to share between goroutines.
type Corpus struct {
	entries    []WordPair
	inputWords int

	mu  sync.Mutex // guards col
	col *collate.Collator
}

// BuildCorpus concatenates the sources in order, drops repeated
// (basque, spanish) pairs keeping the first occurrence, and stable-sorts
// the survivors by Basque form under the collation rules of locale.
func BuildCorpus(locale language.Tag, sources ...[]WordPair) *Corpus {
	total := 0
	for _, src := range sources {
		total += len(src)
	}

	seen := make(map[pairKey]struct{}, total)
	entries := make([]WordPair, 0, total)
	for _, src := range sources {
		for _, w := range src {
			k := w.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			entries = append(entries, w)
		}
	}

	col := collate.New(locale)
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].Basque, entries[j].Basque) < 0
	})

	return &Corpus{
		entries:    entries,
		inputWords: total,
		col:        col,
	}
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// At returns the i-th entry in sorted order.
func (c *Corpus) At(i int) WordPair {
	return c.entries[i]
}

// Entries returns a copy of all entries in sorted order.
func (c *Corpus) Entries() []WordPair {
	out := make([]WordPair, len(c.entries))
	copy(out, c.entries)
	return out
}

// Compare compares two Basque forms with the collator the corpus was sorted with.
func (c *Corpus) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col.CompareString(a, b)
}

// Stats returns counters about the build.
func (c *Corpus) Stats() map[string]int {
	return map[string]int{
		"totalWords":        len(c.entries),
		"inputWords":        c.inputWords,
		"droppedDuplicates": c.inputWords - len(c.entries),
	}
}
