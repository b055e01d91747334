/*
Package dictionary builds the immutable Basque–Spanish corpus.

Word pairs come from source lists: the two built-in lists (general
vocabulary and verbs) embedded in the binary, plus any extra source files
named in the config. The lists are concatenated in order, duplicate
(basque, spanish) pairs are dropped keeping the first one seen, and the
result is sorted by the Basque form using Basque collation rules.

	loader := dictionary.NewLoader("eu", true, nil)
	corpus, err := loader.Load()

Source files may be TOML, YAML, JSON or msgpack; the format is picked from
the file extension. Each holds a single "words" list:

	[[words]]
	id = "w1"
	basque = "edertasun"
	spanish = "belleza"
*/
package dictionary

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WordPair is one dictionary entry.
type WordPair struct {
	ID              string `toml:"id" yaml:"id" json:"id" msgpack:"id"`
	Basque          string `toml:"basque" yaml:"basque" json:"basque" msgpack:"basque"`
	Spanish         string `toml:"spanish" yaml:"spanish" json:"spanish" msgpack:"spanish"`
	SynonymsBasque  string `toml:"synonyms_basque,omitempty" yaml:"synonyms_basque,omitempty" json:"synonyms_basque,omitempty" msgpack:"synonyms_basque,omitempty"`
	SynonymsSpanish string `toml:"synonyms_spanish,omitempty" yaml:"synonyms_spanish,omitempty" json:"synonyms_spanish,omitempty" msgpack:"synonyms_spanish,omitempty"`
}

// PrimaryBasque returns the Basque form before the first comma, trimmed.
// "ederra, polita" -> "ederra"
func (w WordPair) PrimaryBasque() string {
	head, _, _ := strings.Cut(w.Basque, ",")
	return strings.TrimSpace(head)
}

// normalized returns a copy with every text field in NFC form.
func (w WordPair) normalized() WordPair {
	w.Basque = norm.NFC.String(w.Basque)
	w.Spanish = norm.NFC.String(w.Spanish)
	w.SynonymsBasque = norm.NFC.String(w.SynonymsBasque)
	w.SynonymsSpanish = norm.NFC.String(w.SynonymsSpanish)
	return w
}

type pairKey struct {
	basque  string
	spanish string
}

func (w WordPair) key() pairKey {
	return pairKey{basque: w.Basque, spanish: w.Spanish}
}
