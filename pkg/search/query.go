/*
Package search filters the dictionary corpus.

A Query combines a free-text term, a mode and an optional suffix. In suffix
mode with a suffix selected, only entries whose primary Basque form ends in
that suffix survive. A non-empty term then narrows the set further: an
entry stays if its Basque form (or Basque synonyms) starts with the term,
or if the term is one of the whole words of its Spanish translation (or
Spanish synonyms). Matching ignores case. With no term and no suffix the
result is empty; callers show a prompt instead of the whole corpus.

Filter is the plain linear pass. Engine answers the same queries and can
use an Index (a patricia trie over the Basque forms plus a Spanish token
table) to avoid scanning every entry. Both always agree.
*/
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/hiztegia/pkg/suffix"
)

// ErrUnknownMode is returned by ParseMode for anything but general or suffix.
var ErrUnknownMode = errors.New("unknown search mode")

// Mode selects whether a suffix constraint applies.
type Mode string

const (
	ModeGeneral Mode = "general"
	ModeSuffix  Mode = "suffix"
)

// ParseMode parses a mode name. Empty input is general.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeGeneral:
		return ModeGeneral, nil
	case ModeSuffix:
		return ModeSuffix, nil
	}
	return ModeGeneral, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

// Query holds the three inputs of a search.
type Query struct {
	Term   string
	Mode   Mode
	Suffix suffix.Suffix
}

// suffixActive reports whether the suffix constraint applies.
func (q Query) suffixActive() bool {
	return q.Mode == ModeSuffix && !q.Suffix.IsNone()
}

// Active reports whether the query has any criteria at all.
func (q Query) Active() bool {
	return q.Term != "" || q.suffixActive()
}
