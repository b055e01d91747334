/*
Package suffix holds the catalog of Basque derivational suffixes that the
dictionary can filter by, along with a short explanation for each one.

A Catalog is built once and never changes. Identifiers are validated
against it, so a misspelled suffix fails at parse time instead of quietly
matching nothing:

	cat := suffix.Default()
	s, err := cat.Parse("tasun")
	exp, ok := cat.Explain(s)
*/
package suffix

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSuffix is returned for identifiers that are not in the catalog.
var ErrUnknownSuffix = errors.New("unknown suffix")

// Suffix identifies a catalog entry, e.g. "tasun". The zero value means no suffix.
type Suffix string

// None is the empty selection.
const None Suffix = ""

// IsNone reports whether s is the empty selection.
func (s Suffix) IsNone() bool {
	return s == None
}

func (s Suffix) String() string {
	return string(s)
}

// Detail describes one suffix.
type Detail struct {
	Value       Suffix
	Name        string
	Explanation string
}

// Explanation is what a detail view shows for a suffix.
type Explanation struct {
	Title       string
	Explanation string
}

// Catalog is an immutable, ordered set of suffix details.
type Catalog struct {
	details []Detail
	byValue map[Suffix]int
}

// NewCatalog builds a catalog, keeping the given order.
// Empty or duplicate identifiers are rejected.
func NewCatalog(details ...Detail) (*Catalog, error) {
	c := &Catalog{
		details: make([]Detail, 0, len(details)),
		byValue: make(map[Suffix]int, len(details)),
	}
	for i, d := range details {
		if d.Value.IsNone() {
			return nil, fmt.Errorf("catalog entry %d: empty suffix identifier", i)
		}
		if _, dup := c.byValue[d.Value]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate suffix %q", i, d.Value)
		}
		if d.Name == "" {
			d.Name = "-" + string(d.Value)
		}
		c.byValue[d.Value] = len(c.details)
		c.details = append(c.details, d)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.details)
}

// All returns a copy of the entries in catalog order.
func (c *Catalog) All() []Detail {
	out := make([]Detail, len(c.details))
	copy(out, c.details)
	return out
}

// First returns the first entry's identifier, or None for an empty catalog.
func (c *Catalog) First() Suffix {
	if len(c.details) == 0 {
		return None
	}
	return c.details[0].Value
}

// Contains reports whether s is a catalog identifier.
func (c *Catalog) Contains(s Suffix) bool {
	_, ok := c.byValue[s]
	return ok
}

// Lookup returns the detail for s.
func (c *Catalog) Lookup(s Suffix) (Detail, bool) {
	i, ok := c.byValue[s]
	if !ok {
		return Detail{}, false
	}
	return c.details[i], true
}

// Explain returns the title and explanation for s.
func (c *Catalog) Explain(s Suffix) (Explanation, bool) {
	d, ok := c.Lookup(s)
	if !ok {
		return Explanation{}, false
	}
	return Explanation{Title: d.Name, Explanation: d.Explanation}, true
}

// Parse validates raw against the catalog. A leading hyphen is accepted,
// so "-tasun" and "tasun" both parse. Empty input parses to None.
func (c *Catalog) Parse(raw string) (Suffix, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "-")
	if raw == "" {
		return None, nil
	}
	s := Suffix(strings.ToLower(raw))
	if !c.Contains(s) {
		return None, fmt.Errorf("%w: %q", ErrUnknownSuffix, raw)
	}
	return s, nil
}
