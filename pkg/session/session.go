/*
Package session tracks what a user is searching for and keeps the result
list in step with it.

A Session holds the term, the mode and the selected suffix. Every change
goes through one of its methods, and every method re-runs the search, so
Results always reflects the current state. The mode and suffix move
together:

	general --SetMode(suffix)--> suffix, first catalog suffix selected
	any     --SelectSuffix(s)--> suffix, s selected
	suffix  --SelectSuffix(-)--> general, nothing selected
	any     --SetMode(general)-> general, nothing selected

A Session belongs to a single input loop and is not safe for concurrent use.
*/
package session

import (
	"fmt"

	"github.com/bastiangx/hiztegia/pkg/search"
	"github.com/bastiangx/hiztegia/pkg/suffix"
	"github.com/charmbracelet/log"
)

// Status tells a front-end what to show.
type Status int

const (
	// Idle means there are no criteria; show a prompt.
	Idle Status = iota
	// NoResults means criteria are set but nothing matched.
	NoResults
	// Found means there is at least one match.
	Found
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case NoResults:
		return "no_results"
	case Found:
		return "found"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// State is a snapshot of the search inputs.
type State struct {
	Term   string
	Mode   search.Mode
	Suffix suffix.Suffix
}

// Query converts the state into a search query.
func (s State) Query() search.Query {
	return search.Query{Term: s.Term, Mode: s.Mode, Suffix: s.Suffix}
}

// Session is the interaction state machine.
type Session struct {
	searcher search.Searcher
	catalog  *suffix.Catalog
	state    State
	result   search.Result
}

// New creates a session in general mode with an empty term.
func New(searcher search.Searcher, catalog *suffix.Catalog) *Session {
	s := &Session{
		searcher: searcher,
		catalog:  catalog,
		state:    State{Mode: search.ModeGeneral, Suffix: suffix.None},
	}
	s.refresh()
	return s
}

// State returns the current inputs.
func (s *Session) State() State {
	return s.state
}

// Catalog returns the suffix catalog the session validates against.
func (s *Session) Catalog() *suffix.Catalog {
	return s.catalog
}

// Result returns the outcome of the last search.
func (s *Session) Result() search.Result {
	return s.result
}

// Status reports whether to show a prompt, a "no results" note or matches.
func (s *Session) Status() Status {
	switch {
	case !s.state.Query().Active():
		return Idle
	case s.result.Count == 0:
		return NoResults
	}
	return Found
}

// SetTerm replaces the search term.
func (s *Session) SetTerm(term string) {
	s.state.Term = term
	s.refresh()
}

// SetMode switches the mode. Going to general clears the suffix; going to
// suffix with nothing selected picks the first catalog entry.
func (s *Session) SetMode(mode search.Mode) {
	s.state.Mode = mode
	switch mode {
	case search.ModeGeneral:
		s.state.Suffix = suffix.None
	case search.ModeSuffix:
		if s.state.Suffix.IsNone() {
			s.state.Suffix = s.catalog.First()
		}
	}
	s.refresh()
}

// SelectSuffix selects sfx. A real suffix forces suffix mode; None while
// in suffix mode falls back to general. Identifiers missing from the
// catalog are rejected and leave the state as it was.
func (s *Session) SelectSuffix(sfx suffix.Suffix) error {
	if !sfx.IsNone() && !s.catalog.Contains(sfx) {
		return fmt.Errorf("%w: %q", suffix.ErrUnknownSuffix, sfx)
	}

	s.state.Suffix = sfx
	if !sfx.IsNone() {
		s.state.Mode = search.ModeSuffix
	} else if s.state.Mode == search.ModeSuffix {
		s.state.Mode = search.ModeGeneral
	}
	s.refresh()
	return nil
}

// Reset goes back to general mode with no term.
func (s *Session) Reset() {
	s.state = State{Mode: search.ModeGeneral, Suffix: suffix.None}
	s.refresh()
}

// Explain returns the explanation of the selected suffix.
func (s *Session) Explain() (suffix.Explanation, bool) {
	if s.state.Suffix.IsNone() {
		return suffix.Explanation{}, false
	}
	return s.catalog.Explain(s.state.Suffix)
}

func (s *Session) refresh() {
	s.result = s.searcher.Search(s.state.Query())
	log.Debug("session refreshed",
		"term", s.state.Term,
		"mode", s.state.Mode,
		"suffix", s.state.Suffix,
		"count", s.result.Count)
}
