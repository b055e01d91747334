/*
Package server implements msgpack IPC for dictionary lookups.

The server reads msgpack requests from stdin and writes one msgpack response
per request to stdout. Requests are processed synchronously, in order, with
timing info included in search responses.

# IPC

Every request is a map with an action and the fields that action needs:

	{"id": "r1", "action": "search", "q": "eder", "l": 10}
	{"id": "r2", "action": "search", "m": "suffix", "x": "tasun"}

Search responses carry the matches in corpus order, the total match count
before the limit, the time taken in microseconds and a status:

	{"id": "r1", "r": [{"i": "w12", "b": "ederra", "s": "bonito"}], "c": 1, "t": 42, "st": "found"}

The search action is stateless. The server also keeps one session, driven
by set_term, set_mode and select_suffix, which answer with the session's
current results:

	{"id": "s1", "action": "set_mode", "m": "suffix"}
	{"id": "s2", "action": "select_suffix", "x": "-"}

Other actions: explain (x, or the session's suffix), suffixes, state,
dict_info and health. A request without an id gets a generated one.

The config action changes the search limits and saves them to the config
file. Omitted fields keep their value; use_index applies from the next start:

	{"id": "c1", "action": "config", "max_results": 20, "min_term": 2}

Failures are reported with an ErrorResponse: code 400 for bad input and 500
when the config file cannot be saved.
A request that cannot be decoded ends the session.

The config file is reloaded every ConfigReloadInterval requests, so limits
can be changed without a restart.
*/
package server

// Request is the single request shape; unused fields are left empty.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Term   string `msgpack:"q,omitempty"`
	Mode   string `msgpack:"m,omitempty"`
	Suffix string `msgpack:"x,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`

	// config action
	MaxResults *int  `msgpack:"max_results,omitempty"`
	MinTerm    *int  `msgpack:"min_term,omitempty"`
	MaxTerm    *int  `msgpack:"max_term,omitempty"`
	UseIndex   *bool `msgpack:"use_index,omitempty"`
}

// Entry - minimal word pair
type Entry struct {
	ID              string `msgpack:"i"`
	Basque          string `msgpack:"b"`
	Spanish         string `msgpack:"s"`
	SynonymsBasque  string `msgpack:"sb,omitempty"`
	SynonymsSpanish string `msgpack:"ss,omitempty"`
}

// SearchResponse answers search and the session actions.
type SearchResponse struct {
	ID        string  `msgpack:"id"`
	Results   []Entry `msgpack:"r"`
	Count     int     `msgpack:"c"`
	TimeTaken int64   `msgpack:"t"`
	Status    string  `msgpack:"st"`
}

// ExplainResponse - suffix explanation
type ExplainResponse struct {
	ID          string `msgpack:"id"`
	Value       string `msgpack:"v"`
	Name        string `msgpack:"n"`
	Explanation string `msgpack:"e"`
}

// SuffixInfo - one catalog entry
type SuffixInfo struct {
	Value string `msgpack:"v"`
	Name  string `msgpack:"n"`
}

// SuffixesResponse lists the catalog in display order.
type SuffixesResponse struct {
	ID       string       `msgpack:"id"`
	Suffixes []SuffixInfo `msgpack:"s"`
}

// StateResponse - session state
type StateResponse struct {
	ID     string `msgpack:"id"`
	Term   string `msgpack:"q"`
	Mode   string `msgpack:"m"`
	Suffix string `msgpack:"x"`
	Status string `msgpack:"st"`
}

// DictionaryResponse - loaded corpus info
type DictionaryResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	TotalWords int    `msgpack:"total_words"`
	InputWords int    `msgpack:"input_words"`
	Duplicates int    `msgpack:"duplicates"`
	Indexed    bool   `msgpack:"indexed"`
}

// ConfigResponse - search config after a config action
type ConfigResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	MaxResults int    `msgpack:"max_results"`
	MinTerm    int    `msgpack:"min_term"`
	MaxTerm    int    `msgpack:"max_term"`
	UseIndex   bool   `msgpack:"use_index"`
	Saved      bool   `msgpack:"saved"`
}

// HealthResponse - liveness check
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
