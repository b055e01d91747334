package server

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/hiztegia/pkg/config"
	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/search"
	"github.com/bastiangx/hiztegia/pkg/suffix"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/language"
)

func testEngine() *search.Engine {
	corpus := dictionary.BuildCorpus(language.Make("eu"), []dictionary.WordPair{
		{ID: "1", Basque: "edertasun", Spanish: "belleza"},
		{ID: "2", Basque: "beldurkor", Spanish: "miedoso"},
		{ID: "3", Basque: "ederra", Spanish: "bonito", SynonymsBasque: "polita"},
		{ID: "4", Basque: "zoriontasun", Spanish: "felicidad"},
	})
	return search.NewEngine(corpus, suffix.Default(), true)
}

// runServer feeds reqs to a server over in-memory buffers and returns a
// decoder positioned at the first response.
func runServer(t *testing.T, cfg *config.Config, configPath string, reqs ...any) (*msgpack.Decoder, error) {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}

	srv := NewServerWithIO(testEngine(), suffix.Default(), cfg, configPath, &in, &out)
	err := srv.Start()
	return msgpack.NewDecoder(&out), err
}

func next[T any](t *testing.T, dec *msgpack.Decoder) T {
	t.Helper()
	var v T
	require.NoError(t, dec.Decode(&v))
	return v
}

func basques(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Basque
	}
	return out
}

func TestSearch(t *testing.T) {
	dec, err := runServer(t, nil, "",
		Request{ID: "r1", Action: "search", Term: "eder"},
		Request{ID: "r2", Action: "search", Suffix: "tasun"},
		Request{ID: "r3", Action: "search", Term: " polita "},
		Request{ID: "r4", Action: "search"},
		Request{ID: "r5", Action: "search", Term: "xyz"},
	)
	require.NoError(t, err)

	res := next[SearchResponse](t, dec)
	assert.Equal(t, "r1", res.ID)
	assert.Equal(t, []string{"ederra", "edertasun"}, basques(res.Results))
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "found", res.Status)
	assert.GreaterOrEqual(t, res.TimeTaken, int64(0))

	res = next[SearchResponse](t, dec)
	assert.Equal(t, []string{"edertasun", "zoriontasun"}, basques(res.Results))

	res = next[SearchResponse](t, dec)
	require.Len(t, res.Results, 1)
	assert.Equal(t, Entry{ID: "3", Basque: "ederra", Spanish: "bonito", SynonymsBasque: "polita"}, res.Results[0])

	res = next[SearchResponse](t, dec)
	assert.Empty(t, res.Results)
	assert.Equal(t, "idle", res.Status)

	res = next[SearchResponse](t, dec)
	assert.Zero(t, res.Count)
	assert.Equal(t, "no_results", res.Status)
}

func TestSearchLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.MaxResults = 1

	dec, err := runServer(t, cfg, "",
		Request{ID: "a", Action: "search", Term: "eder"},
		Request{ID: "b", Action: "search", Term: "eder", Limit: 5},
	)
	require.NoError(t, err)

	for range 2 {
		res := next[SearchResponse](t, dec)
		assert.Len(t, res.Results, 1)
		assert.Equal(t, 2, res.Count)
	}
}

func TestSearchBadInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.MaxTerm = 3

	dec, err := runServer(t, cfg, "",
		Request{ID: "m", Action: "search", Term: "a", Mode: "fuzzy"},
		Request{ID: "x", Action: "search", Suffix: "tasunak"},
		Request{ID: "long", Action: "search", Term: "edert"},
		Request{ID: "u", Action: "translate"},
	)
	require.NoError(t, err)

	for _, id := range []string{"m", "x", "long", "u"} {
		e := next[ErrorResponse](t, dec)
		assert.Equal(t, id, e.ID)
		assert.Equal(t, 400, e.Code)
		assert.NotEmpty(t, e.Error)
	}
}

func TestMinTerm(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.MinTerm = 2

	dec, err := runServer(t, cfg, "",
		Request{ID: "short", Action: "set_term", Term: "e"},
		Request{ID: "ok", Action: "set_term", Term: "ed"},
	)
	require.NoError(t, err)

	assert.Equal(t, 400, next[ErrorResponse](t, dec).Code)
	assert.Equal(t, 2, next[SearchResponse](t, dec).Count)
}

func TestSessionActions(t *testing.T) {
	dec, err := runServer(t, nil, "",
		Request{ID: "1", Action: "set_mode", Mode: "suffix"},
		Request{ID: "2", Action: "state"},
		Request{ID: "3", Action: "explain"},
		Request{ID: "4", Action: "select_suffix", Suffix: "-"},
		Request{ID: "5", Action: "state"},
		Request{ID: "6", Action: "select_suffix", Suffix: "-tasun"},
		Request{ID: "7", Action: "set_term", Term: "z"},
		Request{ID: "8", Action: "select_suffix", Suffix: "bogus"},
		Request{ID: "9", Action: "state"},
	)
	require.NoError(t, err)

	res := next[SearchResponse](t, dec)
	assert.Equal(t, []string{"beldurkor"}, basques(res.Results))

	st := next[StateResponse](t, dec)
	assert.Equal(t, StateResponse{ID: "2", Mode: "suffix", Suffix: "kor", Status: "found"}, st)

	exp := next[ExplainResponse](t, dec)
	assert.Equal(t, "kor", exp.Value)
	assert.Equal(t, "-kor", exp.Name)
	assert.NotEmpty(t, exp.Explanation)

	res = next[SearchResponse](t, dec)
	assert.Equal(t, "idle", res.Status)

	st = next[StateResponse](t, dec)
	assert.Equal(t, StateResponse{ID: "5", Mode: "general", Suffix: "", Status: "idle"}, st)

	res = next[SearchResponse](t, dec)
	assert.Equal(t, []string{"edertasun", "zoriontasun"}, basques(res.Results))

	res = next[SearchResponse](t, dec)
	assert.Equal(t, []string{"zoriontasun"}, basques(res.Results))

	assert.Equal(t, 400, next[ErrorResponse](t, dec).Code)

	st = next[StateResponse](t, dec)
	assert.Equal(t, StateResponse{ID: "9", Term: "z", Mode: "suffix", Suffix: "tasun", Status: "found"}, st)
}

func TestExplainAndSuffixes(t *testing.T) {
	dec, err := runServer(t, nil, "",
		Request{ID: "e1", Action: "explain", Suffix: "tasun"},
		Request{ID: "e2", Action: "explain"},
		Request{ID: "s", Action: "suffixes"},
	)
	require.NoError(t, err)

	exp := next[ExplainResponse](t, dec)
	assert.Equal(t, "-tasun", exp.Name)

	assert.Equal(t, 400, next[ErrorResponse](t, dec).Code)

	list := next[SuffixesResponse](t, dec)
	require.Len(t, list.Suffixes, suffix.Default().Len())
	assert.Equal(t, SuffixInfo{Value: "kor", Name: "-kor"}, list.Suffixes[0])
}

func TestHealthAndDictInfo(t *testing.T) {
	dec, err := runServer(t, nil, "",
		Request{Action: "health"},
		Request{ID: "d", Action: "dict_info"},
	)
	require.NoError(t, err)

	health := next[HealthResponse](t, dec)
	assert.Equal(t, "ok", health.Status)
	_, parseErr := uuid.Parse(health.ID)
	assert.NoError(t, parseErr, "missing ids get a uuid")

	info := next[DictionaryResponse](t, dec)
	assert.Equal(t, 4, info.TotalWords)
	assert.Equal(t, 4, info.InputWords)
	assert.Zero(t, info.Duplicates)
	assert.True(t, info.Indexed)
}

func TestDecodeErrorEndsSession(t *testing.T) {
	var in, out bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&in).Encode(Request{ID: "ok", Action: "health"}))
	in.WriteByte(0xc1) // reserved msgpack code

	srv := NewServerWithIO(testEngine(), suffix.Default(), nil, "", &in, &out)
	require.Error(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	assert.Equal(t, "ok", next[HealthResponse](t, dec).ID)
}

func TestConfigReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[search]\nmax_results = 1\n"), 0644))

	reqs := make([]any, 0, ConfigReloadInterval+1)
	reqs = append(reqs, Request{ID: "before", Action: "search", Term: "eder"})
	for len(reqs) < ConfigReloadInterval-1 {
		reqs = append(reqs, Request{ID: "h", Action: "health"})
	}
	reqs = append(reqs, Request{ID: "after", Action: "search", Term: "eder"})

	dec, err := runServer(t, config.DefaultConfig(), path, reqs...)
	require.NoError(t, err)

	assert.Len(t, next[SearchResponse](t, dec).Results, 2)
	for i := 0; i < ConfigReloadInterval-2; i++ {
		next[HealthResponse](t, dec)
	}
	after := next[SearchResponse](t, dec)
	assert.Equal(t, "after", after.ID)
	assert.Len(t, after.Results, 1)
}

func TestConfigAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[search]\nmax_results = 0\n"), 0644))

	one, two, negative := 1, 2, -3
	reqs := []any{
		Request{ID: "set", Action: "config", MaxResults: &one, MinTerm: &two},
		Request{ID: "short", Action: "search", Term: "e"},
		Request{ID: "limited", Action: "search", Term: "eder"},
		Request{ID: "bad", Action: "config", MaxResults: &negative},
	}
	for len(reqs) < ConfigReloadInterval {
		reqs = append(reqs, Request{ID: "h", Action: "health"})
	}
	reqs = append(reqs, Request{ID: "reloaded", Action: "search", Term: "eder"})

	dec, err := runServer(t, config.DefaultConfig(), path, reqs...)
	require.NoError(t, err)

	cr := next[ConfigResponse](t, dec)
	assert.Equal(t, ConfigResponse{ID: "set", Status: "ok", MaxResults: 1, MinTerm: 2, MaxTerm: 60, UseIndex: true, Saved: true}, cr)

	assert.Equal(t, 400, next[ErrorResponse](t, dec).Code)
	limited := next[SearchResponse](t, dec)
	assert.Len(t, limited.Results, 1)
	assert.Equal(t, 2, limited.Count)

	bad := next[ErrorResponse](t, dec)
	assert.Equal(t, "bad", bad.ID)
	assert.Equal(t, 400, bad.Code)

	for i := 4; i < ConfigReloadInterval; i++ {
		next[HealthResponse](t, dec)
	}
	reloaded := next[SearchResponse](t, dec)
	assert.Equal(t, "reloaded", reloaded.ID)
	assert.Len(t, reloaded.Results, 1)

	saved, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Search.MaxResults)
	assert.Equal(t, 2, saved.Search.MinTerm)
}

func TestConfigActionWithoutFile(t *testing.T) {
	noIndex := false
	dec, err := runServer(t, nil, "", Request{ID: "c", Action: "config", UseIndex: &noIndex})
	require.NoError(t, err)

	cr := next[ConfigResponse](t, dec)
	assert.Equal(t, "ok", cr.Status)
	assert.False(t, cr.UseIndex)
	assert.False(t, cr.Saved)
}
