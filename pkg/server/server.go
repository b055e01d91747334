package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/hiztegia/internal/logger"
	"github.com/bastiangx/hiztegia/internal/utils"
	"github.com/bastiangx/hiztegia/pkg/config"
	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/search"
	"github.com/bastiangx/hiztegia/pkg/session"
	"github.com/bastiangx/hiztegia/pkg/suffix"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ConfigReloadInterval is the number of requests between config reloads.
const ConfigReloadInterval = 100

// Server handles the IPC for dictionary lookups
type Server struct {
	searcher   search.Searcher
	catalog    *suffix.Catalog
	session    *session.Session
	config     *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
	log        *log.Logger

	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(searcher search.Searcher, catalog *suffix.Catalog, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(searcher, catalog, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
// An empty configPath disables reloading.
func NewServerWithIO(searcher search.Searcher, catalog *suffix.Catalog, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		searcher:   searcher,
		catalog:    catalog,
		session:    session.New(searcher, catalog),
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
		log:        logger.New("ipc"),
	}
}

// Start processes requests until the input is closed.
// It returns nil on a clean EOF and an error when a request can't be decoded.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")
	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed, stopping", "requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}

		s.requestCount++
		if s.requestCount%ConfigReloadInterval == 0 {
			s.reloadConfig()
		}

		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the action and writes exactly one response.
func (s *Server) handleRequest(req Request) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	s.log.Debug("request", "id", req.ID, "action", req.Action)

	switch req.Action {
	case "search":
		return s.handleSearch(req)
	case "set_term":
		return s.handleSetTerm(req)
	case "set_mode":
		return s.handleSetMode(req)
	case "select_suffix":
		return s.handleSelectSuffix(req)
	case "explain":
		return s.handleExplain(req)
	case "suffixes":
		return s.handleSuffixes(req)
	case "state":
		return s.sendResponse(s.stateResponse(req.ID))
	case "dict_info":
		return s.handleDictInfo(req)
	case "config":
		return s.handleConfig(req)
	case "health":
		return s.sendResponse(HealthResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %q", req.Action), 400)
	}
}

// handleSearch runs a stateless query; the session is left untouched.
func (s *Server) handleSearch(req Request) error {
	term := utils.Normalize(req.Term)
	if err := s.validateTerm(term); err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	mode, err := search.ParseMode(req.Mode)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	sfx, err := s.catalog.Parse(req.Suffix)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	// a suffix alone implies suffix mode
	if req.Mode == "" && !sfx.IsNone() {
		mode = search.ModeSuffix
	}

	q := search.Query{Term: term, Mode: mode, Suffix: sfx}
	res := s.searcher.Search(q)

	status := session.Found
	switch {
	case !q.Active():
		status = session.Idle
	case res.Count == 0:
		status = session.NoResults
	}
	return s.sendResponse(s.searchResponse(req, res, status))
}

func (s *Server) handleSetTerm(req Request) error {
	term := utils.Normalize(req.Term)
	if err := s.validateTerm(term); err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	s.session.SetTerm(term)
	return s.sendSessionResult(req)
}

func (s *Server) handleSetMode(req Request) error {
	mode, err := search.ParseMode(req.Mode)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	s.session.SetMode(mode)
	return s.sendSessionResult(req)
}

func (s *Server) handleSelectSuffix(req Request) error {
	sfx, err := s.catalog.Parse(req.Suffix)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	if err := s.session.SelectSuffix(sfx); err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	return s.sendSessionResult(req)
}

// handleExplain explains x, or the session's suffix when x is empty.
func (s *Server) handleExplain(req Request) error {
	sfx := s.session.State().Suffix
	if req.Suffix != "" {
		parsed, err := s.catalog.Parse(req.Suffix)
		if err != nil {
			return s.sendError(req.ID, err.Error(), 400)
		}
		sfx = parsed
	}
	if sfx.IsNone() {
		return s.sendError(req.ID, "No suffix selected", 400)
	}

	detail, _ := s.catalog.Lookup(sfx)
	return s.sendResponse(ExplainResponse{
		ID:          req.ID,
		Value:       string(detail.Value),
		Name:        detail.Name,
		Explanation: detail.Explanation,
	})
}

func (s *Server) handleSuffixes(req Request) error {
	details := s.catalog.All()
	infos := make([]SuffixInfo, len(details))
	for i, d := range details {
		infos[i] = SuffixInfo{Value: string(d.Value), Name: d.Name}
	}
	return s.sendResponse(SuffixesResponse{ID: req.ID, Suffixes: infos})
}

func (s *Server) handleDictInfo(req Request) error {
	stats := s.searcher.Stats()
	return s.sendResponse(DictionaryResponse{
		ID:         req.ID,
		Status:     "ok",
		TotalWords: stats["totalWords"],
		InputWords: stats["inputWords"],
		Duplicates: stats["droppedDuplicates"],
		Indexed:    stats["index"] == 1,
	})
}

// handleConfig applies the given search values and saves them, so the
// periodic reload keeps them.
func (s *Server) handleConfig(req Request) error {
	if err := s.config.Update(s.configPath, req.MaxResults, req.MinTerm, req.MaxTerm, req.UseIndex); err != nil {
		if errors.Is(err, config.ErrInvalidValue) {
			return s.sendError(req.ID, err.Error(), 400)
		}
		s.log.Errorf("Saving config: %v", err)
		return s.sendError(req.ID, fmt.Sprintf("saving config: %v", err), 500)
	}
	s.log.Debug("config updated", "path", s.configPath, "search", s.config.Search)

	search := s.config.Search
	return s.sendResponse(ConfigResponse{
		ID:         req.ID,
		Status:     "ok",
		MaxResults: search.MaxResults,
		MinTerm:    search.MinTerm,
		MaxTerm:    search.MaxTerm,
		UseIndex:   search.UseIndex,
		Saved:      s.configPath != "",
	})
}

func (s *Server) sendSessionResult(req Request) error {
	return s.sendResponse(s.searchResponse(req, s.session.Result(), s.session.Status()))
}

func (s *Server) stateResponse(id string) StateResponse {
	st := s.session.State()
	return StateResponse{
		ID:     id,
		Term:   st.Term,
		Mode:   string(st.Mode),
		Suffix: string(st.Suffix),
		Status: s.session.Status().String(),
	}
}

func (s *Server) searchResponse(req Request, res search.Result, status session.Status) SearchResponse {
	matches := res.Limit(s.effectiveLimit(req.Limit))
	return SearchResponse{
		ID:        req.ID,
		Results:   toEntries(matches),
		Count:     res.Count,
		TimeTaken: res.Elapsed.Microseconds(),
		Status:    status.String(),
	}
}

// effectiveLimit caps the requested limit with max_results; 0 means no cap.
func (s *Server) effectiveLimit(requested int) int {
	maxResults := s.config.Search.MaxResults
	if requested <= 0 {
		return maxResults
	}
	if maxResults > 0 && requested > maxResults {
		return maxResults
	}
	return requested
}

// validateTerm checks the term length bounds. An empty term is always valid.
func (s *Server) validateTerm(term string) error {
	n := utils.RuneLen(term)
	if n == 0 {
		return nil
	}
	if minTerm := s.config.Search.MinTerm; n < minTerm {
		return fmt.Errorf("term must be at least %d characters", minTerm)
	}
	if maxTerm := s.config.Search.MaxTerm; maxTerm > 0 && n > maxTerm {
		return fmt.Errorf("term exceeds maximum length of %d characters", maxTerm)
	}
	return nil
}

func toEntries(pairs []dictionary.WordPair) []Entry {
	entries := make([]Entry, len(pairs))
	for i, p := range pairs {
		entries[i] = Entry{
			ID:              p.ID,
			Basque:          p.Basque,
			Spanish:         p.Spanish,
			SynonymsBasque:  p.SynonymsBasque,
			SynonymsSpanish: p.SynonymsSpanish,
		}
	}
	return entries
}

// reloadConfig picks up limit changes from the config file.
func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	start := time.Now()
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		s.log.Warnf("Config reload failed, keeping current values: %v", err)
		return
	}
	s.config = cfg
	s.log.Debugf("Config reloaded from %s in %s", s.configPath, time.Since(start))
}

// sendResponse encodes the response to the output stream.
func (s *Server) sendResponse(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	s.log.Debug("request failed", "id", id, "error", message, "code", code)
	return s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
