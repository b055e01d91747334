// Package cli handles cmd line input for looking words up interactively and for debugging
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/hiztegia/internal/logger"
	"github.com/bastiangx/hiztegia/internal/utils"
	"github.com/bastiangx/hiztegia/pkg/search"
	"github.com/bastiangx/hiztegia/pkg/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	idleMessage      = "Idatzi hitz bat aurkitzeko edo hautatu atzizki bat (:suffix <id>)."
	noResultsMessage = "Ez da emaitzarik aurkitu."
)

// Options controls what the handler accepts and how much it prints.
type Options struct {
	Limit        int
	MinTerm      int
	MaxTerm      int
	ShowSynonyms bool
}

// InputHandler reads lines from its input and drives a session with them.
// Plain text sets the search term; lines starting with ':' are commands.
type InputHandler struct {
	session *session.Session
	opts    Options
	in      io.Reader
	out     *log.Logger
	styles  styles
}

// NewInputHandler creates a handler on stdin/stdout.
func NewInputHandler(sess *session.Session, opts Options) *InputHandler {
	return NewInputHandlerWithIO(sess, opts, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler on the given reader and writer.
func NewInputHandlerWithIO(sess *session.Session, opts Options, r io.Reader, w io.Writer) *InputHandler {
	return &InputHandler{
		session: sess,
		opts:    opts,
		in:      r,
		out:     logger.NewWithConfig(w, "", log.InfoLevel, false, false, log.TextFormatter),
		styles:  newStyles(lipgloss.NewRenderer(w)),
	}
}

// Start begins the interface loop.
// It reads one line at a time until :quit or the end of input.
func (h *InputHandler) Start() error {
	h.out.Print(h.styles.title.Render("Hiztegia CLI"))
	h.out.Print("type a word and press Enter, :help for commands (Ctrl+C to exit)")
	h.render()

	scanner := bufio.NewScanner(h.in)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		if quit := h.handleInput(scanner.Text()); quit {
			return nil
		}
	}
}

// handleInput processes one line and reports whether the loop should stop.
func (h *InputHandler) handleInput(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ":") {
		h.setTerm(line)
		return false
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	log.Debug("command", "cmd", cmd, "arg", arg)

	switch cmd {
	case "q", "quit", "exit":
		return true
	case "mode", "m":
		h.setMode(arg)
	case "suffix", "s":
		h.selectSuffix(arg)
	case "explain", "e":
		h.explain(arg)
	case "suffixes", "ls":
		h.listSuffixes()
	case "clear", "c":
		h.session.Reset()
		h.render()
	case "state":
		h.printState()
	case "help", "h":
		h.printHelp()
	default:
		h.out.Errorf("Unknown command: :%s (try :help)", cmd)
	}
	return false
}

func (h *InputHandler) setTerm(raw string) bool {
	term := utils.Normalize(raw)
	n := utils.RuneLen(term)
	if n < h.opts.MinTerm {
		h.out.Errorf("Term too short: %s", term)
		return false
	}
	if h.opts.MaxTerm > 0 && n > h.opts.MaxTerm {
		h.out.Errorf("Term too long: %s", term)
		return false
	}
	h.session.SetTerm(term)
	h.render()
	return true
}

func (h *InputHandler) setMode(arg string) {
	mode, err := search.ParseMode(arg)
	if err != nil {
		h.out.Error(err.Error())
		return
	}
	h.session.SetMode(mode)
	h.render()
}

func (h *InputHandler) selectSuffix(arg string) {
	sfx, err := h.session.Catalog().Parse(arg)
	if err != nil {
		h.out.Error(err.Error())
		return
	}
	if err := h.session.SelectSuffix(sfx); err != nil {
		h.out.Error(err.Error())
		return
	}
	h.render()
}

func (h *InputHandler) explain(arg string) {
	exp, ok := h.session.Explain()
	if arg != "" {
		sfx, err := h.session.Catalog().Parse(arg)
		if err != nil {
			h.out.Error(err.Error())
			return
		}
		exp, ok = h.session.Catalog().Explain(sfx)
	}
	if !ok {
		h.out.Warn("No suffix selected")
		return
	}

	h.out.Print(h.styles.title.Render(exp.Title))
	for _, line := range strings.Split(exp.Explanation, "\n") {
		h.out.Print(h.styles.emphasis(line))
	}
}

func (h *InputHandler) listSuffixes() {
	selected := h.session.State().Suffix
	for i, d := range h.session.Catalog().All() {
		marker := " "
		if d.Value == selected {
			marker = "*"
		}
		h.out.Printf("%s %2d. %-8s %s", marker, i+1, d.Value, h.styles.faint.Render(d.Name))
	}
}

func (h *InputHandler) printState() {
	st := h.session.State()
	sfx := "-"
	if !st.Suffix.IsNone() {
		sfx = string(st.Suffix)
	}
	h.out.Printf("term=%q mode=%s suffix=%s status=%s", st.Term, st.Mode, sfx, h.session.Status())
}

func (h *InputHandler) printHelp() {
	for _, line := range []string{
		"<text>              search Basque prefixes and Spanish words",
		":mode general|suffix switch mode",
		":suffix <id>|-      select a suffix, or none",
		":explain [id]       explain the selected (or given) suffix",
		":suffixes           list the suffix catalog",
		":clear              reset term, mode and suffix",
		":state              show the current state",
		":quit               exit",
	} {
		h.out.Print(line)
	}
}

// render prints the session's current result.
func (h *InputHandler) render() {
	switch h.session.Status() {
	case session.Idle:
		h.out.Print(h.styles.faint.Render(idleMessage))
		return
	case session.NoResults:
		h.out.Print(h.styles.warn.Render(noResultsMessage))
		return
	}

	res := h.session.Result()
	matches := res.Limit(h.opts.Limit)
	for i, w := range matches {
		h.out.Printf("%2d. %s %s", i+1, h.styles.basque.Render(w.Basque), w.Spanish)
		if h.opts.ShowSynonyms && (w.SynonymsBasque != "" || w.SynonymsSpanish != "") {
			h.out.Print("    " + h.styles.faint.Render(synonymLine(w.SynonymsBasque, w.SynonymsSpanish)))
		}
	}

	summary := fmt.Sprintf("%s results in %v", utils.FormatWithCommas(res.Count), res.Elapsed)
	if len(matches) < res.Count {
		summary = fmt.Sprintf("%d of %s", len(matches), summary)
	}
	h.out.Print(h.styles.faint.Render(summary))
}

func synonymLine(basque, spanish string) string {
	parts := make([]string, 0, 2)
	if basque != "" {
		parts = append(parts, "eu: "+basque)
	}
	if spanish != "" {
		parts = append(parts, "es: "+spanish)
	}
	return "≈ " + strings.Join(parts, " | ")
}

// Lookup applies the term bounds to raw, sets it on the session and prints
// the result once. It reports whether the term was accepted.
func (h *InputHandler) Lookup(raw string) bool {
	return h.setTerm(raw)
}
