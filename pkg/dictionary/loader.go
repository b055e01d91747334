package dictionary

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

//go:embed data/*.toml
var builtinFS embed.FS

// Built-in source names, in concatenation order.
const (
	SourceWords = "words"
	SourceVerbs = "verbs"
)

var builtinOrder = []string{SourceWords, SourceVerbs}

// Source is one named word list before it is merged into a corpus.
type Source struct {
	Name  string
	Pairs []WordPair
}

// Loader assembles the corpus from the built-in lists and extra files.
type Loader struct {
	locale         language.Tag
	includeBuiltin bool
	paths          []string
}

// NewLoader creates a loader. An unparsable locale falls back to Basque.
// Extra paths are read after the built-in lists, in the given order.
func NewLoader(locale string, includeBuiltin bool, paths []string) *Loader {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Warnf("Invalid locale %q: %v. Falling back to eu", locale, err)
		tag = language.Make("eu")
	}
	return &Loader{
		locale:         tag,
		includeBuiltin: includeBuiltin,
		paths:          paths,
	}
}

// BuiltinSources returns the embedded vocabulary and verb lists.
func BuiltinSources() ([]Source, error) {
	sources := make([]Source, 0, len(builtinOrder))
	for _, name := range builtinOrder {
		file, err := builtinFS.Open("data/" + name + ".toml")
		if err != nil {
			return nil, fmt.Errorf("failed to open builtin source %s: %w", name, err)
		}
		pairs, err := DecodeSource(file, FormatTOML)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read builtin source %s: %w", name, err)
		}
		sources = append(sources, prepareSource(name, pairs))
	}
	return sources, nil
}

// Sources returns every source list in concatenation order. Extra files
// that cannot be read are logged and skipped.
func (l *Loader) Sources() ([]Source, error) {
	var sources []Source

	if l.includeBuiltin {
		builtin, err := BuiltinSources()
		if err != nil {
			return nil, err
		}
		sources = append(sources, builtin...)
	}

	for _, path := range l.paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		pairs, err := LoadSource(path)
		if err != nil {
			log.Warnf("Skipping source: %v", err)
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		sources = append(sources, prepareSource(name, pairs))
	}
	return sources, nil
}

// Load reads all sources and builds the corpus.
func (l *Loader) Load() (*Corpus, error) {
	sources, err := l.Sources()
	if err != nil {
		return nil, err
	}

	lists := make([][]WordPair, 0, len(sources))
	for _, src := range sources {
		lists = append(lists, src.Pairs)
	}
	corpus := BuildCorpus(l.locale, lists...)

	stats := corpus.Stats()
	log.Debugf("Corpus built: sources=[%d] words=[%d] duplicates=[%d]",
		len(sources), stats["totalWords"], stats["droppedDuplicates"])
	return corpus, nil
}

// prepareSource normalizes text to NFC and fills in missing ids.
func prepareSource(name string, pairs []WordPair) Source {
	out := make([]WordPair, len(pairs))
	for i, w := range pairs {
		w = w.normalized()
		if w.ID == "" {
			w.ID = fmt.Sprintf("%s-%d", name, i+1)
		}
		out[i] = w
	}
	return Source{Name: name, Pairs: out}
}
