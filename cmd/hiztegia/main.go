// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the Hiztegia Basque-Spanish dictionary lookup server
and its CLI.

Hiztegia loads word pairs from the built-in dictionary and optional extra
source files, sorts them with Basque collation and answers lookups: Basque
prefixes, whole Spanish words and Basque derivational suffixes such as
-tasun or -kor. It can operate as a MessagePack IPC server for integration
with editors and apps, or as an interactive CLI.

# Usage

Start the server with default settings:

	hiztegia

Run the CLI, starting in suffix mode on -tasun:

	hiztegia -c -suffix tasun

Look a word up once and exit:

	hiztegia -q casa -limit 5

Add source files (TOML, YAML, JSON or msgpack) to the built-in ones:

	hiztegia -sources extra.yaml,~/dicts/verbs.toml

Write the merged, sorted dictionary to a file:

	hiztegia -export all.json

# Configuration

Runtime configuration lives in hiztegia.toml inside the user config dir:

	[search]
	max_results = 0
	min_term = 1
	max_term = 60
	use_index = true

	[dict]
	locale = "eu"
	include_builtin = true
	sources = []

	[cli]
	default_limit = 25
	default_mode = "general"
	show_synonyms = true

The file is created with defaults if it doesn't exist. Server mode reloads
it periodically without restart.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout, one response per
request. See package server for the message types.

	{"id": "r1", "action": "search", "q": "eder", "l": 10}
	{"id": "r1", "r": [{"i": "w12", "b": "ederra", "s": "bonito"}], "c": 1, "t": 42, "st": "found"}

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-c  Run the interactive CLI instead of the server
	-config string
	    Path to a config file
	-sources string
	    Comma separated extra source files
	-limit int
	    Number of results to show (0 for all)
	-mode string
	    Start in general or suffix mode
	-suffix string
	    Start with this suffix selected
	-q string
	    Look a term up, print the results and exit
	-export string
	    Write the loaded dictionary to a file and exit
	-no-index
	    Filter linearly instead of using the index
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/hiztegia/internal/cli"
	"github.com/bastiangx/hiztegia/internal/logger"
	"github.com/bastiangx/hiztegia/internal/utils"
	"github.com/bastiangx/hiztegia/pkg/config"
	"github.com/bastiangx/hiztegia/pkg/dictionary"
	"github.com/bastiangx/hiztegia/pkg/search"
	"github.com/bastiangx/hiztegia/pkg/server"
	"github.com/bastiangx/hiztegia/pkg/session"
	"github.com/bastiangx/hiztegia/pkg/suffix"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	gh      = "https://github.com/bastiangx/hiztegia"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the packages together and picks the mode; it holds no lookup logic.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI")
	configPath := flag.String("config", "", "Path to a config file (default: user config dir)")
	sources := flag.String("sources", "", "Comma separated extra source files")
	limit := flag.Int("limit", -1, "Number of results to show, 0 for all (default from config)")
	modeName := flag.String("mode", "", "Start mode: general or suffix (default from config)")
	suffixName := flag.String("suffix", "", "Start with this suffix selected, e.g. tasun")
	query := flag.String("q", "", "Look a term up, print the results and exit")
	exportPath := flag.String("export", "", "Write the loaded dictionary to this file and exit")
	noIndex := flag.Bool("no-index", false, "Filter linearly instead of using the index")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfig))

	sourcePaths := append(append([]string{}, appConfig.Dict.Sources...), utils.SplitList(*sources)...)
	loader := dictionary.NewLoader(appConfig.Dict.Locale, appConfig.Dict.IncludeBuiltin, pathResolver.ResolveSources(sourcePaths))
	corpus, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	if *exportPath != "" {
		format, err := dictionary.DetectFileFormat(*exportPath)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		info, _ := dictionary.GetFormatInfo(format)
		if err := dictionary.SaveSource(*exportPath, corpus.Entries()); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s words to %s (%s)\n", utils.FormatWithCommas(corpus.Len()), *exportPath, info.Description)
		return
	}

	useIndex := appConfig.Search.UseIndex && !*noIndex
	catalog := suffix.Default()
	engine := search.NewEngine(corpus, catalog, useIndex)
	log.Debug("Engine ready", "words", corpus.Len(), "index", useIndex)

	if *cliMode || *query != "" {
		log.SetReportTimestamp(false)
		runCLI(engine, catalog, appConfig, *modeName, *suffixName, *query, *limit)
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, catalog, appConfig, activeConfig)
	showStartupInfo(corpus.Len(), activeConfig)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// runCLI sets up a session from the flags and either answers one query or
// starts the interactive loop.
func runCLI(engine search.Searcher, catalog *suffix.Catalog, cfg *config.Config, modeName, suffixName, query string, limit int) {
	if modeName == "" {
		modeName = cfg.CLI.DefaultMode
	}
	mode, err := search.ParseMode(modeName)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}
	sfx, err := catalog.Parse(suffixName)
	if err != nil {
		log.Fatalf("Invalid -suffix: %v", err)
	}
	if limit < 0 {
		limit = cfg.CLI.DefaultLimit
	}

	sess := session.New(engine, catalog)
	sess.SetMode(mode)
	if !sfx.IsNone() {
		if err := sess.SelectSuffix(sfx); err != nil {
			log.Fatalf("Invalid -suffix: %v", err)
		}
	}

	log.Debug("Input info:",
		"mode", sess.State().Mode,
		"suffix", sess.State().Suffix,
		"limit", limit)

	inputHandler := cli.NewInputHandler(sess, cli.Options{
		Limit:        limit,
		MinTerm:      cfg.Search.MinTerm,
		MaxTerm:      cfg.Search.MaxTerm,
		ShowSynonyms: cfg.CLI.ShowSynonyms,
	})

	if query != "" {
		if !inputHandler.Lookup(query) {
			os.Exit(1)
		}
		return
	}
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ Hiztegia ] Basque-Spanish dictionary lookups")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(words int, configPath string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " Hiztegia ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %s", utils.FormatWithCommas(words))
	log.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")

	log.SetLevel(currentLevel)
}
