/*
Package main implements the JsonPlayground suggestion server and CLI application.

JsonPlayground lets users paste a JSON document and explore it with small
scripts. This binary hosts the document-aware autocomplete engine behind
that editor: it indexes every reachable path of the loaded document and
answers, for any code buffer and cursor position, which completions are
valid there, including callback parameter members inside calls such as
data.posts.map(x => x.‹cursor›).

# Usage

Start the msgpack IPC server with a document preloaded:

	jsonplay -doc payload.json

Run in CLI mode for interactive testing:

	jsonplay -c -doc payload.json -limit 10

# Configuration

Runtime configuration is managed through a TOML file covering engine,
server and CLI parameters:

	[engine]
	root_name = "data"
	array_sample_limit = 10
	index_sample_limit = 3

	[server]
	max_buffer_len = 4096
	default_limit = 24

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. A host installs a
document, then recomputes suggestions per keystroke:

	{"id": "doc1", "cmd": "set_document", "t": "{...json...}"}
	{"id": "req1", "cmd": "suggest", "t": "data.u", "cur": 6}

Responses carry the candidate list, the text range replaced on
acceptance, and microsecond timing. See pkg/server for the full message
set.

# CLI Mode

CLI mode reads code buffers from stdin and prints the candidates the
engine computes with the cursor at end of line, with type tags and value
previews. It is primarily intended for development and for testing new
classifier patterns before wiring them to the editor.

# Suggestion Engine

The core engine lives in pkg/suggest, with the document model and path
index in pkg/document:

	engine := suggest.NewEngine(suggest.DefaultOptions())
	engine.SetDocument(jsonText)
	result := engine.Recompute("data.u", 6)

The companion query package implements the sequence-processing operators
playground scripts run against parsed documents; it has no dependency on
the suggestion side.

# Command Line Flags

The following flags control application behavior:

	-doc string
	    JSON document to load at startup
	-config string
	    Path to a config.toml overriding the default location
	-c  Run in CLI mode instead of server mode
	-d  Enable debug mode with detailed logging
	-limit int
	    Number of candidates to display in CLI mode
	-root string
	    Identifier the document is bound to in scripts (default from config)
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/codefrydev/JsonPlayground/internal/cli"
	"github.com/codefrydev/JsonPlayground/internal/logger"
	"github.com/codefrydev/JsonPlayground/internal/utils"
	"github.com/codefrydev/JsonPlayground/pkg/config"
	"github.com/codefrydev/JsonPlayground/pkg/server"
	"github.com/codefrydev/JsonPlayground/pkg/suggest"
)

const (
	Version = "0.4.0"
	AppName = "jsonplay"
	gh      = "https://github.com/codefrydev/JsonPlayground"
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

// main wires config, engine and the chosen front-end; the logic lives in
// the packages it calls.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	docPath := flag.String("doc", "", "JSON document to load at startup")
	configPathFlag := flag.String("config", "", "Path to a config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of candidates to display in CLI mode")
	rootName := flag.String("root", "", "Identifier the document is bound to in scripts")

	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Print("[ JsonPlayground ] Context-aware completions for JSON exploration!")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use -h or --help to see available options")
		banner.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(configPath))

	engineRoot, arraySample, indexSample, caseSensitive := appConfig.EngineOptions()
	if *rootName != "" {
		engineRoot = *rootName
	}
	engine := suggest.NewEngine(suggest.Options{
		RootName:         engineRoot,
		ArraySampleLimit: arraySample,
		IndexSampleLimit: indexSample,
		CaseSensitive:    caseSensitive,
	})

	if *docPath != "" {
		data, err := os.ReadFile(*docPath)
		if err != nil {
			log.Fatalf("Failed to read document %s: %v", *docPath, err)
			os.Exit(1)
		}
		if err := engine.SetDocument(string(data)); err != nil {
			log.Warnf("Document %s did not parse, starting without one: %v", *docPath, err)
		} else {
			log.Debugf("Loaded document: %s", *docPath)
		}
	} else {
		log.Warn("No document specified, suggestions are empty until one is set")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("CLI info:", "limit", *limit, "root", engineRoot)

		inputHandler := cli.NewInputHandler(engine, *limit, appConfig.CLI.Pretty)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	srv := server.NewServer(engine, appConfig, configPath)

	showStartupInfo(*docPath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(docPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "================")
	fmt.Fprintln(os.Stderr, " JsonPlayground ")
	fmt.Fprintln(os.Stderr, "================")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	if docPath != "" {
		log.Infof("document: ( %s )", docPath)
	}
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
