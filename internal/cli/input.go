// Package cli is an interactive prompt for exercising the suggestion
// engine during development and debugging.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/codefrydev/JsonPlayground/internal/logger"
	"github.com/codefrydev/JsonPlayground/internal/utils"
	"github.com/codefrydev/JsonPlayground/pkg/suggest"
)

// InputHandler reads code buffers from stdin and prints the candidates
// the engine would offer with the cursor at end of line.
type InputHandler struct {
	engine       *suggest.Engine
	log          *charmlog.Logger
	suggestLimit int
	pretty       bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *suggest.Engine, limit int, pretty bool) *InputHandler {
	return &InputHandler{
		engine:       engine,
		log:          logger.New("cli"),
		suggestLimit: limit,
		pretty:       pretty,
	}
}

// LoadDocument reads and installs a JSON document from a file.
func (h *InputHandler) LoadDocument(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := h.engine.SetDocument(string(data)); err != nil {
		return fmt.Errorf("document did not parse: %w", err)
	}
	h.log.Printf("Loaded document from %s", path)
	return nil
}

// Start begins the interface loop. Each plain line is treated as a code
// buffer with the cursor at its end; ":doc <file>" loads a new document.
// The loop terminates when stdin is closed.
func (h *InputHandler) Start() error {
	h.log.Print("JsonPlayground suggestion CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a code buffer and press Enter to see candidates (:doc <file> to load JSON, Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, ":doc "); ok {
			if err := h.LoadDocument(strings.TrimSpace(rest)); err != nil {
				h.log.Errorf("Loading document: %v", err)
			}
			continue
		}
		h.handleInput(line)
	}
}

// handleInput recomputes suggestions for one buffer and prints them.
func (h *InputHandler) handleInput(buffer string) {
	h.requestCount++

	start := time.Now()
	result := h.engine.Recompute(buffer, len(buffer))
	elapsed := time.Since(start)

	h.log.Debugf("Took [ %v ] for buffer %q", elapsed, buffer)

	if !result.IsOpen {
		h.log.Warnf("No candidates for buffer: %q", buffer)
		return
	}

	shown := result.Candidates
	if h.suggestLimit > 0 && len(shown) > h.suggestLimit {
		shown = shown[:h.suggestLimit]
	}

	h.log.Printf("Found %d candidates (replacing [%d:%d]):", len(result.Candidates), result.Trigger.Start, result.Trigger.End)
	for i, c := range shown {
		// Pad before coloring so the width count sees only the label,
		// not the escape codes.
		label := utils.PadRight(c.Label, 36)
		if h.pretty {
			label = fmt.Sprintf("\033[38;5;75m%s\033[0m", label)
		}
		preview := utils.TruncateForDisplay(c.Preview, 48)
		h.log.Printf("%2d. %s %-8s %s", i+1, label, c.Type, preview)
	}
}
