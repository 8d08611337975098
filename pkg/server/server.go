package server

import (
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/codefrydev/JsonPlayground/internal/logger"
	"github.com/codefrydev/JsonPlayground/pkg/config"
	"github.com/codefrydev/JsonPlayground/pkg/suggest"
)

// Server handles the IPC for playground suggestions.
type Server struct {
	engine     *suggest.Engine
	cfg        *config.Config
	configPath string
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
	log        *charmlog.Logger
}

// NewServer creates a suggestion server using stdin/stdout for IPC.
// All logging goes to stderr; stdout carries only msgpack frames.
func NewServer(engine *suggest.Engine, cfg *config.Config, configPath string) *Server {
	return &Server{
		engine:     engine,
		cfg:        cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(os.Stdin),
		enc:        msgpack.NewEncoder(os.Stdout),
		log:        logger.NewStderr("ipc"),
	}
}

// Start begins the synchronous request loop. It returns nil when the
// host closes stdin.
func (s *Server) Start() error {
	s.log.Debugf("Starting suggestion server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.send(ErrorResponse{Error: "invalid msgpack frame", Code: 400})
			continue
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Cmd {
	case "set_document":
		s.handleSetDocument(request)
	case "suggest":
		s.handleSuggest(request)
	case "move":
		s.handleMove(request)
	case "accept":
		s.handleAccept(request)
	case "close":
		s.engine.Close()
		s.send(StatusResponse{ID: request.ID, Status: "closed"})
	case "config":
		s.handleConfig(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.send(ErrorResponse{ID: request.ID, Error: fmt.Sprintf("Unknown command: %s", request.Cmd), Code: 400})
	}
}

func (s *Server) handleSetDocument(request Request) {
	if max := s.cfg.Server.MaxDocumentBytes; max > 0 && len(request.Text) > max {
		s.send(ErrorResponse{ID: request.ID, Error: "document exceeds size limit", Code: 413})
		return
	}
	// A document that fails to parse is not an IPC error: the host keeps
	// editing and the engine simply has nothing to offer.
	if err := s.engine.SetDocument(request.Text); err != nil {
		s.send(StatusResponse{ID: request.ID, Status: "no_document", Error: err.Error()})
		return
	}
	s.send(StatusResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) handleSuggest(request Request) {
	if max := s.cfg.Server.MaxBufferLen; max > 0 && len(request.Text) > max {
		s.send(ErrorResponse{ID: request.ID, Error: "buffer exceeds length limit", Code: 413})
		return
	}

	start := time.Now()
	result := s.engine.Recompute(request.Text, request.Cursor)
	elapsed := time.Since(start)

	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.Server.DefaultLimit
	}
	s.send(s.suggestResponse(request.ID, result, limit, elapsed.Microseconds()))
	s.log.Debugf("suggest %q -> %d candidates in %v", request.Text, len(result.Candidates), elapsed)
}

func (s *Server) handleMove(request Request) {
	direction := request.Direction
	if direction == 0 {
		direction = 1
	}
	result := s.engine.MoveSelection(direction)
	s.send(s.suggestResponse(request.ID, result, 0, 0))
}

func (s *Server) handleAccept(request Request) {
	// Recompute against the submitted buffer so acceptance always acts
	// on the state the host sees.
	s.engine.Recompute(request.Text, request.Cursor)
	acceptance, ok := s.engine.Accept(request.Index)
	s.send(AcceptResponse{
		ID:              request.ID,
		ReplacementText: acceptance.ReplacementText,
		Start:           acceptance.InsertionRange.Start,
		End:             acceptance.InsertionRange.End,
		Accepted:        ok,
	})
}

func (s *Server) handleConfig(request Request) {
	switch request.Action {
	case "set":
		if err := s.cfg.Update(s.configPath, request.RootName, request.ArraySampleLimit, request.IndexSampleLimit, request.CaseSensitive); err != nil {
			s.send(StatusResponse{ID: request.ID, Status: "error", Error: err.Error()})
			return
		}
		rootName, arraySample, indexSample, caseSensitive := s.cfg.EngineOptions()
		document := s.engine.Document()
		s.engine = suggest.NewEngine(suggest.Options{
			RootName:         rootName,
			ArraySampleLimit: arraySample,
			IndexSampleLimit: indexSample,
			CaseSensitive:    caseSensitive,
		})
		if document != nil {
			s.engine.SetDocumentValue(document)
		}
		s.send(s.configResponse(request.ID))
	case "get":
		s.send(s.configResponse(request.ID))
	default:
		s.send(ErrorResponse{ID: request.ID, Error: fmt.Sprintf("Unknown config action: %s", request.Action), Code: 400})
	}
}

func (s *Server) configResponse(id string) ConfigResponse {
	rootName, arraySample, indexSample, caseSensitive := s.cfg.EngineOptions()
	return ConfigResponse{
		ID:               id,
		RootName:         rootName,
		ArraySampleLimit: arraySample,
		IndexSampleLimit: indexSample,
		CaseSensitive:    caseSensitive,
		Status:           "ok",
	}
}

func (s *Server) suggestResponse(id string, result suggest.Result, limit int, micros int64) SuggestResponse {
	candidates := result.Candidates
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	wire := make([]Candidate, len(candidates))
	for i, c := range candidates {
		wire[i] = Candidate{
			Path:    c.Path,
			Label:   c.Label,
			Type:    c.Type,
			Preview: c.Preview,
			Insert:  c.Insert,
		}
	}
	return SuggestResponse{
		ID:           id,
		Candidates:   wire,
		Count:        len(wire),
		Selected:     result.SelectedIndex,
		TriggerStart: result.Trigger.Start,
		TriggerEnd:   result.Trigger.End,
		Open:         result.IsOpen,
		TimeTaken:    micros,
	}
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}
