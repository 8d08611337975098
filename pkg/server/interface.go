/*
Package server implements msgpack IPC for the playground suggestion engine.

The server provides a minimal interface for editor hosts over msgpack
serialization on stdin/stdout. Requests are processed synchronously in
arrival order; every response carries the request ID and timing info.

# IPC

A host first installs a document, then recomputes suggestions on every
keystroke:

	{"id": "doc_1", "cmd": "set_document", "t": "{\"user\":{\"name\":\"John\"}}"}
	{"id": "req_1", "cmd": "suggest", "t": "data.u", "cur": 6}

The server responds with the candidate list and the text span to replace:

	{"id": "req_1", "s": [{"l": "user", "ty": "object", "ins": "user"}], "c": 1, "ts": 5, "te": 6, "open": true}

Selection navigation and acceptance mirror the engine commands:

	{"id": "req_2", "cmd": "move", "dir": 1}
	{"id": "req_3", "cmd": "accept", "t": "data.u", "cur": 6, "i": 0}
	{"id": "req_4", "cmd": "close"}

Engine options can be adjusted at runtime without restart:

	{"id": "cfg_1", "cmd": "config", "action": "set", "root": "json"}

Malformed frames produce an error response, never a crash; a document
that fails to parse leaves the server in the "no document" state and
subsequent suggest requests return empty, closed results.
*/
package server

// Request is the envelope for every incoming frame.
type Request struct {
	ID  string `msgpack:"id"`
	Cmd string `msgpack:"cmd"`
	// Text is the document body for set_document, the code buffer for
	// suggest/accept.
	Text      string `msgpack:"t,omitempty"`
	Cursor    int    `msgpack:"cur,omitempty"`
	Limit     int    `msgpack:"l,omitempty"`
	Index     int    `msgpack:"i,omitempty"`
	Direction int    `msgpack:"dir,omitempty"`
	Action    string `msgpack:"action,omitempty"`
	// Engine options for config set; nil fields are left unchanged.
	RootName         *string `msgpack:"root,omitempty"`
	ArraySampleLimit *int    `msgpack:"as,omitempty"`
	IndexSampleLimit *int    `msgpack:"is,omitempty"`
	CaseSensitive    *bool   `msgpack:"cs,omitempty"`
}

// Candidate is the wire form of one suggestion.
type Candidate struct {
	Path    string `msgpack:"p"`
	Label   string `msgpack:"l"`
	Type    string `msgpack:"ty"`
	Preview string `msgpack:"pv,omitempty"`
	Insert  string `msgpack:"ins"`
}

// SuggestResponse answers suggest and move commands.
type SuggestResponse struct {
	ID           string      `msgpack:"id"`
	Candidates   []Candidate `msgpack:"s"`
	Count        int         `msgpack:"c"`
	Selected     int         `msgpack:"sel"`
	TriggerStart int         `msgpack:"ts"`
	TriggerEnd   int         `msgpack:"te"`
	Open         bool        `msgpack:"open"`
	TimeTaken    int64       `msgpack:"t"`
}

// AcceptResponse carries the edit the host applies to its buffer.
type AcceptResponse struct {
	ID              string `msgpack:"id"`
	ReplacementText string `msgpack:"text"`
	Start           int    `msgpack:"start"`
	End             int    `msgpack:"end"`
	Accepted        bool   `msgpack:"ok"`
}

// StatusResponse answers set_document, close, config and health.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// ConfigResponse answers config get and set actions with the engine
// options in effect after the command.
type ConfigResponse struct {
	ID               string `msgpack:"id"`
	RootName         string `msgpack:"root"`
	ArraySampleLimit int    `msgpack:"as"`
	IndexSampleLimit int    `msgpack:"is"`
	CaseSensitive    bool   `msgpack:"cs"`
	Status           string `msgpack:"status"`
}

// ErrorResponse reports a malformed or unprocessable request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
