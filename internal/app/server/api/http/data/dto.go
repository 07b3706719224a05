package data

import "encoding/json"

type readInput struct {
	Filename string `query:"filename" example:"users.json" doc:"Logical document name inside the data directory"`
}

// readOutput carries the decoded document verbatim; the proxy never
// parses what it proxies.
type readOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type writeInput struct {
	Body writeRequest
}

// All fields optional at the schema level; the handler owns validation
// so missing fields answer 400 (not a schema 422).
type writeRequest struct {
	Filename string          `json:"filename,omitempty" doc:"Logical document name inside the data directory"`
	Data     json.RawMessage `json:"data,omitempty" doc:"Document payload; strings are written verbatim, any other JSON value is pretty-printed"`
	Message  string          `json:"message,omitempty" doc:"Commit message"`
}

type writeOutput struct {
	Body writeResponse
}

type writeResponse struct {
	OK     bool   `json:"ok"`
	Commit string `json:"commit,omitempty" doc:"New commit identifier"`
}
