package payload

import (
	"encoding/json"

	"github.com/commandAGI/sessh-go/internal/errors"
	"github.com/commandAGI/sessh-go/internal/subprocess"
)

// Response is the base payload every sessh operation returns.
type Response struct {
	// OK reports whether the binary considered the operation successful.
	OK bool `json:"ok"`

	// Op echoes the operation name, e.g. "open" or "logs".
	Op string `json:"op"`
}

// CaptureResponse is the payload of output-capturing operations (logs, pane).
type CaptureResponse struct {
	Response

	// Output is the captured terminal text.
	Output string `json:"output"`

	// Lines is the number of captured lines.
	Lines int `json:"lines"`
}

// StatusResponse is the payload of the status operation.
type StatusResponse struct {
	Response

	// Master is the liveness indicator of the SSH control connection the
	// session rides on.
	Master int `json:"master"`

	// Session is the liveness indicator of the tmux session itself.
	Session int `json:"session"`
}

// Decode interprets a captured invocation as a JSON payload.
//
// A non-zero exit alone is not failure: the binary emits a structured error
// payload on stdout even when it exits non-zero, so decoding is attempted
// whenever stdout is non-empty. Only a non-zero exit with empty stdout is an
// InvocationError, carrying stderr verbatim. Output that is not a JSON
// object is a DecodeError preserving the raw text.
func Decode(res subprocess.Result) (map[string]any, error) {
	if res.ExitCode != 0 && res.Stdout == "" {
		return nil, &errors.InvocationError{
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}

	var payload map[string]any

	if err := json.Unmarshal([]byte(res.Stdout), &payload); err != nil {
		return nil, &errors.DecodeError{
			Raw: res.Stdout,
			Err: err,
		}
	}

	return payload, nil
}

// ParseResponse converts a decoded payload into the generic response shape.
// Missing or mistyped fields yield zero values, matching the binary's
// loosely typed contract.
func ParseResponse(m map[string]any) *Response {
	ok, _ := m["ok"].(bool)
	op, _ := m["op"].(string)

	return &Response{OK: ok, Op: op}
}

// ParseCapture converts a decoded payload into a capture response.
func ParseCapture(m map[string]any) *CaptureResponse {
	output, _ := m["output"].(string)

	return &CaptureResponse{
		Response: *ParseResponse(m),
		Output:   output,
		Lines:    intField(m, "lines"),
	}
}

// ParseStatus converts a decoded payload into a status response.
func ParseStatus(m map[string]any) *StatusResponse {
	return &StatusResponse{
		Response: *ParseResponse(m),
		Master:   intField(m, "master"),
		Session:  intField(m, "session"),
	}
}

// intField reads a numeric field. encoding/json decodes JSON numbers in a
// map as float64.
func intField(m map[string]any, key string) int {
	f, _ := m[key].(float64)

	return int(f)
}
