package sessh

import "github.com/commandAGI/sessh-go/internal/payload"

// Re-export response types from internal package

// Response is the base payload every sessh operation returns.
type Response = payload.Response

// CaptureResponse is the payload of output-capturing operations (logs, pane).
type CaptureResponse = payload.CaptureResponse

// StatusResponse is the payload of the status operation.
type StatusResponse = payload.StatusResponse
