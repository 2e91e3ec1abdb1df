package sessh

import "github.com/commandAGI/sessh-go/internal/errors"

// Re-export error types from internal package

// BinaryNotFoundError indicates the sessh binary was not found.
type BinaryNotFoundError = errors.BinaryNotFoundError

// ConnectionError indicates the sessh process could not be spawned.
type ConnectionError = errors.ConnectionError

// InvocationError indicates the sessh process exited non-zero with no output.
type InvocationError = errors.InvocationError

// DecodeError indicates sessh output could not be decoded as a JSON payload.
type DecodeError = errors.DecodeError

// SesshSDKError is the base interface for all SDK errors.
type SesshSDKError = errors.SesshSDKError

// Re-export sentinel errors from internal package.
var (
	// ErrInteractiveAttach indicates an interactive attach was requested
	// through the SDK, which cannot hand the caller's terminal to the session.
	ErrInteractiveAttach = errors.ErrInteractiveAttach
)
