package errors

import (
	"errors"
	"fmt"
)

// SesshSDKError is the base interface for all SDK errors.
type SesshSDKError interface {
	error
	IsSesshSDKError() bool
}

// Compile-time verification that all error types implement SesshSDKError.
var (
	_ SesshSDKError = (*BinaryNotFoundError)(nil)
	_ SesshSDKError = (*ConnectionError)(nil)
	_ SesshSDKError = (*InvocationError)(nil)
	_ SesshSDKError = (*DecodeError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrInteractiveAttach indicates an interactive attach was requested
	// through the SDK. The SDK pipes all process streams, so it cannot hand
	// the caller's terminal to the session.
	ErrInteractiveAttach = errors.New(
		"attach is interactive and not supported through the SDK: run `sessh attach <alias> <host>` from a terminal instead")
)

// BinaryNotFoundError indicates the sessh binary was not found.
type BinaryNotFoundError struct {
	SearchedPaths []string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("sessh binary not found in: %v", e.SearchedPaths)
}

// IsSesshSDKError implements SesshSDKError.
func (e *BinaryNotFoundError) IsSesshSDKError() bool { return true }

// ConnectionError indicates the sessh process could not be spawned or its
// pipes could not be set up.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to invoke sessh: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsSesshSDKError implements SesshSDKError.
func (e *ConnectionError) IsSesshSDKError() bool { return true }

// InvocationError indicates the sessh process exited non-zero without
// producing any output to interpret.
//
// The message is the captured stderr verbatim when non-empty, so callers see
// exactly what the binary reported.
type InvocationError struct {
	ExitCode int
	Stderr   string
}

func (e *InvocationError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}

	return fmt.Sprintf("sessh exited with code %d", e.ExitCode)
}

// IsSesshSDKError implements SesshSDKError.
func (e *InvocationError) IsSesshSDKError() bool { return true }

// DecodeError indicates sessh output could not be decoded as a JSON payload.
// This error preserves the raw output that failed to parse.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode sessh output %q: %v", e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsSesshSDKError implements SesshSDKError.
func (e *DecodeError) IsSesshSDKError() bool { return true }
