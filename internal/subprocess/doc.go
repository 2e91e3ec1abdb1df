// Package subprocess runs the sessh binary as a child process.
//
// Each SDK operation is one run-to-completion invocation: spawn the binary
// with piped standard streams, drain stdout and stderr concurrently, and
// capture the exit code. The package performs no retries and enforces no
// timeout; cancellation is the caller's context.
package subprocess
