// Package payload maps captured sessh invocations to typed responses.
//
// The mapping is a pure function of the exit code and the two output
// streams: a non-zero exit with no stdout is an invocation failure, anything
// on stdout is decoded as a JSON object, and undecodable output is a decode
// failure carrying the raw text. Operation-specific parse helpers convert
// the decoded object into the per-operation response shapes.
package payload
