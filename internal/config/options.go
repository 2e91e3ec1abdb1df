package config

import "log/slog"

// Options is the resolved session configuration held by a client.
//
// It is assembled once at client construction and never mutated afterwards;
// concurrent operations on the same client read it without synchronization.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Alias is the caller-chosen identifier naming the remote session.
	Alias string

	// Host is the SSH target, e.g. "user@host".
	Host string

	// Port is the SSH port. Zero means unset; the binary uses its default.
	Port int

	// BinPath is an explicit path to the sessh binary.
	// If empty, the binary is searched in PATH and common locations.
	BinPath string

	// Identity is a path to an SSH private key, exported to the binary via
	// SESSH_SSH_KEY when set.
	Identity string

	// ProxyJump is an intermediate hop host, exported to the binary via
	// SESSH_PROXY_JUMP when set.
	ProxyJump string

	// Env holds additional environment variables for the sessh process.
	Env map[string]string
}
