package sessh

import "log/slog"

// Option configures a Client using the functional options pattern.
type Option func(*SessionOptions)

// SessionOptions holds the optional configuration accepted by New.
// Most callers should use the With* helpers instead of filling this directly.
type SessionOptions struct {
	// Logger is the slog logger for debug output.
	// If not set, logging is disabled (silent operation).
	Logger *slog.Logger

	// Port is the SSH port. Zero means the binary's default.
	Port int

	// BinPath is an explicit path to the sessh binary.
	BinPath string

	// Identity is a path to an SSH private key.
	Identity string

	// ProxyJump is an intermediate hop host.
	ProxyJump string

	// Env holds additional environment variables for the sessh process.
	Env map[string]string
}

// applyOptions applies functional options to a SessionOptions struct.
func applyOptions(opts []Option) *SessionOptions {
	options := &SessionOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *SessionOptions) {
		o.Logger = logger
	}
}

// WithPort sets the SSH port for operations that accept one.
func WithPort(port int) Option {
	return func(o *SessionOptions) {
		o.Port = port
	}
}

// WithBinPath sets the explicit path to the sessh binary.
// If not set, the binary is searched in PATH and common install locations.
func WithBinPath(path string) Option {
	return func(o *SessionOptions) {
		o.BinPath = path
	}
}

// WithIdentity sets the path to an SSH private key, exported to the binary
// via SESSH_SSH_KEY.
func WithIdentity(path string) Option {
	return func(o *SessionOptions) {
		o.Identity = path
	}
}

// WithProxyJump sets an intermediate hop host, exported to the binary via
// SESSH_PROXY_JUMP.
func WithProxyJump(host string) Option {
	return func(o *SessionOptions) {
		o.ProxyJump = host
	}
}

// WithEnv provides additional environment variables for the sessh process.
func WithEnv(env map[string]string) Option {
	return func(o *SessionOptions) {
		o.Env = env
	}
}
