package sessh

import (
	"context"
	"log/slog"
	"maps"
	"strconv"

	"github.com/commandAGI/sessh-go/internal/cli"
	"github.com/commandAGI/sessh-go/internal/config"
	"github.com/commandAGI/sessh-go/internal/errors"
	"github.com/commandAGI/sessh-go/internal/payload"
	"github.com/commandAGI/sessh-go/internal/subprocess"
)

// DefaultCaptureLines is the number of lines Logs and Pane capture when the
// caller passes a non-positive count.
const DefaultCaptureLines = 300

// Client drives one named remote session through the sessh binary.
//
// Every method is a single subprocess invocation that blocks until the
// binary exits, then returns a decoded response or an error — never both,
// never a partial result. The client holds no connection and no session
// state; the remote session's lifecycle is owned entirely by the binary and
// observed through Status.
//
// Clients are immutable and safe for concurrent use, but concurrent calls
// against the same session are not ordered by the SDK.
type Client interface {
	// Open ensures the remote session exists, creating it if needed.
	Open(ctx context.Context) (*Response, error)

	// Run submits a command into the session. The response acknowledges
	// submission only; capture output separately with Logs or Pane.
	Run(ctx context.Context, command string) (*Response, error)

	// Logs captures the last lines of the session's scrollback history.
	// A non-positive lines falls back to DefaultCaptureLines.
	Logs(ctx context.Context, lines int) (*CaptureResponse, error)

	// Status reports two independent liveness indicators: the SSH control
	// connection (Master) and the tmux session riding on it (Session).
	Status(ctx context.Context) (*StatusResponse, error)

	// Close terminates the session and its SSH control connection.
	Close(ctx context.Context) (*Response, error)

	// Keys sends raw key-press events into the session without an implicit
	// Enter, for driving interactive programs.
	Keys(ctx context.Context, keySequence string) (*Response, error)

	// Pane captures the last lines of the session's current screen content,
	// not scrollback history. A non-positive lines falls back to
	// DefaultCaptureLines.
	Pane(ctx context.Context, lines int) (*CaptureResponse, error)

	// Attach always returns ErrInteractiveAttach without spawning anything.
	// Interactive attach needs the caller's terminal; the SDK pipes all
	// process streams.
	Attach(ctx context.Context) error
}

// client implements the Client interface.
type client struct {
	log  *slog.Logger
	opts *config.Options
}

// Compile-time verification that client implements Client.
var _ Client = (*client)(nil)

// New creates a client for the session named alias on host.
//
// Construction is pure assignment and never fails; the binary is located and
// the host is contacted only when an operation runs.
func New(alias, host string, opts ...Option) Client {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	return &client{
		log: log.With("component", "client", "alias", alias, "host", host),
		opts: &config.Options{
			Logger:    log,
			Alias:     alias,
			Host:      host,
			Port:      options.Port,
			BinPath:   options.BinPath,
			Identity:  options.Identity,
			ProxyJump: options.ProxyJump,
			Env:       maps.Clone(options.Env),
		},
	}
}

func (c *client) Open(ctx context.Context) (*Response, error) {
	m, err := c.invoke(ctx, "open")
	if err != nil {
		return nil, err
	}

	return payload.ParseResponse(m), nil
}

func (c *client) Run(ctx context.Context, command string) (*Response, error) {
	// "--" keeps the command from being misparsed as flags.
	m, err := c.invoke(ctx, "run", "--", command)
	if err != nil {
		return nil, err
	}

	return payload.ParseResponse(m), nil
}

func (c *client) Logs(ctx context.Context, lines int) (*CaptureResponse, error) {
	m, err := c.invoke(ctx, "logs", captureLines(lines))
	if err != nil {
		return nil, err
	}

	return payload.ParseCapture(m), nil
}

func (c *client) Status(ctx context.Context) (*StatusResponse, error) {
	m, err := c.invoke(ctx, "status")
	if err != nil {
		return nil, err
	}

	return payload.ParseStatus(m), nil
}

func (c *client) Close(ctx context.Context) (*Response, error) {
	m, err := c.invoke(ctx, "close")
	if err != nil {
		return nil, err
	}

	return payload.ParseResponse(m), nil
}

func (c *client) Keys(ctx context.Context, keySequence string) (*Response, error) {
	m, err := c.invoke(ctx, "keys", "--", keySequence)
	if err != nil {
		return nil, err
	}

	return payload.ParseResponse(m), nil
}

func (c *client) Pane(ctx context.Context, lines int) (*CaptureResponse, error) {
	m, err := c.invoke(ctx, "pane", captureLines(lines))
	if err != nil {
		return nil, err
	}

	return payload.ParseCapture(m), nil
}

func (c *client) Attach(_ context.Context) error {
	return errors.ErrInteractiveAttach
}

// invoke runs one operation: locate the binary, build argv and env, spawn,
// and decode the captured result.
func (c *client) invoke(ctx context.Context, op string, extra ...string) (map[string]any, error) {
	discoverer := cli.NewDiscoverer(&cli.Config{
		BinPath: c.opts.BinPath,
		Logger:  c.log,
	})

	binPath, err := discoverer.Discover()
	if err != nil {
		return nil, err
	}

	args := cli.BuildArgs(op, c.opts, extra...)
	env := cli.BuildEnvironment(c.opts)

	c.log.Debug("Built invocation", "op", op, "args", args)

	result, err := subprocess.Invoke(ctx, c.log, binPath, args, env)
	if err != nil {
		return nil, err
	}

	m, err := payload.Decode(result)
	if err != nil {
		c.log.Error("sessh operation failed", "op", op, "error", err)

		return nil, err
	}

	return m, nil
}

// captureLines normalizes the line count argument for logs and pane.
func captureLines(lines int) string {
	if lines <= 0 {
		lines = DefaultCaptureLines
	}

	return strconv.Itoa(lines)
}
