// Package sessh provides a Go SDK for the sessh CLI, which manages
// persistent remote terminal sessions (tmux over SSH).
//
// The SDK is a thin wrapper: it contains no SSH, tmux, or session logic.
// Each method call spawns the sessh binary once, captures its output, and
// decodes the JSON payload into a typed response. Connection reuse, session
// lifecycle, and output capture semantics all live in the binary.
//
// # Basic Usage
//
//	ctx := context.Background()
//	client := sessh.New("agent", "user@host")
//
//	if _, err := client.Open(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := client.Run(ctx, "make test"); err != nil {
//	    log.Fatal(err)
//	}
//
//	capture, err := client.Logs(ctx, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(capture.Output)
//
// Run submits a command into the session and returns immediately with a
// generic acknowledgement; it does not carry the command's output. Capture
// output separately with Logs (scrollback history) or Pane (current screen).
//
// # Configuration
//
// New never fails; all configuration is optional:
//
//	client := sessh.New("agent", "user@host",
//	    sessh.WithPort(2222),
//	    sessh.WithIdentity("/home/me/.ssh/id_ed25519"),
//	    sessh.WithProxyJump("bastion@jump.example.com"),
//	    sessh.WithLogger(slog.Default()),
//	)
//
// # Error Handling
//
// The SDK provides typed errors for different failure scenarios:
//
//	_, err := client.Open(ctx)
//	if err != nil {
//	    if nfErr, ok := errors.AsType[*sessh.BinaryNotFoundError](err); ok {
//	        log.Fatalf("sessh not installed, searched: %v", nfErr.SearchedPaths)
//	    }
//	    if invErr, ok := errors.AsType[*sessh.InvocationError](err); ok {
//	        log.Fatalf("sessh failed with exit code %d: %s", invErr.ExitCode, invErr.Stderr)
//	    }
//	    log.Fatal(err)
//	}
//
// No error is recovered locally and nothing is retried; every failure is
// returned to the caller.
//
// # Concurrency
//
// A Client is immutable after New and safe for concurrent use. Each call is
// an independent subprocess invocation: the SDK imposes no mutual exclusion,
// so two concurrent Run calls against the same session may interleave at the
// session level. Serialize in the caller when ordering matters. The SDK sets
// no timeouts of its own; bound a hung binary with a context deadline.
//
// # Requirements
//
// The sessh binary must be installed and available in PATH, or configured
// explicitly with WithBinPath. Interactive attach is not available through
// the SDK (streams are piped, not inherited); use `sessh attach` directly.
package sessh
