package subprocess

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/commandAGI/sessh-go/internal/errors"
)

// Result is the captured outcome of one sessh invocation.
type Result struct {
	// ExitCode is the process exit code. Signal termination carries no
	// numeric code and is normalized to 0.
	ExitCode int

	// Stdout is the whitespace-trimmed standard output.
	Stdout string

	// Stderr is the whitespace-trimmed standard error.
	Stderr string
}

// Invoke runs one sessh operation to completion.
//
// All three standard streams are piped: stdin is closed immediately (the
// binary never reads it in JSON mode), stdout and stderr are drained
// concurrently into buffers as bytes arrive. Invoke blocks until the process
// exits and both streams close; it enforces no timeout of its own — cancel
// ctx to kill a hung binary.
//
// A non-zero exit is not an error here. Classifying the Result is the
// payload package's job, since the binary emits a structured error payload
// on stdout even for failure exits. Invoke itself only fails when the
// process cannot be spawned or its pipes break, returning ConnectionError.
func Invoke(ctx context.Context, log *slog.Logger, binPath string, args, env []string) (Result, error) {
	log = log.With("component", "invoker")

	log.Debug("Invoking sessh", "bin_path", binPath, "args", args)

	//nolint:gosec // G204: Subprocess launching with dynamic args is expected for CLI invocation
	cmd := exec.CommandContext(ctx, binPath, args...)
	cmd.Env = env

	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Error("Failed to create stdin pipe", "error", err)

		return Result{}, &errors.ConnectionError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Error("Failed to create stdout pipe", "error", err)

		return Result{}, &errors.ConnectionError{Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		log.Error("Failed to create stderr pipe", "error", err)

		return Result{}, &errors.ConnectionError{Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		log.Error("Failed to start sessh process", "error", err)

		return Result{}, &errors.ConnectionError{Err: fmt.Errorf("start process: %w", err)}
	}

	log.Info("sessh process started", "pid", cmd.Process.Pid)

	// No input is ever sent; close stdin so the binary sees EOF.
	_ = stdin.Close()

	var stdoutBuf, stderrBuf bytes.Buffer

	var g errgroup.Group

	g.Go(func() error {
		_, err := io.Copy(&stdoutBuf, stdout)

		return err
	})

	g.Go(func() error {
		_, err := io.Copy(&stderrBuf, stderr)

		return err
	})

	// Reads must complete before Wait() closes the pipes.
	// See: https://pkg.go.dev/os/exec#Cmd.StdoutPipe
	drainErr := g.Wait()

	exitCode := 0

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			log.Error("Failed waiting for sessh process", "error", err)

			return Result{}, &errors.ConnectionError{Err: fmt.Errorf("wait: %w", err)}
		}

		exitCode = exitErr.ExitCode()

		// Signal termination reports -1: no numeric code is not itself a
		// failure, and the payload on stdout still decides the outcome.
		if exitCode < 0 {
			log.Debug("sessh process terminated without an exit code, treating as 0")

			exitCode = 0
		}
	}

	if drainErr != nil {
		log.Error("Failed draining sessh output", "error", drainErr)

		return Result{}, &errors.ConnectionError{Err: fmt.Errorf("drain output: %w", drainErr)}
	}

	result := Result{
		ExitCode: exitCode,
		Stdout:   strings.TrimSpace(stdoutBuf.String()),
		Stderr:   strings.TrimSpace(stderrBuf.String()),
	}

	log.Info("sessh process exited",
		"exit_code", result.ExitCode,
		"stdout_len", len(result.Stdout),
		"stderr_len", len(result.Stderr),
	)

	return result, nil
}
