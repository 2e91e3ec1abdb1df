package sessh

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSessh writes a fake sessh script that records its argv and env, emits
// stdout/stderr, and exits with the given code. It returns the script path
// and the paths of the argv/env recordings.
func fakeSessh(t *testing.T, stdout, stderr string, exitCode int) (bin, argsFile, envFile string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake binary tests require a POSIX shell")
	}

	dir := t.TempDir()
	bin = filepath.Join(dir, "sessh")
	argsFile = filepath.Join(dir, "args")
	envFile = filepath.Join(dir, "env")

	script := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > %s
env > %s
printf '%%s' %q
printf '%%s' %q >&2
exit %d
`, argsFile, envFile, stdout, stderr, exitCode)

	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	return bin, argsFile, envFile
}

func recordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func recordedEnv(t *testing.T, envFile string) []string {
	t.Helper()

	data, err := os.ReadFile(envFile)
	require.NoError(t, err)

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// TestNew_NeverFails tests that construction is pure assignment for any
// configuration.
func TestNew_NeverFails(t *testing.T) {
	require.NotNil(t, New("agent", "user@host"))
	require.NotNil(t, New("", ""))
	require.NotNil(t, New("agent", "user@host",
		WithPort(2222),
		WithBinPath("/nonexistent/sessh"),
		WithIdentity("/nonexistent/key"),
		WithProxyJump("bastion@jump"),
		WithEnv(map[string]string{"A": "b"}),
	))
}

// TestClient_Open tests the open round trip.
func TestClient_Open(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"open"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	resp, err := client.Open(context.Background())

	require.NoError(t, err)
	require.True(t, resp.OK)
	require.Equal(t, "open", resp.Op)
	require.Equal(t, []string{"open", "agent", "user@host"}, recordedArgs(t, argsFile))
}

// TestClient_OpenWithPort tests that a configured port reaches the argv.
func TestClient_OpenWithPort(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"open"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin), WithPort(2222))

	_, err := client.Open(context.Background())

	require.NoError(t, err)
	require.Equal(t, []string{"open", "agent", "user@host", "2222"}, recordedArgs(t, argsFile))
}

// TestClient_Run tests that the command travels after the separator and the
// response stays generic.
func TestClient_Run(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"run"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	resp, err := client.Run(context.Background(), "ls -la --color")

	require.NoError(t, err)
	require.True(t, resp.OK)
	require.Equal(t, "run", resp.Op)
	require.Equal(t,
		[]string{"run", "agent", "user@host", "--", "ls -la --color"},
		recordedArgs(t, argsFile))
}

// TestClient_Logs tests the logs round trip with an explicit line count.
func TestClient_Logs(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"logs","output":"hi\n","lines":1}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	resp, err := client.Logs(context.Background(), 50)

	require.NoError(t, err)
	require.True(t, resp.OK)
	require.Equal(t, "logs", resp.Op)
	require.Equal(t, "hi\n", resp.Output)
	require.Equal(t, 1, resp.Lines)
	require.Equal(t, []string{"logs", "agent", "user@host", "50"}, recordedArgs(t, argsFile))
}

// TestClient_LogsDefaultLines tests the 300-line default for non-positive
// counts.
func TestClient_LogsDefaultLines(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"logs","output":"","lines":0}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	_, err := client.Logs(context.Background(), 0)

	require.NoError(t, err)
	require.Equal(t, []string{"logs", "agent", "user@host", "300"}, recordedArgs(t, argsFile))
}

// TestClient_Pane tests the pane round trip and its default line count.
func TestClient_Pane(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"pane","output":"$ \n","lines":1}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	resp, err := client.Pane(context.Background(), -1)

	require.NoError(t, err)
	require.Equal(t, "pane", resp.Op)
	require.Equal(t, "$ \n", resp.Output)
	require.Equal(t, []string{"pane", "agent", "user@host", "300"}, recordedArgs(t, argsFile))
}

// TestClient_Status tests the two liveness indicators.
func TestClient_Status(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"status","master":1,"session":0}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	resp, err := client.Status(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, resp.Master)
	require.Equal(t, 0, resp.Session)
	require.Equal(t, []string{"status", "agent", "user@host"}, recordedArgs(t, argsFile))
}

// TestClient_Close tests the close round trip.
func TestClient_Close(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"close"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin), WithPort(22))

	resp, err := client.Close(context.Background())

	require.NoError(t, err)
	require.Equal(t, "close", resp.Op)
	require.Equal(t, []string{"close", "agent", "user@host", "22"}, recordedArgs(t, argsFile))
}

// TestClient_Keys tests raw key injection.
func TestClient_Keys(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"keys"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	resp, err := client.Keys(context.Background(), "C-c C-c")

	require.NoError(t, err)
	require.Equal(t, "keys", resp.Op)
	require.Equal(t,
		[]string{"keys", "agent", "user@host", "--", "C-c C-c"},
		recordedArgs(t, argsFile))
}

// TestClient_ForcesJSONEnv tests that every invocation carries SESSH_JSON=1.
func TestClient_ForcesJSONEnv(t *testing.T) {
	bin, _, envFile := fakeSessh(t, `{"ok":true,"op":"open"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	_, err := client.Open(context.Background())

	require.NoError(t, err)
	require.Contains(t, recordedEnv(t, envFile), "SESSH_JSON=1")
}

// TestClient_IdentityEnv tests that the identity variable is present exactly
// when configured.
func TestClient_IdentityEnv(t *testing.T) {
	bin, _, envFile := fakeSessh(t, `{"ok":true,"op":"open"}`, "", 0)

	withKey := New("agent", "user@host", WithBinPath(bin), WithIdentity("/home/me/.ssh/key"))
	_, err := withKey.Open(context.Background())
	require.NoError(t, err)
	require.Contains(t, recordedEnv(t, envFile), "SESSH_SSH_KEY=/home/me/.ssh/key")

	withoutKey := New("agent", "user@host", WithBinPath(bin))
	_, err = withoutKey.Open(context.Background())
	require.NoError(t, err)

	for _, kv := range recordedEnv(t, envFile) {
		require.False(t, strings.HasPrefix(kv, "SESSH_SSH_KEY="),
			"identity must be absent when not configured, got %q", kv)
	}
}

// TestClient_EnvCopiedAtConstruction tests that mutating the caller's map
// after New does not leak into later invocations: the configuration is
// immutable once the client is built.
func TestClient_EnvCopiedAtConstruction(t *testing.T) {
	bin, _, envFile := fakeSessh(t, `{"ok":true,"op":"open"}`, "", 0)

	callerEnv := map[string]string{"SESSH_TEST_EXTRA": "original"}
	client := New("agent", "user@host", WithBinPath(bin), WithEnv(callerEnv))

	callerEnv["SESSH_TEST_EXTRA"] = "mutated"
	callerEnv["SESSH_TEST_LATE"] = "1"

	_, err := client.Open(context.Background())
	require.NoError(t, err)

	env := recordedEnv(t, envFile)
	require.Contains(t, env, "SESSH_TEST_EXTRA=original")
	require.NotContains(t, env, "SESSH_TEST_EXTRA=mutated")
	require.NotContains(t, env, "SESSH_TEST_LATE=1")
}

// TestClient_ProxyJumpEnv tests the intermediate-hop variable.
func TestClient_ProxyJumpEnv(t *testing.T) {
	bin, _, envFile := fakeSessh(t, `{"ok":true,"op":"open"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin), WithProxyJump("bastion@jump"))

	_, err := client.Open(context.Background())

	require.NoError(t, err)
	require.Contains(t, recordedEnv(t, envFile), "SESSH_PROXY_JUMP=bastion@jump")
}

// TestClient_NonZeroExitWithPayload tests that a structured error payload on
// a failure exit still decodes.
func TestClient_NonZeroExitWithPayload(t *testing.T) {
	bin, _, _ := fakeSessh(t, `{"ok":false,"op":"open"}`, "session create failed", 1)
	client := New("agent", "user@host", WithBinPath(bin))

	resp, err := client.Open(context.Background())

	require.NoError(t, err)
	require.False(t, resp.OK)
}

// TestClient_NonZeroExitEmptyStdout tests that the raised message is stderr
// verbatim.
func TestClient_NonZeroExitEmptyStdout(t *testing.T) {
	bin, _, _ := fakeSessh(t, "", "connection refused", 1)
	client := New("agent", "user@host", WithBinPath(bin))

	_, err := client.Open(context.Background())

	require.Error(t, err)
	require.Equal(t, "connection refused", err.Error())

	var invErr *InvocationError
	require.True(t, stderrors.As(err, &invErr))
	require.Equal(t, 1, invErr.ExitCode)
}

// TestClient_UndecodableOutput tests that non-JSON output raises with the
// raw text included, even on a zero exit.
func TestClient_UndecodableOutput(t *testing.T) {
	bin, _, _ := fakeSessh(t, "not json", "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	_, err := client.Logs(context.Background(), 10)

	require.Error(t, err)
	require.Contains(t, err.Error(), "not json")
	require.IsType(t, &DecodeError{}, err)
}

// TestClient_BinaryNotFound tests that a bad explicit path surfaces as
// BinaryNotFoundError before anything is spawned.
func TestClient_BinaryNotFound(t *testing.T) {
	client := New("agent", "user@host", WithBinPath("/nonexistent/path/to/sessh"))

	_, err := client.Open(context.Background())

	require.Error(t, err)
	require.IsType(t, &BinaryNotFoundError{}, err)
}

// TestClient_AttachAlwaysErrors tests that attach raises unconditionally and
// never spawns the binary.
func TestClient_AttachAlwaysErrors(t *testing.T) {
	bin, argsFile, _ := fakeSessh(t, `{"ok":true,"op":"attach"}`, "", 0)
	client := New("agent", "user@host", WithBinPath(bin))

	err := client.Attach(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, ErrInteractiveAttach)

	// The fake binary records argv on every spawn; no recording means no
	// subprocess ran.
	_, statErr := os.Stat(argsFile)
	require.True(t, os.IsNotExist(statErr), "attach must not spawn the binary")
}

// TestNewSessionAlias tests alias format and uniqueness.
func TestNewSessionAlias(t *testing.T) {
	a := NewSessionAlias()
	b := NewSessionAlias()

	require.True(t, strings.HasPrefix(a, "sessh-"))
	require.Equal(t, strings.ToLower(a), a)
	require.NotEqual(t, a, b)
}
