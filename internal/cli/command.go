package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/commandAGI/sessh-go/internal/config"
)

// EnvJSON forces the binary's structured (JSON) output mode.
// Every invocation carries it; human-oriented output is never parsed.
const EnvJSON = "SESSH_JSON"

// EnvSSHKey points the binary at an SSH private key.
const EnvSSHKey = "SESSH_SSH_KEY"

// EnvProxyJump names an intermediate hop host for the SSH connection.
const EnvProxyJump = "SESSH_PROXY_JUMP"

// portOps lists the operations whose grammar accepts a trailing port.
// Capture and injection operations address an already-open session and
// take no port.
var portOps = map[string]bool{
	"open":   true,
	"status": true,
	"close":  true,
}

// BuildArgs constructs the argument list for one sessh operation.
//
// The grammar is positional and order-sensitive:
//
//	<op> <alias> <host> [extra...] [port]
//
// Free-form extras (a command or key sequence) must already include the "--"
// separator so the binary never misparses them as flags. The configured port
// is appended only for operations that accept one.
func BuildArgs(op string, opts *config.Options, extra ...string) []string {
	args := make([]string, 0, 3+len(extra)+1)
	args = append(args, op, opts.Alias, opts.Host)
	args = append(args, extra...)

	if opts.Port > 0 && portOps[op] {
		args = append(args, strconv.Itoa(opts.Port))
	}

	return args
}

// BuildEnvironment constructs the environment for the sessh process.
//
// The caller's environment is inherited, JSON output mode is always forced,
// and identity/proxy-jump variables are set only when configured — an unset
// option is absent, never present with an empty value.
func BuildEnvironment(opts *config.Options) []string {
	env := os.Environ()

	env = append(env, EnvJSON+"=1")

	if opts.Identity != "" {
		env = append(env, fmt.Sprintf("%s=%s", EnvSSHKey, opts.Identity))
	}

	if opts.ProxyJump != "" {
		env = append(env, fmt.Sprintf("%s=%s", EnvProxyJump, opts.ProxyJump))
	}

	// Add or override with user-provided environment variables
	for key, value := range opts.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
