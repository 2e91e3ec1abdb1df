package sessh

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a named session configuration loaded from a YAML file.
//
// A profiles file maps profile names to configurations:
//
//	agent:
//	  host: dev@build.example.com
//	  port: 2222
//	  identity: ~/.ssh/id_ed25519
//	scratch:
//	  host: me@scratch.example.com
//	  proxy_jump: bastion@jump.example.com
type Profile struct {
	// Alias names the remote session. Defaults to the profile's key in the
	// profiles file.
	Alias string `yaml:"alias"`

	// Host is the SSH target, e.g. "user@host". Required.
	Host string `yaml:"host"`

	// Port is the SSH port. Zero means the binary's default.
	Port int `yaml:"port"`

	// Bin is an explicit path to the sessh binary.
	Bin string `yaml:"bin"`

	// Identity is a path to an SSH private key.
	Identity string `yaml:"identity"`

	// ProxyJump is an intermediate hop host.
	ProxyJump string `yaml:"proxy_jump"`

	// Env holds additional environment variables for the sessh process.
	Env map[string]string `yaml:"env"`
}

// LoadProfiles reads a YAML profiles file.
//
// Profiles without an explicit alias take their key as the alias. A profile
// without a host is rejected: everything else is optional, but there is no
// sensible default target.
func LoadProfiles(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var profiles map[string]Profile

	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}

	for name, p := range profiles {
		if p.Host == "" {
			return nil, fmt.Errorf("profile %q: host is required", name)
		}

		if p.Alias == "" {
			p.Alias = name
			profiles[name] = p
		}
	}

	return profiles, nil
}

// Client builds a Client from the profile. Extra options are applied after
// the profile's own settings and take precedence.
func (p Profile) Client(extra ...Option) Client {
	opts := make([]Option, 0, 5+len(extra))

	if p.Port != 0 {
		opts = append(opts, WithPort(p.Port))
	}

	if p.Bin != "" {
		opts = append(opts, WithBinPath(p.Bin))
	}

	if p.Identity != "" {
		opts = append(opts, WithIdentity(p.Identity))
	}

	if p.ProxyJump != "" {
		opts = append(opts, WithProxyJump(p.ProxyJump))
	}

	if len(p.Env) > 0 {
		opts = append(opts, WithEnv(p.Env))
	}

	opts = append(opts, extra...)

	return New(p.Alias, p.Host, opts...)
}
