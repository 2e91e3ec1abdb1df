package cli

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/commandAGI/sessh-go/internal/errors"
)

// BinaryName is the bare name of the sessh binary, resolved via PATH when no
// explicit path is configured.
const BinaryName = "sessh"

// Config holds configuration for binary discovery.
type Config struct {
	// BinPath is an explicit binary path that skips PATH search.
	// If empty, discovery will search PATH and common locations.
	BinPath string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the sessh binary.
type Discoverer interface {
	// Discover locates the sessh binary.
	// Returns the path to the binary or a BinaryNotFoundError.
	Discover() (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new binary discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the sessh binary.
func (d *discoverer) Discover() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.BinPath != "" {
		d.log.Debug("Using explicit binary path", "bin_path", d.cfg.BinPath)

		if _, err := os.Stat(d.cfg.BinPath); err == nil {
			return d.cfg.BinPath, nil
		}

		d.log.Debug("Explicit binary path not found", "bin_path", d.cfg.BinPath)

		return "", &errors.BinaryNotFoundError{SearchedPaths: []string{d.cfg.BinPath}}
	}

	searchedPaths := make([]string, 0, 4)

	// Search in PATH
	d.log.Debug("Searching for 'sessh' in PATH")

	if path, err := exec.LookPath(BinaryName); err == nil {
		d.log.Debug("Found 'sessh' in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	// Check common locations
	commonPaths := []string{
		"/usr/local/bin/sessh",
		"/usr/bin/sessh",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin/sessh"))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found binary at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("sessh binary not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.BinaryNotFoundError{SearchedPaths: searchedPaths}
}
