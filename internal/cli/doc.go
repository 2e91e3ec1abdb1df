// Package cli provides binary discovery and command building for the sessh
// binary.
//
// # Binary Discovery
//
// The Discoverer interface locates the sessh binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    BinPath: "",           // Optional explicit path
//	    Logger:  slog.Default(),
//	})
//	binPath, err := discoverer.Discover()
//
// Discovery searches in the following order:
//  1. Explicit path in Config.BinPath (if provided)
//  2. System PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, ~/.local/bin)
//
// # Command Building
//
// The package provides functions to build the per-operation argument list and
// the subprocess environment:
//
//	args := cli.BuildArgs("logs", options, "50")
//	env := cli.BuildEnvironment(options)
//
// BuildEnvironment always forces the binary's JSON output mode via SESSH_JSON
// and injects identity and proxy-jump variables only when configured.
package cli
