// Package load resolves the effective configuration for CLI commands
// from flags and an optional refgraph.toml file.
package load

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/refgraph/refgraph"
)

// Flags are the configuration-affecting flags shared by commands.
type Flags struct {
	Config     string   `help:"Path to the config file." default:"refgraph.toml" short:"c"`
	Packages   []string `arg:"" optional:"" help:"Go package paths to analyze (overrides the config file)."`
	Roots      []string `help:"Extract only these declarations and what they reference."`
	Unexported bool     `help:"Include unexported declarations."`
	Verbose    bool     `help:"Enable debug logging." short:"v"`
}

// Resolve produces the effective config. Packages given on the command
// line take precedence; otherwise the config file must exist.
func (f *Flags) Resolve() (*refgraph.Config, error) {
	if len(f.Packages) > 0 {
		cfg := &refgraph.Config{
			Packages:          f.Packages,
			Roots:             f.Roots,
			IncludeUnexported: f.Unexported,
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if !refgraph.ConfigExists(f.Config) {
		return nil, fmt.Errorf("no packages given and config file %s not found", f.Config)
	}
	cfg, err := refgraph.LoadConfig(f.Config)
	if err != nil {
		return nil, err
	}
	if len(f.Roots) > 0 {
		cfg.Roots = f.Roots
	}
	if f.Unexported {
		cfg.IncludeUnexported = true
	}
	return cfg, nil
}

// Logger builds the command logger writing to stderr.
func (f *Flags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
