// Package refgraph converts resolved Go type information into a
// documentation type model: a graph of typed nodes with cross-references
// resolved by fully-qualified name.
package refgraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/refgraph/refgraph/gosource"
	"github.com/refgraph/refgraph/model"
)

// DefaultConfigFile is the config file name looked up in the working
// directory when no explicit path is given.
const DefaultConfigFile = "refgraph.toml"

// Config holds the project configuration.
type Config struct {
	// Packages are the Go package paths to analyze.
	Packages []string `toml:"packages" validate:"required,min=1,dive,required"`

	// Roots restricts extraction to the named declarations and
	// everything they reference. Empty means all exported declarations.
	Roots []string `toml:"roots"`

	// IncludeUnexported extracts unexported declarations too.
	IncludeUnexported bool `toml:"include_unexported"`

	// Output is the path the gen command writes the model JSON to.
	// Empty means stdout.
	Output string `toml:"output"`

	// Serve configures the serve command.
	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the model browsing server.
type ServeConfig struct {
	// Port to listen on. Defaults to 7317.
	Port int `toml:"port" validate:"omitempty,min=1,max=65535"`
}

// DefaultPort is the serve command's default listen port.
const DefaultPort = 7317

// LoadConfig reads and validates a TOML config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ConfigExists reports whether a config file exists at path.
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Build constructs the documentation model described by the config.
func Build(ctx context.Context, cfg *Config, logger *slog.Logger) (*model.Project, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return gosource.Build(ctx, gosource.Options{
		Packages:          cfg.Packages,
		Roots:             cfg.Roots,
		IncludeUnexported: cfg.IncludeUnexported,
		Logger:            logger,
	})
}
