package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/refgraph/refgraph"
	"github.com/refgraph/refgraph/cmd/refgraph/internal/load"
)

type Cmd struct {
	load.Flags
	Out string `help:"Output file for the model JSON (default: config 'output', else stdout)." short:"o"`
}

func (c *Cmd) Run() error {
	cfg, err := c.Resolve()
	if err != nil {
		return err
	}

	project, err := refgraph.Build(context.Background(), cfg, c.Logger())
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	data = append(data, '\n')

	out := c.Out
	if out == "" {
		out = cfg.Output
	}
	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", abs, err)
	}
	return nil
}
