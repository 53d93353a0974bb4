package check

import (
	"context"
	"fmt"
	"os"

	"github.com/refgraph/refgraph"
	"github.com/refgraph/refgraph/cmd/refgraph/internal/load"
)

type Cmd struct {
	load.Flags
	Strict bool `help:"Exit nonzero when the build produced warnings."`
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

	fmt.Printf("%d declarations across %d packages\n",
		len(project.Declarations), len(project.Packages))

	for _, w := range project.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Code, w.Message)
	}
	if c.Strict && len(project.Warnings) > 0 {
		return fmt.Errorf("%d warnings", len(project.Warnings))
	}
	return nil
}
