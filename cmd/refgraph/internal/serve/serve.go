package serve

import (
	"context"
	"fmt"
	"net/http"

	"github.com/refgraph/refgraph"
	"github.com/refgraph/refgraph/cmd/refgraph/internal/load"
	"github.com/refgraph/refgraph/server"
)

type Cmd struct {
	load.Flags
	Port int `help:"Port to listen on (default: config 'serve.port', else 7317)." short:"p"`
}

func (c *Cmd) Run() error {
	cfg, err := c.Resolve()
	if err != nil {
		return err
	}

	logger := c.Logger()
	project, err := refgraph.Build(context.Background(), cfg, logger)
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}

	port := c.Port
	if port == 0 {
		port = cfg.Serve.Port
	}
	if port == 0 {
		port = refgraph.DefaultPort
	}

	srv := server.New(project, logger)
	addr := fmt.Sprintf("localhost:%d", port)
	logger.Info("serving documentation model", "addr", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
