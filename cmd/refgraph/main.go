package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/refgraph/refgraph/cmd/refgraph/internal/check"
	"github.com/refgraph/refgraph/cmd/refgraph/internal/gen"
	"github.com/refgraph/refgraph/cmd/refgraph/internal/serve"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Build the documentation model and emit it as JSON."`
	Check   check.Cmd  `cmd:"" help:"Build the documentation model and report warnings without emitting files."`
	Serve   serve.Cmd  `cmd:"" help:"Build the documentation model and serve it over HTTP."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("refgraph"),
		kong.Description("Documentation type-model generator for Go packages."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
