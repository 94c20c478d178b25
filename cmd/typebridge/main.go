package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/broady/typebridge/cmd/typebridge/internal/check"
	"github.com/broady/typebridge/cmd/typebridge/internal/names"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Names   names.Cmd  `cmd:"" help:"Resolve manifest types and write their canonical names as JSON."`
	Check   check.Cmd  `cmd:"" help:"Summarize the module catalog and report unresolved types."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("typebridge"),
		kong.Description("Resolve and name runtime types against a catalog of modules."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
