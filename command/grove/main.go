package main

import (
	"github.com/alecthomas/kong"
	"github.com/lithammer/dedent"
	"go.scnd.dev/open/grove/command/grove/app"
	"go.scnd.dev/open/grove/command/grove/subcommand/creating"
	"go.scnd.dev/open/grove/command/grove/subcommand/deleting"
	"go.scnd.dev/open/grove/command/grove/subcommand/listing"
	"go.scnd.dev/open/grove/command/grove/subcommand/printing"
	"go.scnd.dev/open/grove/common"
)

type Command struct {
	Verbose bool              `help:"Enable verbose output." short:"v"`
	Ls      *listing.Command  `cmd:"ls" help:"List the child groups of a path."`
	Tree    *printing.Command `cmd:"tree" help:"Render a path's subtree."`
	Create  *creating.Command `cmd:"create" help:"Create a group at a label."`
	Delete  *deleting.Command `cmd:"delete" help:"Delete the group at a label."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("grove"),
		kong.Description(dedent.Dedent(`
			Grove Command Line Interface

			Navigates a flat set of labeled groups as a delimiter-separated
			tree. Labels with no stored group of their own appear as virtual
			nodes.`)),
	)

	config := common.NewConfig()
	err := ctx.Run(&app.App{
		Verbose: command.Verbose,
		Config:  config,
		Store:   common.NewStore(config),
	})
	ctx.FatalIfErrorf(err)
}
