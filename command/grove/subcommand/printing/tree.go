package printing

import (
	"context"
	"fmt"

	"go.scnd.dev/open/grove/command/grove/app"
	"go.scnd.dev/open/grove/util"
)

type Command struct {
	Path    string `arg:"" optional:"" help:"Path to render, defaults to the root."`
	TypeTag string `help:"Only consider groups with this type tag."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	ctx := context.Background()

	// * resolve node
	node, err := app.Node(command.Path, command.TypeTag)
	if err != nil {
		return err
	}

	// * render tree
	rendered, err := util.RenderTree(ctx, node)
	if err != nil {
		return err
	}

	fmt.Print(rendered)
	return nil
}
