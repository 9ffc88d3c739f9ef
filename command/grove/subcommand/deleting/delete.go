package deleting

import (
	"context"
	"fmt"

	"go.scnd.dev/open/grove/command/grove/app"
	"go.scnd.dev/open/grove/grouppath"
)

type Command struct {
	Label   string `arg:"" help:"Label of the group to delete."`
	TypeTag string `help:"Only consider groups with this type tag."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	ctx := context.Background()

	// * resolve node
	node, err := app.Node(command.Label, command.TypeTag)
	if err != nil {
		return err
	}

	// * keyed deletion asserts existence
	group, err := node.Group(ctx)
	if err != nil {
		return err
	}
	if group == nil {
		return grouppath.NewKeyNotFound(command.Label)
	}
	if err := app.Store.Delete(ctx, group); err != nil {
		return err
	}

	fmt.Printf("deleted %s\n", command.Label)
	return nil
}
