package creating

import (
	"context"
	"fmt"

	"go.scnd.dev/open/grove/command/grove/app"
)

type Command struct {
	Label       string `arg:"" help:"Label of the group to create."`
	Description string `help:"Description to set on the group." short:"d"`
	TypeTag     string `help:"Type tag to create the group with."`
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

	// * get or create group
	group, created, err := node.GetOrCreateGroup(ctx)
	if err != nil {
		return err
	}

	// * set description
	if command.Description != "" {
		if err := app.Store.SetDescription(ctx, group, command.Description); err != nil {
			return err
		}
	}

	if created {
		fmt.Printf("created %s\n", *group.Label)
	} else {
		fmt.Printf("%s already exists\n", *group.Label)
	}
	return nil
}
