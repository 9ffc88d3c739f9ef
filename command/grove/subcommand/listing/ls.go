package listing

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"go.scnd.dev/open/grove/command/grove/app"
	"go.scnd.dev/open/grove/grouppath"
)

type Command struct {
	Path            string `arg:"" optional:"" help:"Path to list, defaults to the root."`
	Recursive       bool   `help:"Recursively list all descendants." short:"R"`
	Long            bool   `help:"Show sub-group counts." short:"l"`
	WithDescription bool   `help:"Show group descriptions." short:"d"`
	GroupsOnly      bool   `help:"Hide virtual paths." short:"g"`
	TypeTag         string `help:"Only consider groups with this type tag."`
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

	// * collect nodes
	var nodes []*grouppath.Node
	if command.Recursive {
		nodes, err = node.WalkList(ctx)
	} else {
		nodes, err = node.Children(ctx)
	}
	if err != nil {
		return err
	}

	// * short listing
	if !command.Long {
		for _, n := range nodes {
			if command.GroupsOnly {
				virtual, err := n.IsVirtual(ctx)
				if err != nil {
					return err
				}
				if virtual {
					continue
				}
			}
			fmt.Println(n.Path.String())
		}
		return nil
	}

	// * long listing
	writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if command.WithDescription {
		fmt.Fprintln(writer, "PATH\tSUB-GROUPS\tDESCRIPTION")
	} else {
		fmt.Fprintln(writer, "PATH\tSUB-GROUPS")
	}
	for _, n := range nodes {
		group, err := n.Group(ctx)
		if err != nil {
			return err
		}
		if command.GroupsOnly && group == nil {
			continue
		}
		count, err := n.SubGroups(ctx)
		if err != nil {
			return err
		}
		if command.WithDescription {
			description := "-"
			if group != nil && group.Description != nil {
				description = *group.Description
			}
			fmt.Fprintf(writer, "%s\t%d\t%s\n", n.Path.String(), count, description)
		} else {
			fmt.Fprintf(writer, "%s\t%d\n", n.Path.String(), count)
		}
	}
	return writer.Flush()
}
