package groupEndpoint

import (
	"context"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/grove/grouppath"
	"go.scnd.dev/open/grove/type/payload"
	"go.scnd.dev/open/grove/type/response"
)

// HandleList
// @grove handler
func (r *Handler) HandleList(c fiber.Ctx) error {
	// * parse query
	recursive := c.Query("recursive") == "true"

	// * resolve node
	node, err := r.node(c.Query("path"), c.Query("typeTag"))
	if err != nil {
		return err
	}

	// * collect nodes
	var nodes []*grouppath.Node
	if recursive {
		nodes, err = node.WalkList(c.Context())
	} else {
		nodes, err = node.Children(c.Context())
	}
	if err != nil {
		return err
	}

	// * construct entries
	entries := make([]*payload.GroupEntry, 0, len(nodes))
	for _, n := range nodes {
		entry, err := r.entry(c.Context(), n)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	// * response
	return c.JSON(response.Success(entries))
}

func (r *Handler) node(path string, typeTag string) (*grouppath.Node, error) {
	options := make([]grouppath.Option, 0, 1)
	if typeTag != "" {
		options = append(options, grouppath.WithTypeTag(typeTag))
	}

	p, err := grouppath.NewPath(path, options...)
	if err != nil {
		return nil, err
	}
	return grouppath.NewNode(r.store, p), nil
}

func (r *Handler) entry(ctx context.Context, node *grouppath.Node) (*payload.GroupEntry, error) {
	group, err := node.Group(ctx)
	if err != nil {
		return nil, err
	}
	count, err := node.SubGroups(ctx)
	if err != nil {
		return nil, err
	}

	entry := &payload.GroupEntry{
		Path:      gut.Ptr(node.Path.String()),
		Name:      gut.Ptr(node.Path.Name()),
		Virtual:   gut.Ptr(group == nil),
		SubGroups: &count,
	}
	if group != nil {
		entry.Description = group.Description
	}
	return entry, nil
}
