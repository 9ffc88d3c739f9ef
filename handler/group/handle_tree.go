package groupEndpoint

import (
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/grove/util"
)

// HandleTree
// @grove handler
func (r *Handler) HandleTree(c fiber.Ctx) error {
	// * resolve node
	node, err := r.node(c.Query("path"), c.Query("typeTag"))
	if err != nil {
		return err
	}

	// * render tree
	rendered, err := util.RenderTree(c.Context(), node)
	if err != nil {
		return err
	}

	return c.SendString(rendered)
}
