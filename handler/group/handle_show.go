package groupEndpoint

import (
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/grove/type/response"
)

// HandleShow
// @grove handler
func (r *Handler) HandleShow(c fiber.Ctx) error {
	// * resolve node
	node, err := r.node(c.Query("path"), c.Query("typeTag"))
	if err != nil {
		return err
	}

	// * construct entry
	entry, err := r.entry(c.Context(), node)
	if err != nil {
		return err
	}

	// * response
	return c.JSON(response.Success(entry))
}
