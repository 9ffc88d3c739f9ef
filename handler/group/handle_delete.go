package groupEndpoint

import (
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/grove/grouppath"
	"go.scnd.dev/open/grove/type/payload"
	"go.scnd.dev/open/grove/type/response"
)

// HandleDelete
// @grove handler
func (r *Handler) HandleDelete(c fiber.Ctx) error {
	// * parse body
	body := new(payload.GroupDeleteRequest)
	if err := c.Bind().Body(body); err != nil {
		return err
	}
	if err := gut.Validate(body); err != nil {
		return err
	}

	// * resolve node
	typeTag := ""
	if body.TypeTag != nil {
		typeTag = *body.TypeTag
	}
	node, err := r.node(*body.Label, typeTag)
	if err != nil {
		return err
	}

	// * keyed deletion asserts existence
	group, err := node.Group(c.Context())
	if err != nil {
		return err
	}
	if group == nil {
		return grouppath.NewKeyNotFound(*body.Label)
	}
	if err := r.store.Delete(c.Context(), group); err != nil {
		return err
	}

	// * response
	return c.JSON(response.SuccessMessage("group deleted", nil))
}
