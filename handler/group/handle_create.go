package groupEndpoint

import (
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/grove/type/payload"
	"go.scnd.dev/open/grove/type/response"
)

// HandleCreate
// @grove handler
func (r *Handler) HandleCreate(c fiber.Ctx) error {
	// * parse body
	body := new(payload.GroupCreateRequest)
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

	// * get or create group
	group, created, err := node.GetOrCreateGroup(c.Context())
	if err != nil {
		return err
	}

	// * set description
	if body.Description != nil {
		if err := r.store.SetDescription(c.Context(), group, *body.Description); err != nil {
			return err
		}
	}

	// * response
	return c.JSON(response.Success(&payload.GroupCreateResponse{
		Label:   group.Label,
		Created: &created,
	}))
}
