package endpoint

import (
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/grove/common"
	groupEndpoint "go.scnd.dev/open/grove/handler/group"
)

func Bind(app *fiber.App, config *common.Config, telemetry *common.Telemetry, group *groupEndpoint.Handler) {
	// * middleware
	if telemetry != nil {
		app.Use(telemetry.Middleware())
	}

	// * group routes
	api := app.Group("/api")
	groups := api.Group("/group")
	groups.Get("/list", group.HandleList)
	groups.Get("/tree", group.HandleTree)
	groups.Get("/show", group.HandleShow)
	groups.Post("/create", group.HandleCreate, common.Jwt(config))
	groups.Post("/delete", group.HandleDelete, common.Jwt(config))
}
