package main

import (
	"go.scnd.dev/open/grove/common"
	"go.scnd.dev/open/grove/endpoint"
	groupEndpoint "go.scnd.dev/open/grove/handler/group"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			common.NewConfig,
			common.NewTelemetry,
			common.NewStore,
			common.Fiber,
			groupEndpoint.Handle,
		),
		fx.Invoke(
			endpoint.Bind,
		),
	).Run()
}
