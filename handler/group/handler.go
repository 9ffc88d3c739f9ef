package groupEndpoint

import (
	"go.scnd.dev/open/grove/grouppath"
)

type Handler struct {
	store grouppath.Store
}

func Handle(
	store grouppath.Store,
) *Handler {
	return &Handler{
		store: store,
	}
}
