package app

import (
	"go.scnd.dev/open/grove/common"
	"go.scnd.dev/open/grove/grouppath"
)

type App struct {
	Verbose bool
	Config  *common.Config
	Store   grouppath.Store
}

// Node resolves a path argument into a tree node over the configured store.
func (r *App) Node(path string, typeTag string) (*grouppath.Node, error) {
	options := make([]grouppath.Option, 0, 1)
	if typeTag != "" {
		options = append(options, grouppath.WithTypeTag(typeTag))
	}

	p, err := grouppath.NewPath(path, options...)
	if err != nil {
		return nil, err
	}
	return grouppath.NewNode(r.Store, p), nil
}
