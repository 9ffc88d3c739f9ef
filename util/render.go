package util

import (
	"bytes"
	"context"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/grove/grouppath"
)

// RenderTree walks the subtree and renders it with gtree. Walk visits
// parents before their descendants, so every parent branch already exists
// when a child is added.
func RenderTree(ctx context.Context, node *grouppath.Node) (string, error) {
	rootName := node.Path.String()
	if rootName == "" {
		rootName = node.Path.Delimiter()
	}

	root := gtree.NewRoot(rootName)
	branches := map[string]*gtree.Node{
		node.Path.String(): root,
	}

	err := node.Walk(ctx, func(child *grouppath.Node) error {
		parent := root
		if p, ok := branches[child.Path.Parent().String()]; ok {
			parent = p
		}
		branches[child.Path.String()] = parent.Add(child.Path.Name())
		return nil
	})
	if err != nil {
		return "", err
	}

	buffer := new(bytes.Buffer)
	if err := gtree.OutputProgrammably(buffer, root); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
