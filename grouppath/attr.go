package grouppath

import (
	"context"
	"regexp"
	"sort"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Attr exposes a node's children as a fixed set of named entries for chained
// navigation. Children are evaluated once at construction; children whose
// final segment is not a legal identifier are dropped rather than renamed.
type Attr struct {
	node  *Node
	names map[string]*Node
}

func NewAttr(ctx context.Context, node *Node) (*Attr, error) {
	children, err := node.Children(ctx)
	if err != nil {
		return nil, err
	}

	// * retain identifier-named children
	names := make(map[string]*Node)
	for _, child := range children {
		name := child.Path.Name()
		if identifierPattern.MatchString(name) {
			names[name] = child
		}
	}

	return &Attr{
		node:  node,
		names: names,
	}, nil
}

// Resolve navigates to the named child, wrapping it in a fresh Attr. An
// unknown name fails with UnknownChildError without affecting sibling
// lookups.
func (r *Attr) Resolve(ctx context.Context, name string) (*Attr, error) {
	child, ok := r.names[name]
	if !ok {
		return nil, NewUnknownChild(r.node.Path.String(), name)
	}
	return NewAttr(ctx, child)
}

// Node unwraps the navigator back to its tree node.
func (r *Attr) Node() *Node {
	return r.node
}

// Names lists the resolvable child names, sorted.
func (r *Attr) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
