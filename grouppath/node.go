package grouppath

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// Node is a view over one path of the virtual tree. It owns no state beyond
// the path and the store handle; virtual vs concrete is recomputed from the
// store on every query.
type Node struct {
	Path  *Path
	Store Store
}

func NewNode(store Store, path *Path) *Node {
	return &Node{
		Path:  path,
		Store: store,
	}
}

// Root constructs the node for the empty root path.
func Root(store Store, options ...Option) *Node {
	path, _ := NewPath("", options...)
	return NewNode(store, path)
}

func (r *Node) Child(raw string) (*Node, error) {
	path, err := r.Path.Child(raw)
	if err != nil {
		return nil, err
	}
	return NewNode(r.Store, path), nil
}

func (r *Node) Parent() *Node {
	parent := r.Path.Parent()
	if parent == nil {
		return nil
	}
	return NewNode(r.Store, parent)
}

// Exists reports whether a group with this exact label is stored, using the
// store's count query so the record is never loaded.
func (r *Node) Exists(ctx context.Context) (bool, error) {
	count, err := r.Store.CountByLabel(ctx, r.Path.String(), r.Path.TypeTag())
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Node) IsVirtual(ctx context.Context) (bool, error) {
	exists, err := r.Exists(ctx)
	return !exists, err
}

func (r *Node) HasGroup(ctx context.Context) (bool, error) {
	return r.Exists(ctx)
}

// Group returns the stored record, or nil when the node is virtual.
func (r *Node) Group(ctx context.Context) (*Group, error) {
	return r.Store.GetByLabel(ctx, r.Path.String(), r.Path.TypeTag())
}

func (r *Node) GetOrCreateGroup(ctx context.Context) (*Group, bool, error) {
	return r.Store.GetOrCreateByLabel(ctx, r.Path.String(), r.Path.TypeTag())
}

// DeleteGroup removes the concrete record at this path. A virtual node is a
// no-op; the node itself stays usable and flips to virtual on the next check.
func (r *Node) DeleteGroup(ctx context.Context) error {
	group, err := r.Group(ctx)
	if err != nil {
		return err
	}
	if group == nil {
		return nil
	}
	return r.Store.Delete(ctx, group)
}

// Children derives the direct children from a full label listing: every label
// deeper than this node and sharing its segment prefix contributes its
// truncated candidate path, deduplicated so many descendants collapse into a
// single child. Malformed labels are skipped with a warning, never aborting
// the enumeration. Each call re-runs the query.
func (r *Node) Children(ctx context.Context) ([]*Node, error) {
	labels, err := r.Store.ListLabels(ctx, r.Path.TypeTag())
	if err != nil {
		return nil, err
	}

	// * derive distinct child prefixes
	delimiter := r.Path.Delimiter()
	prefix := r.Path.Segments()
	yielded := make(map[string]bool)
	children := make([]*Node, 0)
	for _, label := range labels {
		segments := strings.Split(label, delimiter)
		if len(segments) <= len(prefix) {
			continue
		}

		candidate := strings.Join(segments[:len(prefix)+1], delimiter)
		if yielded[candidate] {
			continue
		}
		if !equalSegments(segments[:len(prefix)], prefix) {
			continue
		}
		yielded[candidate] = true

		path, err := NewPath(candidate, WithDelimiter(delimiter), WithTypeTag(r.Path.TypeTag()))
		if err != nil {
			slog.Warn("invalid label encountered while listing children", "label", candidate)
			continue
		}
		children = append(children, NewNode(r.Store, path))
	}

	sort.Slice(children, func(i, j int) bool {
		return children[i].Path.Less(children[j].Path)
	})

	return children, nil
}

// Walk visits the subtree depth first in pre-order, re-querying the store at
// every level. The traversal is finite because paths lengthen by one segment
// per level and the label set is finite.
func (r *Node) Walk(ctx context.Context, fn func(node *Node) error) error {
	children, err := r.Children(ctx)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := fn(child); err != nil {
			return err
		}
		if err := child.Walk(ctx, fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkList collects Walk output in visit order.
func (r *Node) WalkList(ctx context.Context) ([]*Node, error) {
	nodes := make([]*Node, 0)
	err := r.Walk(ctx, func(node *Node) error {
		nodes = append(nodes, node)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// Contains reports whether a direct child's final segment equals key. Scans
// the full children listing on every call.
func (r *Node) Contains(ctx context.Context, key string) (bool, error) {
	children, err := r.Children(ctx)
	if err != nil {
		return false, err
	}
	for _, child := range children {
		if child.Path.Name() == key {
			return true, nil
		}
	}
	return false, nil
}

// SubGroups counts the concrete groups in the subtree below this node. The
// node itself is not counted.
func (r *Node) SubGroups(ctx context.Context) (int, error) {
	count := 0
	err := r.Walk(ctx, func(node *Node) error {
		exists, err := node.Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Len counts direct children.
func (r *Node) Len(ctx context.Context) (int, error) {
	children, err := r.Children(ctx)
	if err != nil {
		return 0, err
	}
	return len(children), nil
}

func equalSegments(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
