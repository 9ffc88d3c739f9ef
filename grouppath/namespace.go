package grouppath

import (
	"context"
	"sort"
	"strings"
)

// Namespace is the flat accessor variant: it fuses path accumulation and
// direct record access in one object instead of the Path/Node/Attr split.
// The frozen flag turns it into a read-only view; Set and Delete then fail
// with FrozenError.
type Namespace struct {
	Store     Store
	Delimiter string
	Frozen    bool
	Segments  []string
	TypeTag   string
}

type NamespaceOption func(n *Namespace)

func NamespaceDelimiter(delimiter string) NamespaceOption {
	return func(n *Namespace) {
		n.Delimiter = delimiter
	}
}

func NamespaceTypeTag(typeTag string) NamespaceOption {
	return func(n *Namespace) {
		n.TypeTag = typeTag
	}
}

func NamespaceFrozen() NamespaceOption {
	return func(n *Namespace) {
		n.Frozen = true
	}
}

func NewNamespace(store Store, options ...NamespaceOption) *Namespace {
	n := &Namespace{
		Store:     store,
		Delimiter: DefaultDelimiter,
		Segments:  []string{},
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// Label is the accumulated delimiter-joined path, empty at the root.
func (r *Namespace) Label() string {
	return strings.Join(r.Segments, r.Delimiter)
}

type Entry struct {
	Name    *string `json:"name"`
	IsGroup *bool   `json:"isGroup"`
}

type childInfo struct {
	name           string
	label          string
	concrete       bool
	hasDescendants bool
}

func (r *Namespace) deriveChildren(ctx context.Context) ([]*childInfo, error) {
	labels, err := r.Store.ListLabels(ctx, r.TypeTag)
	if err != nil {
		return nil, err
	}

	// * index stored labels for concrete checks
	stored := make(map[string]bool, len(labels))
	for _, label := range labels {
		stored[label] = true
	}

	// * derive distinct direct children
	seen := make(map[string]*childInfo)
	order := make([]*childInfo, 0)
	for _, label := range labels {
		segments := strings.Split(label, r.Delimiter)
		if len(segments) <= len(r.Segments) {
			continue
		}
		if !equalSegments(segments[:len(r.Segments)], r.Segments) {
			continue
		}

		childLabel := strings.Join(segments[:len(r.Segments)+1], r.Delimiter)
		info, ok := seen[childLabel]
		if !ok {
			info = &childInfo{
				name:     segments[len(r.Segments)],
				label:    childLabel,
				concrete: stored[childLabel],
			}
			seen[childLabel] = info
			order = append(order, info)
		}
		if len(segments) > len(r.Segments)+1 {
			info.hasDescendants = true
		}
	}

	sort.Slice(order, func(i, j int) bool {
		return order[i].label < order[j].label
	})

	return order, nil
}

// Entries lists (segment name, is concrete record) pairs for each direct
// child, re-querying the store on every call.
func (r *Namespace) Entries(ctx context.Context) ([]*Entry, error) {
	children, err := r.deriveChildren(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(children))
	for _, child := range children {
		name := child.name
		concrete := child.concrete
		entries = append(entries, &Entry{
			Name:    &name,
			IsGroup: &concrete,
		})
	}
	return entries, nil
}

// Lookup navigates to the named child. When the child is a stored leaf label
// with nothing below it, the Group is returned directly; otherwise a child
// Namespace is returned. Exactly one of the two results is non-nil.
func (r *Namespace) Lookup(ctx context.Context, name string) (*Namespace, *Group, error) {
	if _, err := validate(name, r.Delimiter); err != nil {
		return nil, nil, err
	}

	// * resolve multi-segment keys one segment at a time
	if first, rest, ok := strings.Cut(name, r.Delimiter); ok {
		ns, _, err := r.Lookup(ctx, first)
		if err != nil {
			return nil, nil, err
		}
		if ns == nil {
			return nil, nil, NewKeyNotFound(r.join(name))
		}
		return ns.Lookup(ctx, rest)
	}

	children, err := r.deriveChildren(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, child := range children {
		if child.name != name {
			continue
		}
		if child.concrete && !child.hasDescendants {
			group, err := r.Store.GetByLabel(ctx, child.label, r.TypeTag)
			if err != nil {
				return nil, nil, err
			}
			return nil, group, nil
		}
		return r.sub(name), nil, nil
	}

	return nil, nil, NewKeyNotFound(r.join(name))
}

// Set creates or fetches the group at the computed label and sets its
// description. Fails with FrozenError in read-only mode.
func (r *Namespace) Set(ctx context.Context, key string, description string) (*Group, error) {
	label := r.join(key)
	if r.Frozen {
		return nil, NewFrozen(label)
	}
	if _, err := validate(key, r.Delimiter); err != nil {
		return nil, err
	}

	group, _, err := r.Store.GetOrCreateByLabel(ctx, label, r.TypeTag)
	if err != nil {
		return nil, err
	}
	if err := r.Store.SetDescription(ctx, group, description); err != nil {
		return nil, err
	}
	group.Description = &description
	return group, nil
}

// Delete removes the group at the computed label. Unlike get-style access,
// keyed deletion asserts existence and fails with KeyNotFoundError when no
// exact match is stored.
func (r *Namespace) Delete(ctx context.Context, key string) error {
	label := r.join(key)
	if r.Frozen {
		return NewFrozen(label)
	}
	if _, err := validate(key, r.Delimiter); err != nil {
		return err
	}

	group, err := r.Store.GetByLabel(ctx, label, r.TypeTag)
	if err != nil {
		return err
	}
	if group == nil {
		return NewKeyNotFound(label)
	}
	return r.Store.Delete(ctx, group)
}

func (r *Namespace) join(key string) string {
	if len(r.Segments) == 0 {
		return key
	}
	return r.Label() + r.Delimiter + key
}

func (r *Namespace) sub(name string) *Namespace {
	segments := make([]string, 0, len(r.Segments)+1)
	segments = append(segments, r.Segments...)
	segments = append(segments, name)

	return &Namespace{
		Store:     r.Store,
		Delimiter: r.Delimiter,
		Frozen:    r.Frozen,
		Segments:  segments,
		TypeTag:   r.TypeTag,
	}
}
