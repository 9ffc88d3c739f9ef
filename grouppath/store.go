package grouppath

import (
	"context"
)

// Group is the backing record: an exact label, an optional type tag and a
// free-form description. Id is set by stores that assign identities.
type Group struct {
	Id          *uint64 `json:"id,omitempty"`
	Label       *string `json:"label"`
	TypeTag     *string `json:"typeTag,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Store is the backing contract the tree view requires. An empty typeTag
// means "do not filter"; a non-empty tag restricts every operation to groups
// carrying that tag.
type Store interface {
	// ListLabels returns the labels of all groups in one pass.
	ListLabels(ctx context.Context, typeTag string) ([]string, error)

	// CountByLabel is a cheap existence check, it must not materialize the
	// full record.
	CountByLabel(ctx context.Context, label string, typeTag string) (int64, error)

	// GetByLabel returns nil without error when no group matches.
	GetByLabel(ctx context.Context, label string, typeTag string) (*Group, error)

	// GetOrCreateByLabel reports whether the call created the group.
	GetOrCreateByLabel(ctx context.Context, label string, typeTag string) (*Group, bool, error)

	SetDescription(ctx context.Context, group *Group, description string) error

	Delete(ctx context.Context, group *Group) error
}
