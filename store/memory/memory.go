// Package memory holds groups in process memory. It backs the library tests
// and serves as the zero-configuration store for local use.
package memory

import (
	"context"
	"sync"

	"go.scnd.dev/open/grove/grouppath"
)

type Store struct {
	mutex  sync.Mutex
	serial uint64
	groups []*grouppath.Group
}

func New() *Store {
	return &Store{
		groups: make([]*grouppath.Group, 0),
	}
}

func (r *Store) match(group *grouppath.Group, label string, typeTag string) bool {
	if *group.Label != label {
		return false
	}
	return typeTag == "" || (group.TypeTag != nil && *group.TypeTag == typeTag)
}

func (r *Store) ListLabels(ctx context.Context, typeTag string) ([]string, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	labels := make([]string, 0, len(r.groups))
	for _, group := range r.groups {
		if typeTag != "" && (group.TypeTag == nil || *group.TypeTag != typeTag) {
			continue
		}
		labels = append(labels, *group.Label)
	}
	return labels, nil
}

func (r *Store) CountByLabel(ctx context.Context, label string, typeTag string) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var count int64
	for _, group := range r.groups {
		if r.match(group, label, typeTag) {
			count++
		}
	}
	return count, nil
}

func (r *Store) GetByLabel(ctx context.Context, label string, typeTag string) (*grouppath.Group, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, group := range r.groups {
		if r.match(group, label, typeTag) {
			return group, nil
		}
	}
	return nil, nil
}

func (r *Store) GetOrCreateByLabel(ctx context.Context, label string, typeTag string) (*grouppath.Group, bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, group := range r.groups {
		if r.match(group, label, typeTag) {
			return group, false, nil
		}
	}

	// * create group
	r.serial++
	id := r.serial
	l := label
	group := &grouppath.Group{
		Id:    &id,
		Label: &l,
	}
	if typeTag != "" {
		tag := typeTag
		group.TypeTag = &tag
	}
	r.groups = append(r.groups, group)

	return group, true, nil
}

func (r *Store) SetDescription(ctx context.Context, group *grouppath.Group, description string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	group.Description = &description
	return nil
}

func (r *Store) Delete(ctx context.Context, group *grouppath.Group) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, candidate := range r.groups {
		if candidate == group || (group.Id != nil && candidate.Id != nil && *candidate.Id == *group.Id) {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return nil
		}
	}
	return grouppath.NewKeyNotFound(*group.Label)
}
