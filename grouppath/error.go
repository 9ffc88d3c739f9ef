package grouppath

import (
	"fmt"
)

type InvalidPathError struct {
	Path *string `json:"path,omitempty"`
}

func NewInvalidPath(path string) *InvalidPathError {
	return &InvalidPathError{
		Path: &path,
	}
}

func (r *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path: %s", *r.Path)
}

type UnknownChildError struct {
	Path *string `json:"path,omitempty"`
	Name *string `json:"name,omitempty"`
}

func NewUnknownChild(path string, name string) *UnknownChildError {
	return &UnknownChildError{
		Path: &path,
		Name: &name,
	}
}

func (r *UnknownChildError) Error() string {
	return fmt.Sprintf("no child named %s under %s", *r.Name, *r.Path)
}

type FrozenError struct {
	Label *string `json:"label,omitempty"`
}

func NewFrozen(label string) *FrozenError {
	return &FrozenError{
		Label: &label,
	}
}

func (r *FrozenError) Error() string {
	return fmt.Sprintf("namespace is frozen, cannot mutate %s", *r.Label)
}

type KeyNotFoundError struct {
	Key *string `json:"key,omitempty"`
}

func NewKeyNotFound(key string) *KeyNotFoundError {
	return &KeyNotFoundError{
		Key: &key,
	}
}

func (r *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no group with label %s", *r.Key)
}
