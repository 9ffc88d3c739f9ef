// Package grouppath presents a flat collection of labeled groups as a
// delimiter-separated virtual tree. Labels such as "a/b/c" are read as paths;
// segments without a stored group of their own are virtual nodes, segments
// matching a stored label are concrete. Nothing is cached: every traversal
// re-reads the backing store, so external mutation is visible on the next call.
package grouppath

import (
	"strings"
)

const DefaultDelimiter = "/"

type Path struct {
	path      string
	segments  []string
	delimiter string
	typeTag   string
}

type Option func(p *Path)

func WithDelimiter(delimiter string) Option {
	return func(p *Path) {
		p.delimiter = delimiter
	}
}

func WithTypeTag(typeTag string) Option {
	return func(p *Path) {
		p.typeTag = typeTag
	}
}

func NewPath(raw string, options ...Option) (*Path, error) {
	p := &Path{
		delimiter: DefaultDelimiter,
	}
	for _, option := range options {
		option(p)
	}

	// * validate raw path
	path, err := validate(raw, p.delimiter)
	if err != nil {
		return nil, err
	}

	p.path = path
	if path != "" {
		p.segments = strings.Split(path, p.delimiter)
	}

	return p, nil
}

// validate normalizes a raw path. A path equal to the bare delimiter is the
// root; a path starting or ending with the delimiter, or containing a doubled
// delimiter, is rejected.
func validate(raw string, delimiter string) (string, error) {
	if raw == delimiter {
		return "", nil
	}
	if strings.HasPrefix(raw, delimiter) || strings.HasSuffix(raw, delimiter) || strings.Contains(raw, delimiter+delimiter) {
		return "", NewInvalidPath(raw)
	}
	return raw, nil
}

func (r *Path) String() string {
	return r.path
}

func (r *Path) Segments() []string {
	segments := make([]string, len(r.segments))
	copy(segments, r.segments)
	return segments
}

func (r *Path) Delimiter() string {
	return r.delimiter
}

func (r *Path) TypeTag() string {
	return r.typeTag
}

func (r *Path) IsRoot() bool {
	return r.path == ""
}

// Name returns the final segment, or the empty string for the root.
func (r *Path) Name() string {
	if len(r.segments) == 0 {
		return ""
	}
	return r.segments[len(r.segments)-1]
}

// Child appends raw to the path. Raw may span several segments; every
// intermediate parent/child link stays well defined because the joined result
// is validated as a whole.
func (r *Path) Child(raw string) (*Path, error) {
	if _, err := validate(raw, r.delimiter); err != nil {
		return nil, err
	}

	joined := raw
	if r.path != "" {
		joined = r.path + r.delimiter + raw
	}

	return NewPath(joined, WithDelimiter(r.delimiter), WithTypeTag(r.typeTag))
}

// Parent is recomputed by truncating the final segment, never stored. The
// root has no parent.
func (r *Path) Parent() *Path {
	if r.IsRoot() {
		return nil
	}

	parent, _ := NewPath(
		strings.Join(r.segments[:len(r.segments)-1], r.delimiter),
		WithDelimiter(r.delimiter),
		WithTypeTag(r.typeTag),
	)
	return parent
}

// Equal compares over the (path, type tag) pair.
func (r *Path) Equal(other *Path) bool {
	if other == nil {
		return false
	}
	return r.path == other.path && r.typeTag == other.typeTag
}

// Less orders lexicographically over the (path, type tag) pair, for
// deterministic sorted traversal output.
func (r *Path) Less(other *Path) bool {
	if r.path != other.path {
		return r.path < other.path
	}
	return r.typeTag < other.typeTag
}
