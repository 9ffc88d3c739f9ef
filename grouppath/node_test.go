package grouppath_test

import (
	"context"
	"testing"

	"go.scnd.dev/open/grove/grouppath"
	"go.scnd.dev/open/grove/store/memory"
)

func seed(t *testing.T, store grouppath.Store, typeTag string, labels ...string) {
	t.Helper()
	for _, label := range labels {
		if _, _, err := store.GetOrCreateByLabel(context.Background(), label, typeTag); err != nil {
			t.Fatalf("unable to seed %q: %v", label, err)
		}
	}
}

func paths(nodes []*grouppath.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.Path.String())
	}
	return out
}

func equalStrings(a []string, b []string) bool {
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

func TestNodeBasic(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, "", "a", "a/b", "a/c/d", "a/c/e/g", "a/f")

	root := grouppath.Root(store)

	// Test containment
	ok, err := root.Contains(ctx, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected root to contain a")
	}
	ok, err = root.Contains(ctx, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected root not to contain x")
	}

	// Test root is virtual
	virtual, err := root.IsVirtual(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !virtual {
		t.Error("expected root to be virtual")
	}

	// Test concrete node
	a, err := root.Child("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	virtual, err = a.IsVirtual(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if virtual {
		t.Error("expected a to be concrete")
	}
	group, err := a.Group(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group == nil || *group.Label != "a" {
		t.Fatalf("expected group a, got %+v", group)
	}

	// Test get-or-create on an existing label
	_, created, err := a.GetOrCreateGroup(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created to be false for existing group")
	}

	// Test child counts
	count, err := root.Len(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 root child, got %d", count)
	}
	count, err = a.Len(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 children of a, got %d", count)
	}

	// Test children derivation with virtual flags
	children, err := a.Children(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []struct {
		path    string
		virtual bool
	}{
		{"a/b", false},
		{"a/c", true},
		{"a/f", false},
	}
	if len(children) != len(expected) {
		t.Fatalf("expected %d children, got %v", len(expected), paths(children))
	}
	for i, want := range expected {
		if children[i].Path.String() != want.path {
			t.Errorf("expected child %q, got %q", want.path, children[i].Path.String())
		}
		virtual, err := children[i].IsVirtual(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if virtual != want.virtual {
			t.Errorf("expected %q virtual=%v, got %v", want.path, want.virtual, virtual)
		}
	}

	// Test parent derivation
	if children[0].Parent().Path.String() != "a" {
		t.Errorf("expected parent a, got %q", children[0].Parent().Path.String())
	}

	// Test walk yields every distinct prefix exactly once
	walked, err := root.WalkList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantWalk := []string{"a", "a/b", "a/c", "a/c/d", "a/c/e", "a/c/e/g", "a/f"}
	if !equalStrings(paths(walked), wantWalk) {
		t.Errorf("expected walk %v, got %v", wantWalk, paths(walked))
	}
}

func TestNodeDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, "", "a", "a/b")

	root := grouppath.Root(store)
	a, err := root.Child("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Test deletion flips the node to virtual
	if err := a.DeleteGroup(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	virtual, err := a.IsVirtual(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !virtual {
		t.Error("expected a to be virtual after deletion")
	}

	// Test a second delete is a no-op
	if err := a.DeleteGroup(ctx); err != nil {
		t.Fatalf("expected no-op delete, got %v", err)
	}

	// Test the path reappears as virtual while descendants remain
	walked, err := root.WalkList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(paths(walked), []string{"a", "a/b"}) {
		t.Errorf("expected virtual a to remain in walk, got %v", paths(walked))
	}

	// Test the path disappears once the descendant is gone
	b, err := root.Child("a/b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.DeleteGroup(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	walked, err = root.WalkList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(walked) != 0 {
		t.Errorf("expected empty walk, got %v", paths(walked))
	}
}

func TestNodeSubGroups(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, "", "a", "a/b", "a/c/d", "a/c/e/g", "a/f")

	root := grouppath.Root(store)
	a, err := root.Child("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Test the subtree count excludes the node itself and virtual paths
	count, err := a.SubGroups(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 sub-groups under a, got %d", count)
	}

	// Test counts for the children of a
	expected := map[string]int{"a/b": 0, "a/c": 2, "a/f": 0}
	children, err := a.Children(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, child := range children {
		count, err := child.SubGroups(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != expected[child.Path.String()] {
			t.Errorf("expected %d sub-groups under %q, got %d", expected[child.Path.String()], child.Path.String(), count)
		}
	}
}

func TestNodeTypeTagIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, "user", "a", "a/b", "a/c/d", "a/c/e/g")
	seed(t, store, "upf", "a/c/e", "a/f")

	// Test unfiltered walk sees every prefix
	root := grouppath.Root(store)
	walked, err := root.WalkList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "a/b", "a/c", "a/c/d", "a/c/e", "a/c/e/g", "a/f"}
	if !equalStrings(paths(walked), want) {
		t.Errorf("expected %v, got %v", want, paths(walked))
	}

	// Test tag-scoped walk only sees matching labels
	tagged := grouppath.Root(store, grouppath.WithTypeTag("upf"))
	walked, err = tagged.WalkList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"a", "a/c", "a/c/e", "a/f"}
	if !equalStrings(paths(walked), want) {
		t.Errorf("expected %v, got %v", want, paths(walked))
	}

	// Test the tagged a/b is invisible to the other tag
	a, err := tagged.Child("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := a.Contains(ctx, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected a/b to be hidden from the upf tag")
	}
}

func TestNodeEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, "", "f1/f2/f3a", "f1/f2/f3b", "f1/f2/f3-c/f4a")

	root := grouppath.Root(store)
	ok, err := root.Contains(ctx, "f1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected root to contain f1")
	}

	f2, err := root.Child("f1/f2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children, err := f2.Children(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []struct {
		name    string
		virtual bool
	}{
		{"f3-c", true},
		{"f3a", false},
		{"f3b", false},
	}
	if len(children) != len(expected) {
		t.Fatalf("expected 3 children, got %v", paths(children))
	}
	for i, want := range expected {
		if children[i].Path.Name() != want.name {
			t.Errorf("expected child %q, got %q", want.name, children[i].Path.Name())
		}
		virtual, err := children[i].IsVirtual(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if virtual != want.virtual {
			t.Errorf("expected %q virtual=%v, got %v", want.name, want.virtual, virtual)
		}
	}

	f3a, err := root.Child("f1/f2/f3a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	virtual, err := f3a.IsVirtual(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if virtual {
		t.Error("expected f1/f2/f3a to be concrete")
	}
}

func TestNodeMalformedLabel(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, "", "a/ok", "a//b")

	// Test the malformed label is skipped without aborting enumeration
	root := grouppath.Root(store)
	a, err := root.Child("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	children, err := a.Children(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(paths(children), []string{"a/ok"}) {
		t.Errorf("expected only a/ok, got %v", paths(children))
	}
}

func TestNodeIdempotentVirtual(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, "", "a/b")

	a, err := grouppath.Root(store).Child("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, err := a.IsVirtual(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.IsVirtual(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected repeated IsVirtual to agree")
	}
}
