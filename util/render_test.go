package util

import (
	"context"
	"strings"
	"testing"

	"go.scnd.dev/open/grove/grouppath"
	"go.scnd.dev/open/grove/store/memory"
)

func TestRenderTree(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	for _, label := range []string{"f1/f2/f3a", "f1/f2/f3b", "f1/f2/f3-c/f4a"} {
		if _, _, err := store.GetOrCreateByLabel(ctx, label, ""); err != nil {
			t.Fatalf("unable to seed %q: %v", label, err)
		}
	}

	rendered, err := RenderTree(ctx, grouppath.Root(store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if lines[0] != "/" {
		t.Errorf("expected root line /, got %q", lines[0])
	}
	if len(lines) != 7 {
		t.Errorf("expected 7 lines, got %d:\n%s", len(lines), rendered)
	}
	for _, name := range []string{"f1", "f2", "f3a", "f3b", "f3-c", "f4a"} {
		if !strings.Contains(rendered, name) {
			t.Errorf("expected rendered tree to contain %q:\n%s", name, rendered)
		}
	}
}

func TestRenderTreeSubPath(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	for _, label := range []string{"a/b", "a/c"} {
		if _, _, err := store.GetOrCreateByLabel(ctx, label, ""); err != nil {
			t.Fatalf("unable to seed %q: %v", label, err)
		}
	}

	node, err := grouppath.Root(store).Child("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rendered, err := RenderTree(ctx, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(rendered, "a\n") {
		t.Errorf("expected root line a, got:\n%s", rendered)
	}
}
