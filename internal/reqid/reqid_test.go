package reqid

import (
	"context"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx, id := NewContext(context.Background())
	got, ok := FromContext(ctx)
	if !ok || got != id {
		t.Fatalf("expected %d from context, got %d ok=%v", id, got, ok)
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("unexpected id in empty context")
	}
}

func TestNestedRunsGetDistinctIDs(t *testing.T) {
	outer, outerID := NewContext(context.Background())
	inner, innerID := NewContext(outer)
	if outerID == innerID {
		t.Fatalf("expected distinct ids, both were %d", outerID)
	}
	if got, _ := FromContext(inner); got != innerID {
		t.Fatalf("expected inner id %d, got %d", innerID, got)
	}
}
