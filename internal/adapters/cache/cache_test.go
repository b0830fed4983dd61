package cache

import (
	"context"
	"testing"
)

func TestCache(t *testing.T) {
	ctx := context.Background()
	c := New[string, int](4)

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("Get() reported a hit on an empty cache")
	}

	c.Set(ctx, "a", 1)
	c.Set(ctx, "b", 2)

	if v, ok := c.Get(ctx, "a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Set(ctx, "a", 3)
	if v, _ := c.Get(ctx, "a"); v != 3 {
		t.Errorf("Get(a) after overwrite = %d, want 3", v)
	}

	c.Delete(ctx, "a")
	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("Get(a) reported a hit after Delete")
	}
	if c.Len() != 1 {
		t.Errorf("Len() after delete = %d, want 1", c.Len())
	}
}
