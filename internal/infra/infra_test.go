package infra

import (
	"context"
	"testing"
	"time"
)

// fakeClock steps time manually for deterministic TTL tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestCacheExpiryWithFakeClock(t *testing.T) {
	clk := &fakeClock{t: time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCacheWithClock(5*time.Minute, clk.now)

	c.Set("estimate", 500_000_000.0)

	if v, ok := c.Get("estimate"); !ok || v.(float64) != 500_000_000.0 {
		t.Fatal("expected fresh entry to be returned")
	}

	clk.advance(4 * time.Minute)
	if _, ok := c.Get("estimate"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	clk.advance(2 * time.Minute)
	if _, ok := c.Get("estimate"); ok {
		t.Fatal("entry survived past its TTL")
	}
}

func TestCacheEntryTimestamps(t *testing.T) {
	clk := &fakeClock{t: time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCacheWithClock(time.Minute, clk.now)

	c.Set("k", "v")
	entry, ok := c.GetEntry("k")
	if !ok {
		t.Fatal("expected entry")
	}
	if !entry.StoredAt.Equal(clk.t) {
		t.Errorf("StoredAt %v, want %v", entry.StoredAt, clk.t)
	}
	if !entry.ExpiresAt.Equal(clk.t.Add(time.Minute)) {
		t.Errorf("ExpiresAt %v, want %v", entry.ExpiresAt, clk.t.Add(time.Minute))
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("k", 1)
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry survived invalidation")
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	c := NewCacheWithClock(time.Hour, clk.now)

	c.SetWithTTL("short", 1, time.Second)
	clk.advance(2 * time.Second)
	if _, ok := c.Get("short"); ok {
		t.Fatal("custom TTL not honored")
	}
}

func TestRateLimiterAllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if err := rl.Wait(ctx); err == nil {
		t.Fatal("expected Wait to block once tokens are exhausted")
	}
}
