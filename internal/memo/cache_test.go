package memo

import (
	"fmt"
	"testing"
)

func TestCache_GetResolvesOncePerKey(t *testing.T) {
	t.Parallel()

	calls := map[string]int{}
	c := New(64, func(key string) int {
		calls[key]++
		return len(key)
	})

	for i := 0; i < 3; i++ {
		if got := c.Get("alpha"); got != 5 {
			t.Fatalf("Get(alpha) = %d, want 5", got)
		}
	}
	if got := c.Get("hi"); got != 2 {
		t.Fatalf("Get(hi) = %d, want 2", got)
	}

	if calls["alpha"] != 1 {
		t.Errorf("resolver ran %d times for alpha, want 1", calls["alpha"])
	}
	if calls["hi"] != 1 {
		t.Errorf("resolver ran %d times for hi, want 1", calls["hi"])
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestCache_SweepClearsAllPastThreshold(t *testing.T) {
	t.Parallel()

	const threshold = 16
	c := New(threshold, func(key int) int { return key * 2 })

	for i := 0; i < threshold; i++ {
		c.Get(i)
	}
	if c.Sweep() {
		t.Fatalf("Sweep() cleared at exactly %d entries, want no clear", threshold)
	}
	if got := c.Len(); got != threshold {
		t.Fatalf("Len() = %d after no-op sweep, want %d", got, threshold)
	}

	c.Get(threshold) // one past the threshold
	if !c.Sweep() {
		t.Fatalf("Sweep() did not clear at %d entries", threshold+1)
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d after sweep, want 0 (clear-all, not partial)", got)
	}
}

func TestCache_ResolverRunsAgainAfterClear(t *testing.T) {
	t.Parallel()

	calls := 0
	c := New(8, func(string) string {
		calls++
		return fmt.Sprintf("v%d", calls)
	})

	if got := c.Get("k"); got != "v1" {
		t.Fatalf("Get(k) = %q, want v1", got)
	}
	c.Clear()
	if got := c.Get("k"); got != "v2" {
		t.Errorf("Get(k) after Clear = %q, want v2", got)
	}
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	calls := 0
	c := New(8, func(string) int {
		calls++
		return calls
	})

	c.Get("a")
	c.Get("b")
	c.Invalidate("a")

	if _, ok := c.Peek("a"); ok {
		t.Fatal("Peek(a) found entry after Invalidate")
	}
	if _, ok := c.Peek("b"); !ok {
		t.Fatal("Peek(b) lost entry, Invalidate should only drop its key")
	}
	if got := c.Get("a"); got != 3 {
		t.Errorf("Get(a) = %d after Invalidate, want re-resolved 3", got)
	}
}

func TestCache_Stats(t *testing.T) {
	t.Parallel()

	c := New(8, func(key string) string { return key })

	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("b")

	got := c.Stats()
	want := Stats{Hits: 2, Misses: 2, Entries: 2}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestStats_HitRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    Stats
		want float64
	}{
		{
			name: "no lookups",
			s:    Stats{},
			want: 0,
		},
		{
			name: "all hits",
			s:    Stats{Hits: 4},
			want: 1,
		},
		{
			name: "half hits",
			s:    Stats{Hits: 2, Misses: 2},
			want: 0.5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.s.HitRate(); got != tt.want {
				t.Errorf("HitRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
