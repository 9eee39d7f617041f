package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetMissThenHit(t *testing.T) {
	c := New[string, int](4, StringKey)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.Add("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", v, ok)
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Fatalf("stats = %+v; want 1 hit, 1 miss", st)
	}
}

func TestUpdateExisting(t *testing.T) {
	c := New[string, int](4, StringKey)
	c.Add("a", 1)
	c.Add("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Fatalf("Get(a) = %d; want 2", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d; want 1", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	// Identity hasher keeps every key in one shard so capacity is exact.
	c := New[uint64, int](2, func(k uint64) uint64 { return 0 })

	c.Add(1, 1)
	c.Add(2, 2)
	c.Get(1) // 2 is now least recently used
	c.Add(3, 3)

	if _, ok := c.Get(2); ok {
		t.Fatal("expected 2 to be evicted")
	}
	for _, k := range []uint64{1, 3} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("expected %d to survive eviction", k)
		}
	}
	if st := c.Stats(); st.Evictions != 1 {
		t.Fatalf("evictions = %d; want 1", st.Evictions)
	}
}

func TestDefaultCapacity(t *testing.T) {
	c := New[string, int](0, StringKey)
	for i := 0; i < 100; i++ {
		c.Add(fmt.Sprintf("key-%d", i), i)
	}
	if c.Len() != 100 {
		t.Fatalf("Len = %d; want 100", c.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](64, StringKey)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("key-%d", i%50)
				c.Add(key, g*1000+i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() == 0 || c.Len() > 50 {
		t.Fatalf("Len = %d; want 1..50", c.Len())
	}
}
