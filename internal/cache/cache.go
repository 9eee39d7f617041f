package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount must be a power of two so shard selection can use a mask.
	shardCount = 16
	shardMask  = shardCount - 1

	// defaultCapacity is the per-shard entry limit when none is given.
	defaultCapacity = 256
)

// StringKey hashes a string key with FNV-1a for shard selection.
func StringKey(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// LRU is a thread-safe sharded cache with least-recently-used eviction.
// Values are stored as-is; callers must not mutate a value after adding
// it.
type LRU[K comparable, V any] struct {
	shards   [shardCount]shard[K, V]
	hasher   func(K) uint64
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	head    *entry[K, V]
	tail    *entry[K, V]
}

type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// New creates a cache holding up to capacity entries per shard. A
// capacity of zero or less selects a default.
func New[K comparable, V any](capacity int, hasher func(K) uint64) *LRU[K, V] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	c := &LRU[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*entry[K, V])
	}
	return c
}

// Get returns the cached value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	s := &c.shards[c.hasher(key)&shardMask]
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.moveToFront(e)
	v := e.value
	s.mu.Unlock()
	c.hits.Add(1)
	return v, true
}

// Add stores value under key, evicting the least recently used entry
// when the shard is full.
func (c *LRU[K, V]) Add(key K, value V) {
	s := &c.shards[c.hasher(key)&shardMask]
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.moveToFront(e)
		return
	}
	for len(s.entries) >= c.capacity {
		old := s.tail
		if old == nil {
			break
		}
		s.unlink(old)
		delete(s.entries, old.key)
		c.evictions.Add(1)
	}
	e := &entry[K, V]{key: key, value: value}
	s.pushFront(e)
	s.entries[key] = e
}

// Len returns the number of entries across all shards.
func (c *LRU[K, V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Stats returns a snapshot of the hit and eviction counters.
func (c *LRU[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (s *shard[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *shard[K, V]) moveToFront(e *entry[K, V]) {
	if e == s.head {
		return
	}
	s.unlink(e)
	s.pushFront(e)
}

func (s *shard[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
}
