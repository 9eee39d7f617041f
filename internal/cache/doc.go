// Package cache provides a small sharded LRU cache used to memoize
// expensive per-string work such as text shaping.
package cache
