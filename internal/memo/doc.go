// Package memo provides the bounded in-memory lookup caches that back
// workspace introspection.
//
// Two layers with different eviction policies compose into one resolver
// chain:
//
//   - [Cache]: a coarse memo that grows freely between maintenance sweeps.
//     [Cache.Sweep] clears the whole map once it exceeds its threshold;
//     clear-all, never per-entry eviction.
//
//   - [LRU]: a true recency cache with per-key eviction at a fixed
//     capacity, used underneath the coarse layer for the expensive
//     resolvers (filesystem stat, config lookup).
//
// A resolver function is injected at construction and called exactly once
// per distinct key between clears. Resolvers must be idempotent; there is
// no stampede protection.
//
// # Concurrency
//
// Neither cache is safe for concurrent use. The introspection core is
// synchronous and single-goroutine; callers that share a cache across
// goroutines must add their own locking around every access.
package memo
