// Package memo provides the per-instance cache behind memoized accessors.
//
// Memox turns argument-less accessors into memoized ones: the underlying
// computation runs at most once per instance, and later calls are served
// from a cache that lives inside the instance itself. This package owns
// that cache; package memoize builds the accessors on top of it.
//
// # The model
//
// Every memoized instance carries one Memory, a small map from operation
// name (Op) to computed value. The rules are deliberately narrow:
//   - one slot per operation, keyed by name, not by arguments
//   - nil is a value; absence is reported separately (comma-ok)
//   - a failed computation caches nothing, so the next call retries
//   - instances never share entries
//
// There is no eviction, no TTL, and no locking: a memoized instance is
// expected to live on a single goroutine, and the cache is bounded by the
// number of memoized operations on the type.
//
// # The handle
//
// Types opt in by embedding Memo, which provides the Memorex handle for
// direct cache manipulation:
//
//	type Token struct {
//	    memo.Memo
//	}
//
//	token.Memorex().Contains("ID")
//	token.Memorex().Delete("ID")
//	token.Memorex().Clear()
//
// Delete forces a single accessor to recompute on its next call; Clear
// resets the whole instance. Neither touches any other instance.
//
// # Lifecycle
//
// The zero value of Memory is ready: no constructor is required, and the
// first write materializes storage. Owner types that freeze themselves can
// call Freeze beforehand so the cache is in place before the instance is
// published; cached values stay readable and late memoizations still land.
package memo
