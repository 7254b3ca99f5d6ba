package memo

import "slices"

// Op names a memoized operation. It doubles as the cache key, so it must be
// unique among the memoized operations of a single type.
type Op string

// Memory is the cache behind one instance's memoized operations.
// Each entry holds the result of one operation; nil is a legal cached value
// and is distinguishable from an absent entry via the ok result of Get.
//
// The zero value is an empty cache ready for use. A Memory must not be
// copied after first use.
//
// Memory is not safe for concurrent use. Memoized instances are expected to
// live on a single goroutine; callers that share an instance across
// goroutines must provide their own synchronization.
type Memory struct {
	entries map[Op]any
	frozen  bool
}

// Get returns the value cached for op. The second result reports whether the
// entry exists, so a cached nil comes back as (nil, true).
func (m *Memory) Get(op Op) (any, bool) {
	v, ok := m.entries[op]
	return v, ok
}

// Contains reports whether op has a cached value, nil included.
func (m *Memory) Contains(op Op) bool {
	_, ok := m.entries[op]
	return ok
}

// Write caches value for op, replacing any previous entry.
func (m *Memory) Write(op Op, value any) {
	if m.entries == nil {
		m.entries = make(map[Op]any)
	}
	m.entries[op] = value
}

// Merge writes every entry of values into the cache.
func (m *Memory) Merge(values map[Op]any) {
	if len(values) == 0 {
		return
	}
	if m.entries == nil {
		m.entries = make(map[Op]any, len(values))
	}
	for op, v := range values {
		m.entries[op] = v
	}
}

// Delete removes the entry for op, forcing the next Fetch of op to recompute.
// Deleting an absent entry is a no-op.
func (m *Memory) Delete(op Op) {
	delete(m.entries, op)
}

// Clear removes every entry. Other instances are unaffected.
func (m *Memory) Clear() {
	clear(m.entries)
}

// Fetch returns the value cached for op, computing and caching it first if
// absent. A failed computation caches nothing, so the next Fetch of op runs
// the computation again.
func (m *Memory) Fetch(op Op, compute func() (any, error)) (any, error) {
	if v, ok := m.entries[op]; ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	m.Write(op, v)
	return v, nil
}

// Snapshot returns a copy of the cache contents. Mutating the returned map
// does not affect the cache.
func (m *Memory) Snapshot() map[Op]any {
	out := make(map[Op]any, len(m.entries))
	for op, v := range m.entries {
		out[op] = v
	}
	return out
}

// Ops returns the cached operation names in sorted order.
func (m *Memory) Ops() []Op {
	ops := make([]Op, 0, len(m.entries))
	for op := range m.entries {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	return len(m.entries)
}

// Freeze materializes the cache storage and marks the Memory frozen.
// It exists for owner types that freeze themselves: calling it before an
// instance is published guarantees every later operation finds the cache in
// place. The cache itself stays mutable, so operations memoized after the
// freeze still land. Freeze is idempotent.
func (m *Memory) Freeze() {
	if m.entries == nil {
		m.entries = make(map[Op]any)
	}
	m.frozen = true
}

// Frozen reports whether Freeze has been called. The Memory never acts on
// the flag; it is for owner types enforcing their own immutability.
func (m *Memory) Frozen() bool {
	return m.frozen
}
