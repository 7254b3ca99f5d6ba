package memo

// GetAs returns the value cached for op asserted to type R.
// ok is false when the entry is absent or holds a different type. A cached
// nil carries no type either, so it reads as false here; use Get or
// Contains when a cached nil and an absent entry must be told apart.
func GetAs[R any](m *Memory, op Op) (res R, ok bool) {
	var raw any
	if raw, ok = m.Get(op); ok {
		res, ok = raw.(R)
	}
	return
}

// FetchAs is Fetch with a typed computation. Any existing entry for op is a
// hit: a cached nil comes back as R's zero value rather than re-running the
// computation. Only a value of a foreign type left by Write is recomputed
// and replaced.
func FetchAs[R any](m *Memory, op Op, compute func() (R, error)) (R, error) {
	if raw, ok := m.Get(op); ok {
		if v, ok := raw.(R); ok || raw == nil {
			return v, nil
		}
	}
	v, err := compute()
	if err != nil {
		var zero R
		return zero, err
	}
	m.Write(op, v)
	return v, nil
}
