package aoc

// Memo caches the results of a pure function keyed by its arguments. Bundle
// multi-argument keys into a comparable struct.
type Memo[K comparable, V any] struct {
	m map[K]V
}

// Get returns the cached value for k, calling compute to fill it on a miss.
// compute may call Get recursively.
func (m *Memo[K, V]) Get(k K, compute func() V) V {
	if v, ok := m.m[k]; ok {
		return v
	}
	v := compute()
	InitMap(&m.m)
	m.m[k] = v
	return v
}
