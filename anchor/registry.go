package anchor

import "strconv"

// Registry tracks the base anchors used during one render and assigns
// numeric suffixes to repeats.
//
// The zero value is ready to use. A Registry must not be shared between
// concurrent renders.
type Registry struct {
	counts map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// Resolve returns a unique anchor for base.
//
// The first call for a base returns it unchanged. The Nth repeat returns
// base + "-" + N. Only base anchors are recorded, suffixed results are not.
func (r *Registry) Resolve(base string) string {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}

	n, seen := r.counts[base]
	if !seen {
		r.counts[base] = 1
		return base
	}

	r.counts[base] = n + 1
	return base + "-" + strconv.Itoa(n)
}

// Reset forgets every anchor seen so far.
func (r *Registry) Reset() {
	clear(r.counts)
}

// Len returns the number of distinct base anchors seen since the last reset.
func (r *Registry) Len() int {
	return len(r.counts)
}
