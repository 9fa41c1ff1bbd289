package disjointset

// Height exposes the uncompressed depth of e for white-box assertions.
func (f *Forest[E]) Height(e E) int {
	return f.height(f.index[e])
}

// Rank exposes the rank stored at e's slot.
func (f *Forest[E]) Rank(e E) int {
	return f.slots[f.index[e]].rank
}
