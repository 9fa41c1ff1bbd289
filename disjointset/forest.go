// SPDX-License-Identifier: MIT
//
// File: forest.go
// Role: Arena-backed disjoint-set forest.
// Invariants:
//   - slots[i].parent == rootTag  <=>  slot i is the root of its tree.
//   - rank is meaningful only at roots and bounds the tree height.
//   - index[e] == i  <=>  items[i] == e.

package disjointset

import (
	"fmt"

	"github.com/katalvlaran/spanforest/internal/nilness"
)

// rootTag marks a slot as a root; any other parent value is an arena index.
const rootTag = -1

// slot is the tagged tree node: Root(rank) when parent == rootTag,
// Child(parent) otherwise.
type slot struct {
	parent int
	rank   int
}

func (s slot) isRoot() bool { return s.parent == rootTag }

// Forest is a disjoint-set forest over elements of type E.
// The zero value is not usable; call New.
type Forest[E comparable] struct {
	items []E
	slots []slot
	index map[E]int
	sets  int
}

// New returns an empty Forest.
func New[E comparable]() *Forest[E] {
	return &Forest[E]{index: make(map[E]int)}
}

// Len returns the number of inserted elements.
func (f *Forest[E]) Len() int { return len(f.items) }

// SetCount returns the number of disjoint sets.
func (f *Forest[E]) SetCount() int { return f.sets }

// Contains reports whether e has been inserted.
// Returns ErrNilInput for a nil element.
func (f *Forest[E]) Contains(e E) (bool, error) {
	if nilness.IsNil(e) {
		return false, ErrNilInput
	}
	_, ok := f.index[e]

	return ok, nil
}

// MakeSet creates the singleton set {e}: a root of rank 0 whose
// representative is e itself.
//
// Errors: ErrNilInput, ErrAlreadyPresent.
// Complexity: O(1) amortized.
func (f *Forest[E]) MakeSet(e E) error {
	if nilness.IsNil(e) {
		return ErrNilInput
	}
	if _, ok := f.index[e]; ok {
		return fmt.Errorf("MakeSet(%v): %w", e, ErrAlreadyPresent)
	}

	f.index[e] = len(f.items)
	f.items = append(f.items, e)
	f.slots = append(f.slots, slot{parent: rootTag})
	f.sets++

	return nil
}

// FindSet returns the representative of the set containing e.
//
// The boolean is false (and no error is returned) when e was never
// inserted. As a side effect every slot on the path from e to the root is
// repointed directly at the root.
// Errors: ErrNilInput.
// Complexity: O(α(n)) amortized.
func (f *Forest[E]) FindSet(e E) (E, bool, error) {
	var zero E
	if nilness.IsNil(e) {
		return zero, false, ErrNilInput
	}
	i, ok := f.index[e]
	if !ok {
		return zero, false, nil
	}

	return f.items[f.root(i)], true, nil
}

// Union merges the sets containing e1 and e2. It is a no-op when they are
// already in the same set.
//
// The root of higher rank becomes the parent of the other. On equal ranks
// the root of e2's set becomes the representative of the union and its rank
// grows by one.
// Errors: ErrNilInput, ErrNotPresent.
// Complexity: O(α(n)) amortized.
func (f *Forest[E]) Union(e1, e2 E) error {
	if nilness.IsNil(e1) || nilness.IsNil(e2) {
		return ErrNilInput
	}
	i, ok := f.index[e1]
	if !ok {
		return fmt.Errorf("Union: %v: %w", e1, ErrNotPresent)
	}
	j, ok := f.index[e2]
	if !ok {
		return fmt.Errorf("Union: %v: %w", e2, ErrNotPresent)
	}

	r1, r2 := f.root(i), f.root(j)
	if r1 == r2 {
		return nil
	}
	f.link(r1, r2)
	f.sets--

	return nil
}

// Representatives returns the current roots in insertion order.
// Complexity: O(n).
func (f *Forest[E]) Representatives() []E {
	out := make([]E, 0, f.sets)
	for i, s := range f.slots {
		if s.isRoot() {
			out = append(out, f.items[i])
		}
	}

	return out
}

// ElementsOf returns every element sharing e's representative, e included,
// in insertion order.
//
// Errors: ErrNilInput, ErrNotPresent.
// Complexity: O(n α(n)).
func (f *Forest[E]) ElementsOf(e E) ([]E, error) {
	if nilness.IsNil(e) {
		return nil, ErrNilInput
	}
	i, ok := f.index[e]
	if !ok {
		return nil, fmt.Errorf("ElementsOf(%v): %w", e, ErrNotPresent)
	}

	target := f.root(i)
	var out []E
	for k := range f.items {
		if f.root(k) == target {
			out = append(out, f.items[k])
		}
	}

	return out, nil
}

// Sets returns the whole partition. Sets are ordered by their first
// inserted member and members keep insertion order.
// Complexity: O(n α(n)).
func (f *Forest[E]) Sets() [][]E {
	pos := make(map[int]int, f.sets) // root slot -> position in out
	out := make([][]E, 0, f.sets)
	for k := range f.items {
		r := f.root(k)
		p, ok := pos[r]
		if !ok {
			p = len(out)
			pos[r] = p
			out = append(out, nil)
		}
		out[p] = append(out[p], f.items[k])
	}

	return out
}

// Clear resets the forest to empty. Elements inserted before Clear are no
// longer known.
func (f *Forest[E]) Clear() {
	f.items = nil
	f.slots = nil
	f.index = make(map[E]int)
	f.sets = 0
}

// root returns the root slot of i, compressing the path in a second pass.
func (f *Forest[E]) root(i int) int {
	r := i
	for !f.slots[r].isRoot() {
		r = f.slots[r].parent
	}
	for i != r {
		next := f.slots[i].parent
		f.slots[i].parent = r
		i = next
	}

	return r
}

// link attaches one of the two distinct roots under the other by rank.
func (f *Forest[E]) link(r1, r2 int) {
	if f.slots[r1].rank > f.slots[r2].rank {
		f.slots[r2] = slot{parent: r1}
		return
	}
	// r2 wins: strictly higher rank, or the tie-break in favour of e2's set.
	if f.slots[r1].rank == f.slots[r2].rank {
		f.slots[r2].rank++
	}
	f.slots[r1] = slot{parent: r2}
}

// height returns the number of parent links from i to its root without
// compressing; used by tests through export_test.go.
func (f *Forest[E]) height(i int) int {
	h := 0
	for !f.slots[i].isRoot() {
		i = f.slots[i].parent
		h++
	}

	return h
}
