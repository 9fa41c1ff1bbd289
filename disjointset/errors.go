// SPDX-License-Identifier: MIT

package disjointset

import "errors"

var (
	// ErrNilInput indicates that a nil element was passed.
	ErrNilInput = errors.New("disjointset: nil element")

	// ErrAlreadyPresent indicates MakeSet on an element that is already in the forest.
	ErrAlreadyPresent = errors.New("disjointset: element already present")

	// ErrNotPresent indicates an operation on an element never passed to MakeSet.
	ErrNotPresent = errors.New("disjointset: element not present")
)
