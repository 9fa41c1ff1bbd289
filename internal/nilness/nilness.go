// SPDX-License-Identifier: MIT

// Package nilness reports whether a generic value carries a nil reference.
//
// Node labels and disjoint-set elements are constrained only by `comparable`,
// so a label may be a pointer, channel or interface value. Those must be
// rejected as "null input" before they enter any structure.
package nilness

import "reflect"

// IsNil reports whether v is nil, or is a nil pointer, map, slice, channel,
// function or interface wrapped in an interface value.
//
// Complexity: O(1).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
