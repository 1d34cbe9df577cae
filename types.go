// SPDX-License-Identifier: MIT

package multiarray

// Store is the capability contract for backing storage: any slice type.
// The container needs exactly the three builtin slice capabilities, so the
// constraint is the slice core type itself:
//   - construction by count with default-initialized elements (make)
//   - ordered, stable traversal (range)
//   - random-access read/write by offset (s[i])
//
// Named slice types satisfy Store, so callers can carry their own store
// semantics (pooled buffers, typed pixels, ...) through the container.
type Store[T any] interface {
	~[]T
}

// Array is a MultiArray over the default []T store, the common case.
// New returns this form.
type Array[T any] = MultiArray[T, []T]

// Range selects the half-open interval [Begin, End) along one axis.
// Begin == End selects nothing; that is a valid, empty range.
type Range struct {
	Begin, End int
}

// Len reports how many indices the range spans.
//
// Complexity: O(1).
func (r Range) Len() int { return r.End - r.Begin }
