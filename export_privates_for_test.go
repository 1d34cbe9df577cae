// SPDX-License-Identifier: MIT

package multiarray

// Test bridge (white box) for the fill engine and panic messages.
//
// Purpose:
//   - Expose the unexported fillRange engine to multiarray_test so the
//     contiguous-sweep touch count can be pinned without widening the
//     production API.
//   - Export panic messages to avoid magic strings in tests.
//
// The file is test-only by its _test.go suffix; nothing here ships.

// FillRangeCount_TestOnly forwards to the private fillRange engine and
// returns its touched-element count.
func (m *MultiArray[T, S]) FillRangeCount_TestOnly(v T, ranges ...Range) int {
	return m.fillRange(v, ranges)
}

// Panic message exports.
const (
	PanicArity_TestOnly       = panicArity
	PanicRangeArity_TestOnly  = panicRangeArity
	PanicRangeBounds_TestOnly = panicRangeBounds
)
