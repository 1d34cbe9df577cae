package multiarray

import (
	"fmt"
	"strings"
)

// String renders the array with the innermost axis as one bracketed row
// per line, and a blank line between blocks whenever an axis above the row
// axis advances:
//
//	[1, 2, 3]
//	[4, 5, 6]
//
// A rank-1 array prints as a single row. Elements print with %v. Intended
// for debugging and examples, not as a parseable format.
//
// Complexity: O(Len()).
func (m *MultiArray[T, S]) String() string {
	var sb strings.Builder
	m.writeAxis(&sb, 0, 0)
	return sb.String()
}

// writeAxis renders the block rooted at axis starting at base offset off.
func (m *MultiArray[T, S]) writeAxis(sb *strings.Builder, axis, off int) {
	last := len(m.dims) - 1
	if axis == last {
		sb.WriteByte('[')
		for i := 0; i < m.dims[axis]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%v", m.data[off+i])
		}
		sb.WriteString("]\n")
		return
	}
	for i := 0; i < m.dims[axis]; i++ {
		if i > 0 && axis < last-1 {
			sb.WriteByte('\n') // blank line between higher-axis blocks
		}
		m.writeAxis(sb, axis+1, off+i*m.strides[axis])
	}
}
