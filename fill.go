package multiarray

// Fill overwrites every element with v and returns the receiver so that
// fills chain. Storage is always dense, so there is no sparse shortcut.
//
// Complexity: O(Len()).
func (m *MultiArray[T, S]) Fill(v T) *MultiArray[T, S] {
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// FillRange writes v into every element whose index tuple lies inside the
// given per-axis half-open ranges and returns the receiver. One Range per
// axis is required, each satisfying 0 <= Begin <= End <= Size(axis); a
// wrong range count or an invalid range panics, since the silent
// alternative is an out-of-bounds bulk write. Begin == End on any axis
// selects nothing; that is a valid no-op, not an error.
//
// The write never visits elements one index tuple at a time. For each
// combination of the outer Dim()-1 ranges, the selection along the last
// axis is one contiguous run in the flat store, filled in a single sweep.
// A rank-1 array has no outer axes and degenerates to one such sweep.
//
// Complexity: O(product of range lengths) element writes, but only
// O(product of outer range lengths) offset computations.
func (m *MultiArray[T, S]) FillRange(v T, ranges ...Range) *MultiArray[T, S] {
	m.fillRange(v, ranges)
	return m
}

// fillRange is the engine behind FillRange. It reports how many elements
// it wrote; tests pin the touch count of the contiguous sweep through this
// return without it being part of the public contract.
func (m *MultiArray[T, S]) fillRange(v T, ranges []Range) int {
	if len(ranges) != len(m.dims) {
		panic(panicRangeArity)
	}
	empty := false
	for k, r := range ranges {
		if r.Begin < 0 || r.Begin > r.End || r.End > m.dims[k] {
			panic(panicRangeBounds)
		}
		empty = empty || r.Begin == r.End
	}
	if empty {
		return 0 // an empty axis range empties the whole cross product
	}

	// Row-major layout makes the last-axis selection one contiguous run
	// per combination of outer indices. Walk the combinations with an
	// odometer (last outer axis fastest) and sweep each run in one go.
	outer := len(ranges) - 1
	inner := ranges[outer].Len()
	ix := make([]int, outer)
	for k := range ix {
		ix[k] = ranges[k].Begin
	}

	touched := 0
	for {
		off := ranges[outer].Begin // strides[outer] == 1
		for k := 0; k < outer; k++ {
			off += ix[k] * m.strides[k]
		}
		run := m.data[off : off+inner]
		for i := range run {
			run[i] = v
		}
		touched += inner

		k := outer - 1
		for ; k >= 0; k-- {
			ix[k]++
			if ix[k] < ranges[k].End {
				break
			}
			ix[k] = ranges[k].Begin
		}
		if k < 0 {
			return touched
		}
	}
}
