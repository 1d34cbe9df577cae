// Package multiarray provides a dense, fixed-rank, N-dimensional array
// over a flat backing store, with row-major index mapping and bulk range
// assignment.
//
// 🚀 Why multiarray?
//
//	Dense grids, matrices and tensors want one flat allocation plus pure
//	offset arithmetic: no nested slices, no per-access heap indirection.
//	MultiArray maps an index tuple (i0, …, iD-1) onto a single linear
//	offset and keeps the rank D fixed for the array's lifetime:
//	  • axis 0 is the slowest-varying (most significant) axis
//	  • axis D-1 is the fastest-varying; classic row-major layout
//	  • strides are computed once at construction, never again
//
// ✨ Key features:
//   - generic element type T over a pluggable slice-like store S
//   - New infers the rank from its argument count; Make and FromSlice
//     carry a caller-chosen store type
//   - unchecked hot path: Index/At/Ptr/Set pay no per-axis bounds checks
//   - Fill and FillRange bulk assignment; FillRange sweeps the innermost
//     axis as contiguous runs instead of visiting index tuples
//   - Clone, Coords, Strides and String for copying, inverse mapping and
//     debugging
//
// ⚙️ Usage:
//
//	grid, err := multiarray.New[int](3, 3)
//	if err != nil {
//		return err
//	}
//	grid.Fill(1).FillRange(9, multiarray.Range{0, 2}, multiarray.Range{1, 3})
//	v := grid.At(1, 2)      // 9
//	off := grid.Index(1, 2) // 5
//
// Performance:
//
//   - Index/At/Ptr/Set: O(D) multiply-adds, zero allocations
//   - Fill: O(Len())
//   - FillRange: O(selected elements) writes, O(outer combinations)
//     offset computations
//
// See example_test.go for runnable examples and bench_test.go for the
// contiguous-sweep numbers.
package multiarray
