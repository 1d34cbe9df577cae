package multiarray

// MultiArray is a dense, fixed-rank, N-dimensional array over a flat
// backing store S. The rank (number of axes) is fixed at construction and
// never changes. Axis 0 is the slowest-varying axis in the linear layout
// and axis Dim()-1 the fastest: classic row-major order.
//
// The hot path (Index, At, Ptr, Set) checks index arity but no per-axis
// bounds; see Index for the exact contract.
type MultiArray[T any, S Store[T]] struct {
	dims    []int // axis sizes, immutable after construction
	strides []int // strides[k] = product of dims[k+1:]; strides[Dim()-1] == 1
	data    S     // flat store, len(data) == product of dims
}

// New builds an Array with one axis per size argument and every element at
// the zero value of T. The rank is inferred from the argument count:
//
//	grid, err := multiarray.New[float64](4, 3, 2) // rank 3, 24 elements
//
// Zero-sized axes are valid and yield an element-less array. New returns
// ErrNoDimensions when called with no sizes and ErrNegativeSize when any
// size is negative. The element count is the unguarded product of the
// sizes; absurd totals fault in allocation.
//
// Complexity: O(Dim()) plus the store allocation.
func New[T any](sizes ...int) (*Array[T], error) {
	return Make[T, []T](sizes...)
}

// Make is New for a caller-chosen store type:
//
//	m, err := multiarray.Make[byte, Pixels](height, width)
//
// The store is created with the builtin make, so elements start at the
// zero value of T. Validation and semantics match New.
func Make[T any, S Store[T]](sizes ...int) (*MultiArray[T, S], error) {
	dims, strides, total, err := layout(sizes)
	if err != nil {
		return nil, err
	}
	return &MultiArray[T, S]{dims: dims, strides: strides, data: make(S, total)}, nil
}

// FromSlice wraps an existing flat store as a MultiArray with the given
// axis sizes. The store is adopted, not copied: the array owns data from
// here on, and writes through either alias are visible to both. Use Clone
// for an independent copy. Returns ErrLengthMismatch when len(data) is not
// the product of the sizes, plus the New sentinels for invalid sizes.
func FromSlice[T any, S Store[T]](data S, sizes ...int) (*MultiArray[T, S], error) {
	dims, strides, total, err := layout(sizes)
	if err != nil {
		return nil, err
	}
	if len(data) != total {
		return nil, ErrLengthMismatch
	}
	return &MultiArray[T, S]{dims: dims, strides: strides, data: data}, nil
}

// layout validates sizes and precomputes the row-major stride table.
// Strides never change after construction, so paying the multiplications
// once here keeps every later offset a plain multiply-add sweep. The sizes
// are copied; callers keep ownership of the variadic slice.
func layout(sizes []int) (dims, strides []int, total int, err error) {
	if len(sizes) == 0 {
		return nil, nil, 0, ErrNoDimensions
	}
	dims = make([]int, len(sizes))
	for k, s := range sizes {
		if s < 0 {
			return nil, nil, 0, ErrNegativeSize
		}
		dims[k] = s
	}
	strides = make([]int, len(dims))
	total = 1
	for k := len(dims) - 1; k >= 0; k-- {
		strides[k] = total
		total *= dims[k]
	}
	return dims, strides, total, nil
}

// Index maps an index tuple to its linear offset in the backing store:
//
//	offset = Σ ix[k]·Strides()[k]
//
// Exactly Dim() indices are required; any other count panics. Per-axis
// bounds are deliberately not checked: an out-of-range index yields either
// an offset outside the store (the runtime faults on the access) or a
// silently wrong in-range offset. Callers own index validity. Code slicing
// the store directly (see Data) uses Index to locate elements and runs.
//
// Complexity: O(Dim()), zero allocations.
func (m *MultiArray[T, S]) Index(ix ...int) int {
	if len(ix) != len(m.dims) {
		panic(panicArity)
	}
	off := 0
	for k, i := range ix {
		off += i * m.strides[k]
	}
	return off
}

// At returns the element at the given index tuple. Same contract as Index:
// arity panics, per-axis bounds are not checked.
//
// Complexity: O(Dim()).
func (m *MultiArray[T, S]) At(ix ...int) T {
	return m.data[m.Index(ix...)]
}

// Ptr returns a pointer to the element at the given index tuple, for
// in-place mutation or to avoid copying large elements. The pointee is the
// store slot itself. Same contract as Index.
func (m *MultiArray[T, S]) Ptr(ix ...int) *T {
	return &m.data[m.Index(ix...)]
}

// Set writes v to the element at the given index tuple. Same contract as
// Index.
//
// Complexity: O(Dim()).
func (m *MultiArray[T, S]) Set(v T, ix ...int) {
	m.data[m.Index(ix...)] = v
}

// Coords is the inverse of Index: it recovers the unique index tuple whose
// linear offset is off. off must lie in [0, Len()); like the rest of the
// access surface that is not validated.
//
// Complexity: O(Dim()); allocates the result tuple.
func (m *MultiArray[T, S]) Coords(off int) []int {
	ix := make([]int, len(m.dims))
	for k, s := range m.strides {
		ix[k] = off / s
		off %= s
	}
	return ix
}

// Dim returns the rank: the number of axes fixed at construction.
//
// Complexity: O(1).
func (m *MultiArray[T, S]) Dim() int { return len(m.dims) }

// Size returns the length of one axis. axis must lie in [0, Dim());
// out-of-range axes fault on the slice access, consistent with the
// unchecked access contract.
//
// Complexity: O(1).
func (m *MultiArray[T, S]) Size(axis int) int { return m.dims[axis] }

// Dims returns a copy of the full axis-size vector. Mutating the result
// has no effect on the array.
func (m *MultiArray[T, S]) Dims() []int {
	out := make([]int, len(m.dims))
	copy(out, m.dims)
	return out
}

// Strides returns a copy of the row-major stride table: Strides()[k] is
// the offset distance between neighbors along axis k.
func (m *MultiArray[T, S]) Strides() []int {
	out := make([]int, len(m.strides))
	copy(out, m.strides)
	return out
}

// Len returns the total element count, the product of all axis sizes.
//
// Complexity: O(1).
func (m *MultiArray[T, S]) Len() int { return len(m.data) }

// Data returns the flat backing store itself, not a copy. Offset
// arithmetic against Index addresses it directly, which is the intended
// escape hatch for bulk and raw operations. The layout invariants still
// apply; re-slicing the store to another length breaks the array.
//
// Complexity: O(1).
func (m *MultiArray[T, S]) Data() S { return m.data }

// Clone returns a deep copy with a fresh store and fresh layout tables.
// The clone and the original never alias, whatever the store type.
//
// Complexity: O(Len()).
func (m *MultiArray[T, S]) Clone() *MultiArray[T, S] {
	data := make(S, len(m.data))
	copy(data, m.data)
	dims := make([]int, len(m.dims))
	copy(dims, m.dims)
	strides := make([]int, len(m.strides))
	copy(strides, m.strides)
	return &MultiArray[T, S]{dims: dims, strides: strides, data: data}
}
