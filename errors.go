// SPDX-License-Identifier: MIT
// Package multiarray: sentinel error set.
// Construction misuse returns these sentinels and tests match them via
// errors.Is. Panics are reserved for programmer errors on the unchecked
// hot path (index arity, invalid fill ranges); see the constants below.

package multiarray

import "errors"

var (
	// ErrNoDimensions indicates construction with zero size arguments;
	// an array has at least one axis.
	ErrNoDimensions = errors.New("multiarray: at least one dimension required")
	// ErrNegativeSize indicates a negative axis size argument.
	ErrNegativeSize = errors.New("multiarray: axis sizes must be non-negative")
	// ErrLengthMismatch indicates FromSlice data whose length differs from
	// the product of the requested axis sizes.
	ErrLengthMismatch = errors.New("multiarray: data length does not match dimensions")
)

// Stable panic messages for hot-path programmer errors. Kept as constants
// so tests assert the exact message rather than a magic string.
const (
	panicArity       = "multiarray: number of indices must equal Dim()"
	panicRangeArity  = "multiarray: FillRange: one range per axis required"
	panicRangeBounds = "multiarray: FillRange: need 0 <= Begin <= End <= Size(axis)"
)
