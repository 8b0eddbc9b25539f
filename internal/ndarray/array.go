// Package ndarray implements the canonical ndarray descriptor: a typed
// view over a flat byte buffer together with the derived layout flags,
// typed accessors, and complex-value addressing that let callers index
// and traverse a view without knowing its dtype at compile time.
package ndarray

import (
	"fmt"

	"github.com/dashflow-io/ndarray/internal/dtype"
	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/layout"
)

// Flag bits cached on a descriptor at construction time.
const (
	RowMajorContiguous uint8 = 0x1
	ColMajorContiguous uint8 = 0x2
)

// Array is the ndarray descriptor: buffer + layout + index modes + derived
// flags. All fields besides the cached flag bitmask are read-only after
// construction; data, shape, strides, and submodes are not copied or
// owned — the caller retains their lifetime.
type Array struct {
	Dtype    dtype.Dtype
	data     []byte
	ndims    int
	shape    []int64
	strides  []int64 // byte strides; may be negative, zero, or non-monotonic
	offset   int64
	order    layout.Order
	imode    indexmode.Mode
	submodes []indexmode.Mode

	length     int64
	byteLength int64
	flags      uint8
}

// New constructs a descriptor from explicit shape and byte strides. It
// panics if shape and strides disagree in length or if submodes is empty
// — both are self-contradictory layouts a caller must never produce, the
// same class of programmer error a constructor panicking on a data/shape
// size mismatch represents. It returns ErrUnsupportedDtype if d has no
// width table entry.
func New(d dtype.Dtype, data []byte, shape, strides []int64, offset int64, order layout.Order, imode indexmode.Mode, submodes []indexmode.Mode) (*Array, error) {
	if len(shape) != len(strides) {
		panic(fmt.Sprintf("ndarray: shape has %d dimensions but strides has %d", len(shape), len(strides)))
	}
	if len(submodes) == 0 {
		panic("ndarray: at least one subscript mode is required")
	}
	if !dtype.Valid(d) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedDtype, d)
	}

	width := dtype.Width(d)
	length := numelForDescriptor(shape)
	byteLength := length * int64(width)

	a := &Array{
		Dtype:      d,
		data:       data,
		ndims:      len(shape),
		shape:      shape,
		strides:    strides,
		offset:     offset,
		order:      order,
		imode:      imode,
		submodes:   submodes,
		length:     length,
		byteLength: byteLength,
	}
	a.flags = computeFlags(shape, strides, offset, length, width)
	return a, nil
}

// FromShape constructs a descriptor over the caller-supplied buffer data using
// natural strides for shape under order. It wires layout.StridesToOffset
// to locate the first logical element — a no-op for natural (all
// positive) strides, but the same computation a negative-stride view
// would need, kept here so the allocator always goes through it rather
// than special-casing the common case.
func FromShape(d dtype.Dtype, data []byte, shape []int64, order layout.Order, imode indexmode.Mode, submodes []indexmode.Mode) (*Array, error) {
	width := dtype.Width(d)
	elemStrides := layout.ShapeToStrides(shape, order)
	byteStrides := make([]int64, len(elemStrides))
	for i, s := range elemStrides {
		byteStrides[i] = s * int64(width)
	}
	offset := layout.StridesToOffset(shape, byteStrides)
	return New(d, data, shape, byteStrides, offset, order, imode, submodes)
}

// numelForDescriptor computes the descriptor's `length` field: the
// product of shape (1 for a 0-rank array, which has exactly one element;
// 0 if any axis is 0). This intentionally differs from layout.Numel,
// which returns 0 for a 0-rank shape — see the note on layout.Numel for
// why the two disagree.
func numelForDescriptor(shape []int64) int64 {
	n := int64(1)
	for _, s := range shape {
		if s == 0 {
			return 0
		}
		n *= s
	}
	return n
}

func computeFlags(shape, strides []int64, offset, length int64, width int) uint8 {
	if length == 0 {
		return 0
	}
	min, max := layout.MinMaxViewBufferIndex(shape, strides, offset)
	var flags uint8
	if layout.IsRowMajorContiguous(strides, length, width, min, max) {
		flags |= RowMajorContiguous
	}
	if layout.IsColumnMajorContiguous(strides, length, width, min, max) {
		flags |= ColMajorContiguous
	}
	return flags
}

// Ndims returns the array's rank.
func (a *Array) Ndims() int { return a.ndims }

// Shape returns the array's per-axis extents. The returned slice is the
// descriptor's own (not owned) shape array; callers must not mutate it.
func (a *Array) Shape() []int64 { return a.shape }

// Strides returns the array's per-axis byte strides.
func (a *Array) Strides() []int64 { return a.strides }

// Offset returns the byte offset of the first indexed element relative to
// the underlying data buffer.
func (a *Array) Offset() int64 { return a.offset }

// Order returns the traversal order used for view-linear indexing.
func (a *Array) Order() layout.Order { return a.order }

// IndexMode returns the index mode used for whole-view linear indexing.
func (a *Array) IndexMode() indexmode.Mode { return a.imode }

// SubscriptModes returns the per-axis subscript modes, recycled by modulo
// when there are fewer modes than axes.
func (a *Array) SubscriptModes() []indexmode.Mode { return a.submodes }

// Length returns the number of elements in the view. It never changes
// after construction.
func (a *Array) Length() int64 { return a.length }

// ByteLength returns Length() * width(Dtype).
func (a *Array) ByteLength() int64 { return a.byteLength }

// Data returns the underlying byte buffer. The descriptor does not own
// this buffer; its lifetime is the caller's responsibility.
func (a *Array) Data() []byte { return a.data }

// Flags returns the cached contiguity bitmask.
func (a *Array) Flags() uint8 { return a.flags }

// EnableFlag sets bit in the cached flag bitmask. The bitmask is the only
// mutable descriptor state; every other field is read-only after
// construction.
func (a *Array) EnableFlag(bit uint8) { a.flags |= bit }

// DisableFlag clears bit in the cached flag bitmask.
func (a *Array) DisableFlag(bit uint8) { a.flags &^= bit }

// MinMaxReach returns the minimum and maximum byte offsets (relative to
// Data()) reachable by any legal subscript.
func (a *Array) MinMaxReach() (min, max int64) {
	return layout.MinMaxViewBufferIndex(a.shape, a.strides, a.offset)
}

// IsSingleSegment reports whether every element the view can reach lies
// within one contiguous byte range of length Length()*width(Dtype).
func (a *Array) IsSingleSegment() bool {
	min, max := a.MinMaxReach()
	return layout.IsSingleSegment(a.length, dtype.Width(a.Dtype), min, max)
}

// IsContiguous reports whether the view has a single, unbroken iteration
// order and occupies one contiguous byte segment.
func (a *Array) IsContiguous() bool {
	min, max := a.MinMaxReach()
	return layout.IsContiguous(a.strides, a.length, dtype.Width(a.Dtype), min, max)
}

// NonsingletonDimensions returns the number of axes whose extent is not 1.
func (a *Array) NonsingletonDimensions() int64 { return layout.NonsingletonDimensions(a.shape) }

// SingletonDimensions returns the number of axes whose extent is 1.
func (a *Array) SingletonDimensions() int64 { return layout.SingletonDimensions(a.shape) }

// BufferLengthCompatible reports whether the view stays within a buffer
// of bufLen elements of the descriptor's dtype width.
func (a *Array) BufferLengthCompatible(bufLen int64) bool {
	return layout.BufferLengthCompatible(dtype.Width(a.Dtype), bufLen, a.shape, a.strides, a.offset)
}
