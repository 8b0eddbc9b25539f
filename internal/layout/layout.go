package layout

// Numel returns the number of elements described by shape. It returns 0 if
// ndims is 0 or any axis extent is negative; otherwise the product of
// shape, with a 0-length axis collapsing the product to 0.
//
// This deliberately differs from how an ndarray descriptor computes its
// own `length` field for a 0-rank view (which is 1, not 0 — see
// internal/ndarray). Numel is the general-purpose shape analyzer the
// upstream C library ships; the descriptor's `length` is a distinct,
// narrower rule documented at its construction site, since a 0-rank view
// always addresses exactly one element regardless of what an empty shape
// product would naively give. Both are intentional.
func Numel(shape []int64) int64 {
	if len(shape) == 0 {
		return 0
	}
	n := int64(1)
	for _, s := range shape {
		if s < 0 {
			return 0
		}
		n *= s
	}
	return n
}

// StridesToOffset returns the byte offset that places the first logically
// indexed element correctly when a descriptor is constructed from a shape
// and natural strides that may include negative entries.
func StridesToOffset(shape, strides []int64) int64 {
	var offset int64
	for i := range strides {
		if strides[i] < 0 {
			// The stride is negative, so this increments (not
			// decrements) the offset.
			offset -= strides[i] * (shape[i] - 1)
		}
	}
	return offset
}

// MinMaxViewBufferIndex computes the minimum and maximum byte offsets (in
// an underlying data buffer, relative to the descriptor's data pointer)
// reachable by any legal subscript. Any axis with extent 0 collapses the
// reachable range to the single point `offset`.
func MinMaxViewBufferIndex(shape, strides []int64, offset int64) (min, max int64) {
	min, max = offset, offset
	for i, s := range strides {
		if shape[i] == 0 {
			return offset, offset
		}
		if s > 0 {
			max += s * (shape[i] - 1)
		} else if s < 0 {
			min += s * (shape[i] - 1)
		}
	}
	return min, max
}

// IsSingleSegment reports whether every element reachable by shape and
// strides lies within one contiguous byte range of length length*width.
func IsSingleSegment(length int64, width int, min, max int64) bool {
	return length > 0 && length*int64(width) == (max-min)+int64(width)
}

// IsContiguous reports whether a view's elements are visited in a single,
// unbroken iteration order (all-positive or all-negative strides) and
// occupy a single contiguous byte segment.
func IsContiguous(strides []int64, length int64, width int, min, max int64) bool {
	return IterationOrder(strides) != 0 && IsSingleSegment(length, width, min, max)
}

// IsRowMajorContiguous reports whether a view is contiguous and its
// strides are (weakly) row-major.
func IsRowMajorContiguous(strides []int64, length int64, width int, min, max int64) bool {
	if !IsContiguous(strides, length, width, min, max) {
		return false
	}
	o := StridesToOrder(strides)
	return o == OrderRow || o == OrderBoth
}

// IsColumnMajorContiguous reports whether a view is contiguous and its
// strides are (weakly) column-major.
func IsColumnMajorContiguous(strides []int64, length int64, width int, min, max int64) bool {
	if !IsContiguous(strides, length, width, min, max) {
		return false
	}
	o := StridesToOrder(strides)
	return o == OrderColumn || o == OrderBoth
}

// BufferLengthCompatible reports whether a view described by shape,
// strides, and offset stays within a buffer of bufLen elements of the
// given byte width.
func BufferLengthCompatible(width int, bufLen int64, shape, strides []int64, offset int64) bool {
	min, max := MinMaxViewBufferIndex(shape, strides, offset)
	if width == 0 {
		return false
	}
	return min/int64(width) >= 0 && max/int64(width) < bufLen
}

// BufferLengthCompatibleShape reports whether a buffer of bufLen elements
// can hold a view of the given shape, assuming natural (contiguous)
// strides.
//
// Note the strict inequality: for bufLen == Numel(shape) this returns
// false, which is inconsistent with the function's name but is the
// literal, preserved upstream behavior — do not silently "fix" this to
// `>=`.
func BufferLengthCompatibleShape(bufLen int64, shape []int64) bool {
	return bufLen > Numel(shape)
}

// NonsingletonDimensions returns the number of axes whose extent is not 1.
func NonsingletonDimensions(shape []int64) int64 {
	var n int64
	for _, s := range shape {
		if s != 1 {
			n++
		}
	}
	return n
}

// SingletonDimensions returns the number of axes whose extent is 1.
func SingletonDimensions(shape []int64) int64 {
	var n int64
	for _, s := range shape {
		if s == 1 {
			n++
		}
	}
	return n
}
