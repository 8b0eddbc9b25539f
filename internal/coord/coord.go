// Package coord implements bidirectional index translation between the
// three coordinate spaces an ndarray view exposes: multidimensional
// subscripts, view linear indices (the logical element ordering a caller
// sees), and buffer byte offsets (into the underlying storage).
package coord

import (
	"fmt"

	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/layout"
)

// ErrOutOfRange is returned by a translator when an index or subscript is
// out of range under Error mode.
var ErrOutOfRange = fmt.Errorf("ndarray: index out of range")

func numel(shape []int64) int64 {
	n := int64(1)
	for _, s := range shape {
		n *= s
	}
	return n
}

// Sub2Bind converts a subscript vector to a byte offset into the
// underlying buffer. modes is recycled by modulo when it has fewer
// entries than shape; it must contain at least one entry.
func Sub2Bind(shape, strides []int64, offset int64, sub []int64, modes []indexmode.Mode) (int64, error) {
	if len(modes) == 0 {
		panic("coord: Sub2Bind requires at least one subscript mode")
	}
	ind := offset
	for i, s := range sub {
		max := shape[i] - 1
		mode := modes[i%len(modes)]
		resolved, ok := indexmode.Resolve(s, max, mode)
		if !ok {
			return -1, ErrOutOfRange
		}
		ind += strides[i] * resolved
	}
	return ind, nil
}

// Vind2Bind converts a linear index in an array view's logical order to a
// byte offset into the underlying buffer.
func Vind2Bind(shape, strides []int64, offset int64, order layout.Order, idx int64, mode indexmode.Mode) (int64, error) {
	length := numel(shape)
	idx, ok := indexmode.Resolve(idx, length-1, mode)
	if !ok {
		return -1, ErrOutOfRange
	}

	ind := offset
	ndims := len(shape)
	if order == layout.ColumnMajor {
		for i := 0; i < ndims; i++ {
			s := idx % shape[i]
			idx -= s
			idx /= shape[i]
			ind += s * strides[i]
		}
		return ind, nil
	}
	for i := ndims - 1; i >= 0; i-- {
		s := idx % shape[i]
		idx -= s
		idx /= shape[i]
		ind += s * strides[i]
	}
	return ind, nil
}

// Bind2Vind converts a linear index into the underlying data buffer (in
// elements) to a linear index in the array view's logical order.
func Bind2Vind(shape, strides []int64, offset int64, order layout.Order, idx int64, mode indexmode.Mode) (int64, error) {
	length := numel(shape)
	idx, ok := indexmode.Resolve(idx, length-1, mode)
	if !ok {
		return -1, ErrOutOfRange
	}

	ndims := len(shape)
	var ind int64
	if order == layout.ColumnMajor {
		for i := ndims - 1; i >= 0; i-- {
			s := strides[i]
			var k int64
			if s < 0 {
				k = idx / s
				idx -= k * s
				k += shape[i] - 1
			} else {
				k = idx / s
				idx -= k * s
			}
			ind += k * abs64(s)
		}
		return ind, nil
	}
	for i := 0; i < ndims; i++ {
		s := strides[i]
		var k int64
		if s < 0 {
			k = idx / s
			idx -= k * s
			k += shape[i] - 1
		} else {
			k = idx / s
			idx -= k * s
		}
		ind += k * abs64(s)
	}
	return ind, nil
}

// Ind2Sub converts a linear index to a subscript vector.
//
// When offset is 0, idx is interpreted as a view linear index and
// subscripts are derived by repeated mod/div against shape. When offset
// is nonzero, the view may be a non-trivial subview of the buffer, so idx
// is instead interpreted as a *buffer* linear index and divided by each
// axis's stride; this asymmetry is intentional — a nonzero offset means
// idx is already buffer-relative, and treating it as a view index too
// would double-count the offset — and must not be "fixed" to always
// treat idx uniformly.
func Ind2Sub(shape, strides []int64, offset int64, order layout.Order, idx int64, mode indexmode.Mode) ([]int64, error) {
	length := numel(shape)
	idx, ok := indexmode.Resolve(idx, length-1, mode)
	if !ok {
		return nil, ErrOutOfRange
	}

	ndims := len(shape)
	out := make([]int64, ndims)

	if offset == 0 {
		if order == layout.ColumnMajor {
			for i := 0; i < ndims; i++ {
				s := idx % shape[i]
				idx -= s
				idx /= shape[i]
				out[i] = s
			}
			return out, nil
		}
		for i := ndims - 1; i >= 0; i-- {
			s := idx % shape[i]
			idx -= s
			idx /= shape[i]
			out[i] = s
		}
		return out, nil
	}

	if order == layout.ColumnMajor {
		for i := ndims - 1; i >= 0; i-- {
			s := strides[i]
			if s < 0 {
				k := idx / s
				idx -= k * s
				out[i] = shape[i] - 1 + k
			} else {
				k := idx / s
				idx -= k * s
				out[i] = k
			}
		}
		return out, nil
	}
	for i := 0; i < ndims; i++ {
		s := strides[i]
		if s < 0 {
			k := idx / s
			idx -= k * s
			out[i] = shape[i] - 1 + k
		} else {
			k := idx / s
			idx -= k * s
			out[i] = k
		}
	}
	return out, nil
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
