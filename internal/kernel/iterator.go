// Package kernel implements a unary kernel dispatcher: rank-specialized
// traversal of one or more view descriptors that share a common shape,
// selecting between a plain nested-loop driver and a cache-blocked,
// stride-sorted driver, falling back to a generic n-D walker for ranks
// beyond the specialized table.
package kernel

import (
	"github.com/dashflow-io/ndarray/internal/dtype"
	"github.com/dashflow-io/ndarray/internal/ndarray"
)

// View is the minimal surface the kernel driver needs from an
// ndarray.Array: its byte buffer and the layout fields that determine
// traversal. It lets the driver operate on raw descriptors (and, in
// tests, on lightweight fakes) without importing the full Array API.
type View struct {
	Data    []byte
	Shape   []int64
	Strides []int64
	Offset  int64
	Width   int
}

// ViewOf adapts an *ndarray.Array to a View for the kernel driver.
func ViewOf(a *ndarray.Array) View {
	return View{
		Data:    a.Data(),
		Shape:   a.Shape(),
		Strides: a.Strides(),
		Offset:  a.Offset(),
		Width:   dtype.Width(a.Dtype),
	}
}

// Body is the per-element callback a driver invokes once per visited
// element. ptrs holds, for each participating view (in the order passed
// to Dispatch), the byte offset of that element's first byte within its
// own Data buffer.
type Body func(ptrs []int64)

// iterateGeneric walks every view in lockstep over shape using a
// stack-allocated subscript vector, calling body once per element. This
// is the plain driver for row- or column-major-contiguous views of rank 3
// through MaxSpecializedRank, and the fallback for any rank beyond
// MaxSpecializedRank, where a hand-unrolled loop per rank stops paying
// for itself.
func iterateGeneric(shape []int64, views []View, body Body) {
	n := numel(shape)
	if n == 0 {
		return
	}
	ndims := len(shape)
	sub := make([]int64, ndims)
	ptrs := make([]int64, len(views))
	for i := range views {
		ptrs[i] = views[i].Offset
	}

	for e := int64(0); e < n; e++ {
		body(ptrs)

		for axis := ndims - 1; axis >= 0; axis-- {
			sub[axis]++
			for vi, v := range views {
				ptrs[vi] += v.Strides[axis]
			}
			if sub[axis] < shape[axis] {
				break
			}
			for vi, v := range views {
				ptrs[vi] -= v.Strides[axis] * shape[axis]
			}
			sub[axis] = 0
		}
	}
}

func numel(shape []int64) int64 {
	n := int64(1)
	for _, s := range shape {
		if s == 0 {
			return 0
		}
		n *= s
	}
	return n
}
