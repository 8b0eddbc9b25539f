package kernel

import "fmt"

// MaxSpecializedRank bounds the ranks (2..MaxSpecializedRank) for which
// Dispatch chooses by locality: a local view takes the plain driver
// (iteratePlain2 for rank 2, the generic n-D walker for ranks 3 and up),
// any other view takes the cache-blocked driver. Above it, Dispatch
// always uses the generic n-D walker.
const MaxSpecializedRank = 6

// ErrRankMismatch is returned when the participating views disagree on
// rank or per-axis extent — Dispatch requires the caller to have already
// broadcast all views to a common shape.
var ErrRankMismatch = fmt.Errorf("kernel: views do not share a common shape")

// Func is the per-element operation a dispatch runs: given the byte
// offsets of one element in each participating view's own buffer (in
// the order Views was built), it performs the operation in place.
type Func func(data [][]byte, ptrs []int64)

// Dispatch is a rank-specialized kernel dispatch object: it holds no
// per-call state beyond the shared Func and is safe to reuse across
// calls to Run with different views.
type Dispatch struct {
	fcn Func
}

// New builds a Dispatch around the given per-element operation.
func New(fcn Func) *Dispatch {
	return &Dispatch{fcn: fcn}
}

// Run executes d.fcn once per element of the common shape implied by
// views (all views must already share shape; broadcasting is the
// caller's responsibility upstream). It selects among five traversal
// strategies by rank and, for 2 <= rank <= MaxSpecializedRank, by the
// locality of the first (reference) view.
func (d *Dispatch) Run(views []View) error {
	if len(views) == 0 {
		return nil
	}
	shape := views[0].Shape
	for _, v := range views[1:] {
		if len(v.Shape) != len(shape) {
			return ErrRankMismatch
		}
		for i, s := range shape {
			if v.Shape[i] != s {
				return ErrRankMismatch
			}
		}
	}

	data := make([][]byte, len(views))
	for i, v := range views {
		data[i] = v.Data
	}
	body := func(ptrs []int64) { d.fcn(data, ptrs) }

	rank := len(shape)
	switch {
	case rank == 0:
		iteratePlain0(views, body)
		return nil
	case rank == 1:
		iteratePlain1(shape, views, body)
		return nil
	case rank <= MaxSpecializedRank:
		if isLocal(views[0]) {
			if rank == 2 {
				iteratePlain2(shape, views, body)
				return nil
			}
			iterateGeneric(shape, views, body)
			return nil
		}
		order := axisOrder(views[0])
		iterateBlocked(shape, views, order, blockSize(views), body)
		return nil
	default:
		iterateGeneric(shape, views, body)
		return nil
	}
}

// isLocal reports whether a view's reference locality is good enough to
// use the plain (non-blocked) driver: row-major- or column-major-
// contiguous. It is computed directly from the view's own shape/strides
// rather than relying on a cached descriptor flag, since View is a
// narrower type than ndarray.Array and may be constructed without one.
func isLocal(v View) bool {
	return isRowMajorContiguous(v) || isColumnMajorContiguous(v)
}
