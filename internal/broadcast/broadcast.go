// Package broadcast implements NumPy-style shape reconciliation of M
// shapes into a single output shape.
package broadcast

import "fmt"

// ErrIncompatible is returned when the input shapes cannot be broadcast
// together.
var ErrIncompatible = fmt.Errorf("ndarray: incompatible shapes for broadcasting")

// Shapes broadcasts shapes to a single shape and returns it. Two
// respective dimensions (right-aligned) are compatible if they are equal
// or one of them is 1; the broadcast extent is the non-1 value (or 1 if
// both are 1).
//
// On failure the function may still have examined (but never partially
// returns) further shapes; callers get a nil result and ErrIncompatible.
// With a single input shape, the result is that shape. With zero inputs,
// the result is an empty shape (a no-op success).
func Shapes(shapes [][]int64) ([]int64, error) {
	m := len(shapes)
	if m == 0 {
		return nil, nil
	}
	if m == 1 {
		out := make([]int64, len(shapes[0]))
		copy(out, shapes[0])
		return out, nil
	}

	n := len(shapes[0])
	for _, sh := range shapes[1:] {
		if len(sh) > n {
			n = len(sh)
		}
	}

	out := make([]int64, n)
	for i := n - 1; i >= 0; i-- {
		dim := dimAt(shapes[0], n, i)
		for j := 1; j < m; j++ {
			d := dimAt(shapes[j], n, i)
			if dim == 1 {
				dim = d
				continue
			}
			if d == 1 || dim == d {
				continue
			}
			return nil, ErrIncompatible
		}
		out[i] = dim
	}
	return out, nil
}

// dimAt returns the extent of shape at output axis i (0-indexed from the
// left of a length-n right-aligned output), or 1 if shape has no
// corresponding axis.
func dimAt(shape []int64, n, i int) int64 {
	offset := len(shape) - n + i
	if offset < 0 {
		return 1
	}
	return shape[offset]
}
