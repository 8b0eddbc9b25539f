package kernel

import "sort"

// unaryBlockSizeBytes is the target per-axis tile footprint, sized to
// stay resident in L1 cache.
const unaryBlockSizeBytes = 64

// unaryBlockSizeElements is the fallback tile extent used when every
// participating dtype has width 0 (generic/binary elements, which carry
// no fixed byte size to divide 64 by).
const unaryBlockSizeElements = 8

// blockSize computes B = floor(64 / max(width)) over views, falling back
// to 8 when every view reports width 0.
func blockSize(views []View) int64 {
	max := 0
	for _, v := range views {
		if v.Width > max {
			max = v.Width
		}
	}
	if max == 0 {
		return unaryBlockSizeElements
	}
	b := unaryBlockSizeBytes / max
	if b < 1 {
		return 1
	}
	return int64(b)
}

// axisOrder returns a permutation of [0, ndims) ordering axes from
// largest to smallest |stride| in the reference view (conventionally the
// first input), so the innermost loop (the last entry) walks the
// smallest-magnitude stride — the loop interchange that keeps each tile's
// memory accesses as local as possible for the blocked path.
func axisOrder(reference View) []int {
	ndims := len(reference.Strides)
	order := make([]int, ndims)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return abs64(reference.Strides[order[i]]) > abs64(reference.Strides[order[j]])
	})
	return order
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// iterateBlocked walks shape tiled into blocks of extent B along each
// axis (clamped to the axis's own extent for the last, partial tile),
// visiting axes in order (order[0] outermost, order[len-1] innermost)
// both across blocks and within a block. It is used in place of the
// plain drivers (iteratePlain2, iterateGeneric) when the common input view is not already row- or
// column-major-contiguous, so naive nested loops would thrash cache
// lines on every increment of the outermost axis.
func iterateBlocked(shape []int64, views []View, order []int, b int64, body Body) {
	if numel(shape) == 0 {
		return
	}
	ndims := len(shape)
	low := make([]int64, ndims)
	high := make([]int64, ndims)
	walkBlocks(shape, views, order, b, 0, low, high, body)
}

func walkBlocks(shape []int64, views []View, order []int, b int64, level int, low, high []int64, body Body) {
	if level == len(order) {
		walkBlockElements(shape, views, order, low, high, body)
		return
	}
	axis := order[level]
	for start := int64(0); start < shape[axis]; start += b {
		end := start + b
		if end > shape[axis] {
			end = shape[axis]
		}
		low[axis] = start
		high[axis] = end
		walkBlocks(shape, views, order, b, level+1, low, high, body)
	}
}

// walkBlockElements visits every subscript in [low, high) (per axis),
// traversing axes in order with order[len-1] as the innermost loop.
func walkBlockElements(shape []int64, views []View, order []int, low, high []int64, body Body) {
	ndims := len(shape)
	sub := make([]int64, ndims)
	copy(sub, low)

	ptrs := make([]int64, len(views))
	for i, v := range views {
		off := v.Offset
		for axis := 0; axis < ndims; axis++ {
			off += sub[axis] * v.Strides[axis]
		}
		ptrs[i] = off
	}

	for {
		body(ptrs)

		exhausted := true
		for level := len(order) - 1; level >= 0; level-- {
			axis := order[level]
			sub[axis]++
			for i, v := range views {
				ptrs[i] += v.Strides[axis]
			}
			if sub[axis] < high[axis] {
				exhausted = false
				break
			}
			span := high[axis] - low[axis]
			for i, v := range views {
				ptrs[i] -= v.Strides[axis] * span
			}
			sub[axis] = low[axis]
		}
		if exhausted {
			break
		}
	}
}
