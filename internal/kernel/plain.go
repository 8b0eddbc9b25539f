package kernel

// iteratePlain0 invokes body once with every view's starting offset — the
// single-element kernel for rank 0.
func iteratePlain0(views []View, body Body) {
	ptrs := make([]int64, len(views))
	for i, v := range views {
		ptrs[i] = v.Offset
	}
	body(ptrs)
}

// iteratePlain1 walks a rank-1 shape with one add per view per step, the
// simplest possible loop body and worth keeping as its own rank-1 entry
// rather than folding into the generic n-D driver, which carries a
// subscript vector and carry-propagation overhead this case never needs.
func iteratePlain1(shape []int64, views []View, body Body) {
	if shape[0] == 0 {
		return
	}
	ptrs := make([]int64, len(views))
	for i, v := range views {
		ptrs[i] = v.Offset
	}
	for e := int64(0); e < shape[0]; e++ {
		body(ptrs)
		for i, v := range views {
			ptrs[i] += v.Strides[0]
		}
	}
}

// iteratePlain2 walks a rank-2 shape with nested loops in natural
// (outer-then-inner, as stored) axis order. Used when the common input
// view is already row-major- or column-major-contiguous, so the natural
// nesting already has good locality and loop interchange would only add
// overhead.
func iteratePlain2(shape []int64, views []View, body Body) {
	if shape[0] == 0 || shape[1] == 0 {
		return
	}
	rowStart := make([]int64, len(views))
	for i, v := range views {
		rowStart[i] = v.Offset
	}
	ptrs := make([]int64, len(views))
	for i0 := int64(0); i0 < shape[0]; i0++ {
		copy(ptrs, rowStart)
		for i1 := int64(0); i1 < shape[1]; i1++ {
			body(ptrs)
			for i, v := range views {
				ptrs[i] += v.Strides[1]
			}
		}
		for i, v := range views {
			rowStart[i] += v.Strides[0]
		}
	}
}
