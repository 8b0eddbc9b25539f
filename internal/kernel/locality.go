package kernel

import "github.com/dashflow-io/ndarray/internal/layout"

// isRowMajorContiguous and isColumnMajorContiguous reclassify a View
// using the same layout analyzers the descriptor itself caches its flags
// with, rather than trusting a flag the caller may not have computed
// (View is deliberately narrower than ndarray.Array).

func isRowMajorContiguous(v View) bool {
	min, max := layout.MinMaxViewBufferIndex(v.Shape, v.Strides, v.Offset)
	return layout.IsRowMajorContiguous(v.Strides, numel(v.Shape), v.Width, min, max)
}

func isColumnMajorContiguous(v View) bool {
	min, max := layout.MinMaxViewBufferIndex(v.Shape, v.Strides, v.Offset)
	return layout.IsColumnMajorContiguous(v.Strides, numel(v.Shape), v.Width, min, max)
}
