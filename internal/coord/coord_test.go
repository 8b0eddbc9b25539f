package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/layout"
)

var (
	scenarioShape   = []int64{3, 3}
	scenarioStrides = []int64{-3, 1}
	scenarioOffset  = int64(6)
)

func TestBind2VindScenario(t *testing.T) {
	got, err := Bind2Vind(scenarioShape, scenarioStrides, scenarioOffset, layout.RowMajor, 7, indexmode.Error)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestVind2BindScenario(t *testing.T) {
	got, err := Vind2Bind(scenarioShape, scenarioStrides, scenarioOffset, layout.RowMajor, 1, indexmode.Error)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestInd2SubScenario(t *testing.T) {
	got, err := Ind2Sub(scenarioShape, scenarioStrides, scenarioOffset, layout.RowMajor, 7, indexmode.Error)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, got)
}

func TestInd2SubZeroOffsetIsViewOrder(t *testing.T) {
	// With offset == 0, idx is interpreted as a view index: decomposition
	// uses shape alone, independent of stride sign.
	shape := []int64{3, 3}
	strides := []int64{3, 1}
	got, err := Ind2Sub(shape, strides, 0, layout.RowMajor, 7, indexmode.Error)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, got)
}

func TestSub2BindRecyclesModes(t *testing.T) {
	shape := []int64{3, 3}
	strides := []int64{3, 1}
	got, err := Sub2Bind(shape, strides, 0, []int64{5, 1}, []indexmode.Mode{indexmode.Clamp})
	require.NoError(t, err)
	assert.Equal(t, int64(2*3+1), got) // axis 0 clamped to 2
}

func TestSub2BindErrorMode(t *testing.T) {
	shape := []int64{3, 3}
	strides := []int64{3, 1}
	_, err := Sub2Bind(shape, strides, 0, []int64{5, 1}, []indexmode.Mode{indexmode.Error})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// TestRoundTripVindBind checks that for every view linear index i in
// [0, length), translating to a buffer offset and back recovers i.
func TestRoundTripVindBind(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ndims := rapid.IntRange(1, 4).Draw(t, "ndims")
		shape := make([]int64, ndims)
		for i := range shape {
			shape[i] = rapid.Int64Range(1, 5).Draw(t, "dim")
		}
		order := layout.RowMajor
		if rapid.Bool().Draw(t, "column") {
			order = layout.ColumnMajor
		}
		negate := rapid.Bool().Draw(t, "negate")

		elemStrides := layout.ShapeToStrides(shape, order)
		strides := make([]int64, ndims)
		copy(strides, elemStrides)
		offset := int64(0)
		if negate {
			for i := range strides {
				strides[i] = -strides[i]
			}
			offset = layoutStridesToOffset(shape, strides)
		}

		length := int64(1)
		for _, s := range shape {
			length *= s
		}
		idx := rapid.Int64Range(0, length-1).Draw(t, "idx")

		bind, err := Vind2Bind(shape, strides, offset, order, idx, indexmode.Error)
		require.NoError(t, err)
		back, err := Bind2Vind(shape, strides, offset, order, bind, indexmode.Error)
		require.NoError(t, err)
		assert.Equal(t, idx, back)
	})
}

func layoutStridesToOffset(shape, strides []int64) int64 {
	var offset int64
	for i := range strides {
		if strides[i] < 0 {
			offset -= strides[i] * (shape[i] - 1)
		}
	}
	return offset
}
