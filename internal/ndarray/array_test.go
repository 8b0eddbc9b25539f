package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dashflow-io/ndarray/internal/dtype"
	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/layout"
)

func TestNewDimMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = New(dtype.Float64, make([]byte, 8), []int64{2, 2}, []int64{8}, 0,
			layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	})
}

func TestNewEmptyModesPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = New(dtype.Float64, make([]byte, 8), []int64{1}, []int64{8}, 0,
			layout.RowMajor, indexmode.Error, nil)
	})
}

func TestNewUnsupportedDtype(t *testing.T) {
	_, err := New(dtype.Unknown, nil, nil, nil, 0, layout.RowMajor, indexmode.Error,
		[]indexmode.Mode{indexmode.Error})
	assert.ErrorIs(t, err, ErrUnsupportedDtype)
}

func TestFromShapeRowMajorContiguousFlag(t *testing.T) {
	a, err := FromShape(dtype.Float64, make([]byte, 6*8), []int64{2, 3},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	assert.Equal(t, int64(6), a.Length())
	assert.Equal(t, int64(48), a.ByteLength())
	assert.NotZero(t, a.Flags()&RowMajorContiguous)
	assert.True(t, a.IsContiguous())
}

func TestFromShapeColumnMajorContiguousFlag(t *testing.T) {
	a, err := FromShape(dtype.Float32, make([]byte, 12*4), []int64{3, 4},
		layout.ColumnMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	assert.NotZero(t, a.Flags()&ColMajorContiguous)
}

func TestZeroRankLengthIsOne(t *testing.T) {
	a, err := FromShape(dtype.Int32, make([]byte, 4), nil,
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Length())
}

func TestZeroExtentAxisIsEmpty(t *testing.T) {
	a, err := FromShape(dtype.Int32, nil, []int64{0, 5},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.Length())
	assert.Zero(t, a.Flags())
}

func TestGetSetSubRoundTrip(t *testing.T) {
	a, err := FromShape(dtype.Int32, make([]byte, 2*3*4), []int64{2, 3},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)

	require.NoError(t, SetSub[int32](a, []int64{1, 2}, 42))
	got, err := GetSub[int32](a, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)
}

func TestGetSetVindRoundTrip(t *testing.T) {
	a, err := FromShape(dtype.Float64, make([]byte, 4*8), []int64{4},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)

	require.NoError(t, SetVind[float64](a, 3, 3.5))
	got, err := GetVind[float64](a, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)
}

func TestGetSetVindNegativeStrideFastPath(t *testing.T) {
	width := 8
	buf := make([]byte, 4*width)
	a, err := New(dtype.Float64, buf, []int64{4}, []int64{-int64(width)}, int64(3*width),
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	require.True(t, a.IsContiguous())

	for i := int64(0); i < 4; i++ {
		require.NoError(t, SetVind[float64](a, i, float64(i)))
	}
	for i := int64(0); i < 4; i++ {
		got, err := GetVind[float64](a, i)
		require.NoError(t, err)
		assert.Equal(t, float64(i), got)
	}
}

func TestGetSetGenericDispatch(t *testing.T) {
	a, err := FromShape(dtype.Uint16, make([]byte, 2*2), []int64{2},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)

	require.NoError(t, SetGeneric(a, []int64{1}, uint16(7)))
	got, err := GetGeneric(a, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, uint16(7), got)
}

func TestSetGenericTypeMismatch(t *testing.T) {
	a, err := FromShape(dtype.Uint16, make([]byte, 2*2), []int64{2},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	err = SetGeneric(a, []int64{0}, "not a uint16")
	assert.ErrorIs(t, err, ErrUnsupportedDtype)
}

func TestComplexParts64(t *testing.T) {
	a, err := FromShape(dtype.Complex128, make([]byte, 16), []int64{1},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)

	SetComplexPart64(a, 0, 0, 1.5)
	SetComplexPart64(a, 0, 1, -2.5)
	assert.Equal(t, 1.5, GetComplexPart64(a, 0, 0))
	assert.Equal(t, -2.5, GetComplexPart64(a, 0, 1))

	v, err := GetSub[complex128](a, []int64{0})
	require.NoError(t, err)
	assert.Equal(t, complex(1.5, -2.5), v)
}

func TestComplexParts32(t *testing.T) {
	a, err := FromShape(dtype.Complex64, make([]byte, 8), []int64{1},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)

	SetComplexPart32(a, 0, 0, 1)
	SetComplexPart32(a, 0, 1, 2)
	assert.Equal(t, float32(1), GetComplexPart32(a, 0, 0))
	assert.Equal(t, float32(2), GetComplexPart32(a, 0, 1))
}

func TestRawBytesRoundTrip(t *testing.T) {
	a, err := FromShape(dtype.Float64, make([]byte, 8), []int64{1},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)

	SetRawBytes(a, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, GetRawBytes(a, 0, 8))
}

// TestSubVindRoundTripInvariant checks that for a contiguous row-major
// view, writing by subscript and reading back by the corresponding view
// linear index agree.
func TestSubVindRoundTripInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rows := rapid.IntRange(1, 5).Draw(rt, "rows")
		cols := rapid.IntRange(1, 5).Draw(rt, "cols")
		shape := []int64{int64(rows), int64(cols)}

		a, err := FromShape(dtype.Int32, make([]byte, rows*cols*4), shape,
			layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
		require.NoError(t, err)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				vind := int64(r*cols + c)
				val := int32(r*1000 + c)
				require.NoError(t, SetSub[int32](a, []int64{int64(r), int64(c)}, val))
				got, err := GetVind[int32](a, vind)
				require.NoError(t, err)
				assert.Equal(t, val, got)
			}
		}
	})
}

func TestNonsingletonSingletonAccessors(t *testing.T) {
	a, err := FromShape(dtype.Int8, make([]byte, 5), []int64{1, 5, 1},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.NonsingletonDimensions())
	assert.Equal(t, int64(2), a.SingletonDimensions())
}

func TestBufferLengthCompatible(t *testing.T) {
	a, err := FromShape(dtype.Int8, make([]byte, 6), []int64{2, 3},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	assert.True(t, a.BufferLengthCompatible(6))
	assert.False(t, a.BufferLengthCompatible(5))
}

func TestEnableDisableFlag(t *testing.T) {
	a, err := FromShape(dtype.Int8, make([]byte, 1), []int64{1},
		layout.RowMajor, indexmode.Error, []indexmode.Mode{indexmode.Error})
	require.NoError(t, err)
	a.DisableFlag(RowMajorContiguous)
	assert.Zero(t, a.Flags()&RowMajorContiguous)
	a.EnableFlag(RowMajorContiguous)
	assert.NotZero(t, a.Flags()&RowMajorContiguous)
}
