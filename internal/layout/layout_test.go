package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestContiguityScenario(t *testing.T) {
	// A natural row-major 10x10 uint8 layout is row-major-contiguous but
	// not column-major-contiguous.
	shape := []int64{10, 10}
	strides := []int64{10, 1}
	const width = 1
	const offset = 0
	length := Numel(shape)
	min, max := MinMaxViewBufferIndex(shape, strides, offset)

	assert.True(t, IsRowMajorContiguous(strides, length, width, min, max))
	assert.False(t, IsColumnMajorContiguous(strides, length, width, min, max))
}

func TestBufferLengthCompatibilityScenario(t *testing.T) {
	// A 1000-element buffer holds a natural 10x10 view but a 10-element
	// buffer does not.
	shape := []int64{10, 10}
	strides := []int64{10, 1}
	const width = 1
	const offset = 0

	assert.True(t, BufferLengthCompatible(width, 1000, shape, strides, offset))
	assert.False(t, BufferLengthCompatible(width, 10, shape, strides, offset))
}

func TestIterationOrderEmptyIsPositive(t *testing.T) {
	assert.Equal(t, int8(1), IterationOrder(nil))
}

func TestStridesToOrderDegenerateRanks(t *testing.T) {
	assert.Equal(t, OrderBoth, StridesToOrder(nil))
	assert.Equal(t, OrderBoth, StridesToOrder([]int64{-5}))
	assert.Equal(t, OrderBoth, StridesToOrder([]int64{7}))
}

func TestNumelZeroRank(t *testing.T) {
	assert.Equal(t, int64(0), Numel(nil))
	assert.Equal(t, int64(0), Numel([]int64{3, 0, 5}))
	assert.Equal(t, int64(15), Numel([]int64{3, 5}))
	assert.Equal(t, int64(0), Numel([]int64{3, -1}))
}

func TestBufferLengthCompatibleShapeStrictInequality(t *testing.T) {
	shape := []int64{3, 4}
	assert.False(t, BufferLengthCompatibleShape(12, shape))
	assert.True(t, BufferLengthCompatibleShape(13, shape))
}

func TestStridesToOffsetExample(t *testing.T) {
	shape := []int64{2, 3, 10}
	strides := []int64{30, -10, 1}
	assert.Equal(t, int64(20), StridesToOffset(shape, strides))
}

func TestShapeToStridesNatural(t *testing.T) {
	shape := []int64{2, 3, 10}
	row := ShapeToStrides(shape, RowMajor)
	assert.Equal(t, []int64{30, 10, 1}, row)

	col := ShapeToStrides(shape, ColumnMajor)
	assert.Equal(t, []int64{1, 2, 6}, col)
}

func TestNonsingletonSingletonDimensions(t *testing.T) {
	shape := []int64{10, 1, 1, 4}
	assert.Equal(t, int64(2), NonsingletonDimensions(shape))
	assert.Equal(t, int64(2), SingletonDimensions(shape))
}

// TestContiguityInvariant checks that for any shape and order, natural
// strides scaled by width with a zero offset always set the
// corresponding contiguity flag.
func TestContiguityInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ndims := rapid.IntRange(1, 5).Draw(t, "ndims")
		shape := make([]int64, ndims)
		for i := range shape {
			shape[i] = rapid.Int64Range(1, 6).Draw(t, "dim")
		}
		const width = 4

		order := RowMajor
		if rapid.Bool().Draw(t, "column") {
			order = ColumnMajor
		}
		elemStrides := ShapeToStrides(shape, order)
		byteStrides := make([]int64, ndims)
		for i, s := range elemStrides {
			byteStrides[i] = s * width
		}

		length := Numel(shape)
		min, max := MinMaxViewBufferIndex(shape, byteStrides, 0)

		if order == RowMajor {
			assert.True(t, IsRowMajorContiguous(byteStrides, length, width, min, max))
		} else {
			assert.True(t, IsColumnMajorContiguous(byteStrides, length, width, min, max))
		}
	})
}
