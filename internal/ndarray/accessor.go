package ndarray

import (
	"fmt"
	"unsafe"

	"github.com/dashflow-io/ndarray/internal/coord"
	"github.com/dashflow-io/ndarray/internal/dtype"
	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/layout"
)

// Element is the set of Go types the generic accessors below can address
// directly. It covers every dtype that has a native Go representation;
// the wider dtypes (int128/256, float16, bfloat16, float128) and the
// binary/generic kinds have no native Go type and are only reachable
// through the raw-byte accessors (GetRawBytes/SetRawBytes).
type Element interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// GetAt reads a T directly from the buffer at byte offset bind — the
// "raw byte pointer" addressing level. The descriptor's dtype is
// authoritative; a T that does not match a.Dtype is undefined behavior,
// exactly as the C implementation's reinterpret-cast accessors are.
func GetAt[T Element](a *Array, bind int64) T {
	return *(*T)(unsafe.Pointer(&a.data[bind]))
}

// SetAt writes a T directly into the buffer at byte offset bind.
func SetAt[T Element](a *Array, bind int64, v T) {
	*(*T)(unsafe.Pointer(&a.data[bind])) = v
}

// GetSub reads the element at subscript vector sub.
func GetSub[T Element](a *Array, sub []int64) (T, error) {
	bind, err := coord.Sub2Bind(a.shape, a.strides, a.offset, sub, a.submodes)
	if err != nil {
		var zero T
		return zero, err
	}
	return GetAt[T](a, bind), nil
}

// SetSub writes the element at subscript vector sub.
func SetSub[T Element](a *Array, sub []int64, v T) error {
	bind, err := coord.Sub2Bind(a.shape, a.strides, a.offset, sub, a.submodes)
	if err != nil {
		return err
	}
	SetAt(a, bind, v)
	return nil
}

// GetVind reads the element at view linear index idx.
func GetVind[T Element](a *Array, idx int64) (T, error) {
	bind, err := a.vindToBind(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return GetAt[T](a, bind), nil
}

// SetVind writes the element at view linear index idx.
func SetVind[T Element](a *Array, idx int64, v T) error {
	bind, err := a.vindToBind(idx)
	if err != nil {
		return err
	}
	SetAt(a, bind, v)
	return nil
}

// vindToBind is the optimized view-to-buffer index translation: for a
// contiguous, uniformly-signed view, a view linear index maps to a
// buffer offset by simple arithmetic, skipping the general subscript
// decomposition in internal/coord.
func (a *Array) vindToBind(idx int64) (int64, error) {
	if a.flags&(RowMajorContiguous|ColMajorContiguous) != 0 {
		if sign := layout.IterationOrder(a.strides); sign != 0 {
			norm, ok := indexmode.Resolve(idx, a.length-1, a.imode)
			if !ok {
				return -1, ErrOutOfRange
			}
			width := int64(dtype.Width(a.Dtype))
			if sign > 0 {
				return a.offset + norm*width, nil
			}
			return a.offset - norm*width, nil
		}
	}
	return coord.Vind2Bind(a.shape, a.strides, a.offset, a.order, idx, a.imode)
}

// GetGeneric dispatches on a.Dtype to the matching typed accessor and
// returns the element as an any. It exists for call sites that only
// learn the dtype at runtime; most call sites know T at compile time and
// should call GetSub/GetVind/GetAt directly instead.
func GetGeneric(a *Array, sub []int64) (any, error) {
	switch a.Dtype {
	case dtype.Bool:
		return GetSub[bool](a, sub)
	case dtype.Int8:
		return GetSub[int8](a, sub)
	case dtype.Uint8, dtype.Uint8C:
		return GetSub[uint8](a, sub)
	case dtype.Int16:
		return GetSub[int16](a, sub)
	case dtype.Uint16:
		return GetSub[uint16](a, sub)
	case dtype.Int32:
		return GetSub[int32](a, sub)
	case dtype.Uint32:
		return GetSub[uint32](a, sub)
	case dtype.Int64:
		return GetSub[int64](a, sub)
	case dtype.Uint64:
		return GetSub[uint64](a, sub)
	case dtype.Float32:
		return GetSub[float32](a, sub)
	case dtype.Float64:
		return GetSub[float64](a, sub)
	case dtype.Complex64:
		return GetSub[complex64](a, sub)
	case dtype.Complex128:
		return GetSub[complex128](a, sub)
	default:
		return nil, fmt.Errorf("%w: %v has no generic accessor", ErrUnsupportedDtype, a.Dtype)
	}
}

// SetGeneric dispatches on a.Dtype to the matching typed accessor. v must
// already be the Go type corresponding to a.Dtype (a type assertion
// failure is reported as ErrUnsupportedDtype, not a panic, since the
// value is caller-supplied data, not a construction-time invariant).
func SetGeneric(a *Array, sub []int64, v any) error {
	var ok bool
	var err error
	switch a.Dtype {
	case dtype.Bool:
		var x bool
		if x, ok = v.(bool); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Int8:
		var x int8
		if x, ok = v.(int8); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Uint8, dtype.Uint8C:
		var x uint8
		if x, ok = v.(uint8); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Int16:
		var x int16
		if x, ok = v.(int16); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Uint16:
		var x uint16
		if x, ok = v.(uint16); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Int32:
		var x int32
		if x, ok = v.(int32); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Uint32:
		var x uint32
		if x, ok = v.(uint32); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Int64:
		var x int64
		if x, ok = v.(int64); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Uint64:
		var x uint64
		if x, ok = v.(uint64); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Float32:
		var x float32
		if x, ok = v.(float32); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Float64:
		var x float64
		if x, ok = v.(float64); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Complex64:
		var x complex64
		if x, ok = v.(complex64); ok {
			err = SetSub(a, sub, x)
		}
	case dtype.Complex128:
		var x complex128
		if x, ok = v.(complex128); ok {
			err = SetSub(a, sub, x)
		}
	default:
		return fmt.Errorf("%w: %v has no generic accessor", ErrUnsupportedDtype, a.Dtype)
	}
	if !ok {
		return fmt.Errorf("%w: value does not match dtype %v", ErrUnsupportedDtype, a.Dtype)
	}
	return err
}

// GetRawBytes returns the width(a.Dtype)-byte slice at byte offset bind,
// for dtypes with no native Go representation (int128/256, float16,
// bfloat16, float128, binary).
func GetRawBytes(a *Array, bind int64, width int) []byte {
	return a.data[bind : bind+int64(width)]
}

// SetRawBytes copies v into the buffer at byte offset bind. len(v) must
// equal the dtype's width.
func SetRawBytes(a *Array, bind int64, v []byte) {
	copy(a.data[bind:bind+int64(len(v))], v)
}

// GetComplexPart32 reads one real-valued component (0 = real, 1 = imaginary)
// of a complex64 element addressed by byte offset bind, without going
// through the opaque complex128/complex64 value type.
func GetComplexPart32(a *Array, bind int64, part int) float32 {
	return GetAt[float32](a, bind+int64(part)*4)
}

// SetComplexPart32 writes one real-valued component of a complex64
// element.
func SetComplexPart32(a *Array, bind int64, part int, v float32) {
	SetAt(a, bind+int64(part)*4, v)
}

// GetComplexPart64 reads one real-valued component of a complex128
// element.
func GetComplexPart64(a *Array, bind int64, part int) float64 {
	return GetAt[float64](a, bind+int64(part)*8)
}

// SetComplexPart64 writes one real-valued component of a complex128
// element.
func SetComplexPart64(a *Array, bind int64, part int, v float64) {
	SetAt(a, bind+int64(part)*8, v)
}
