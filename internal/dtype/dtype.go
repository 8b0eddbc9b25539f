// Package dtype enumerates the element kinds an ndarray view may hold and
// exposes the width/character tables and cast admissibility rules that gate
// array operations before any kernel runs.
package dtype

// Dtype is a closed enumeration of element kinds.
type Dtype int8

const (
	Unknown Dtype = iota
	Bool
	Int8
	Uint8
	Uint8C
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Int128
	Uint128
	Int256
	Uint256
	Float16
	BFloat16
	Float32
	Float64
	Float128
	Complex64
	Complex128
	Binary
	Generic
)

// Kind groups dtypes into the equivalence classes same_kind_cast uses.
type Kind int8

const (
	KindUnknown Kind = iota
	KindBool
	KindSignedInteger
	KindUnsignedInteger
	KindUnsignedIntegerClamped
	KindFloat
	KindComplexFloat
	KindBinary
	KindGeneric
)

type info struct {
	width int // bytes; 0 for unsupported
	char  byte
	kind  Kind
	// magnitudeBits is the number of bits of exact magnitude an integer
	// dtype can hold (total width in bits minus one for signed types,
	// the full width for unsigned types), or the effective precision
	// (stored mantissa bits + 1 for the implicit leading bit) for
	// floating-point dtypes. It is the single quantity the safe-cast
	// lattice in cast.go compares across dtypes.
	magnitudeBits int
}

var table = map[Dtype]info{
	Unknown:   {0, 0, KindUnknown, 0},
	Bool:      {1, 'x', KindBool, 1},
	Int8:      {1, 's', KindSignedInteger, 7},
	Uint8:     {1, 'b', KindUnsignedInteger, 8},
	Uint8C:    {1, 'a', KindUnsignedIntegerClamped, 8},
	Int16:     {2, 'k', KindSignedInteger, 15},
	Uint16:    {2, 't', KindUnsignedInteger, 16},
	Int32:     {4, 'i', KindSignedInteger, 31},
	Uint32:    {4, 'u', KindUnsignedInteger, 32},
	Int64:     {8, 'l', KindSignedInteger, 63},
	Uint64:    {8, 'v', KindUnsignedInteger, 64},
	Int128:    {16, 'm', KindSignedInteger, 127},
	Uint128:   {16, 'w', KindUnsignedInteger, 128},
	Int256:    {32, 'n', KindSignedInteger, 255},
	Uint256:   {32, 'y', KindUnsignedInteger, 256},
	Float16:   {2, 'h', KindFloat, 11},
	BFloat16:  {2, 'e', KindFloat, 8},
	Float32:   {4, 'f', KindFloat, 24},
	Float64:   {8, 'd', KindFloat, 53},
	Float128:  {16, 'g', KindFloat, 113},
	Complex64: {8, 'c', KindComplexFloat, 24},
	// complex dtypes report the magnitudeBits of their real component;
	// complex widths below are twice the real component's width.
	Complex128: {16, 'z', KindComplexFloat, 53},
	Binary:     {1, 'r', KindBinary, 0},
	Generic:    {0, 'o', KindGeneric, 0},
}

// Width returns the number of bytes a single element of dtype occupies.
// Complex dtypes are twice the width of their real component. Returns 0
// for unsupported or sentinel values.
func Width(d Dtype) int {
	inf, ok := table[d]
	if !ok {
		return 0
	}
	return inf.width
}

// Char returns the one-letter code used in kernel signatures for dtype.
// Returns 0 for unsupported/sentinel values.
func Char(d Dtype) byte {
	inf, ok := table[d]
	if !ok {
		return 0
	}
	return inf.char
}

// KindOf returns the kind classification of dtype.
func KindOf(d Dtype) Kind {
	inf, ok := table[d]
	if !ok {
		return KindUnknown
	}
	return inf.kind
}

// Valid reports whether d is a known, supported dtype.
func Valid(d Dtype) bool {
	_, ok := table[d]
	return ok && d != Unknown
}

func lookup(d Dtype) (info, bool) {
	inf, ok := table[d]
	if !ok || d == Unknown {
		return info{}, false
	}
	return inf, true
}
