package dtype

// CastingMode names the policy allowedCast enforces.
type CastingMode int8

const (
	CastNo CastingMode = iota
	CastEquiv
	CastSafe
	CastSameKind
	CastUnsafe
)

// SafeCast reports whether every representable `from` value is also
// representable in `to` without loss. The rule is generated from the kind
// lattice plus width ordering rather than a hand-authored table: each
// dtype exposes a magnitudeBits quantity (exact integer magnitude, or
// effective floating-point precision) and a cast is safe exactly when the
// destination kind can losslessly hold every value the source kind can
// produce at the source's magnitudeBits.
//
// This reproduces the literal safe-cast table the upstream C
// implementation ships for the fourteen dtypes that table covers, and
// extends the same magnitude-based rule to the wider integer and
// floating-point dtypes this registry adds.
func SafeCast(from, to Dtype) bool {
	if from == to {
		return true
	}
	fi, ok1 := lookup(from)
	ti, ok2 := lookup(to)
	if !ok1 || !ok2 {
		return false
	}
	// Bool, binary, and generic values are only safely cast to themselves.
	if fi.kind == KindBool || fi.kind == KindBinary || fi.kind == KindGeneric {
		return false
	}
	if ti.kind == KindBool || ti.kind == KindBinary || ti.kind == KindGeneric {
		return false
	}
	switch fi.kind {
	case KindSignedInteger, KindUnsignedInteger, KindUnsignedIntegerClamped:
		switch ti.kind {
		case KindSignedInteger:
			// An unsigned source needs one extra bit to be represented
			// as a signed value of the destination width.
			need := fi.magnitudeBits
			if fi.kind != KindSignedInteger {
				need++
			}
			return need <= ti.magnitudeBits
		case KindUnsignedInteger, KindUnsignedIntegerClamped:
			if fi.kind == KindSignedInteger {
				return false
			}
			return fi.magnitudeBits <= ti.magnitudeBits
		case KindFloat, KindComplexFloat:
			return fi.magnitudeBits <= ti.magnitudeBits
		default:
			return false
		}
	case KindFloat:
		switch ti.kind {
		case KindFloat, KindComplexFloat:
			return fi.magnitudeBits <= ti.magnitudeBits
		default:
			return false
		}
	case KindComplexFloat:
		if ti.kind == KindComplexFloat {
			return fi.magnitudeBits <= ti.magnitudeBits
		}
		return false
	default:
		return false
	}
}

// SameKindCast reports whether a cast from `from` to `to` is safe, or the
// two dtypes belong to the same kind.
func SameKindCast(from, to Dtype) bool {
	if from == to {
		return true
	}
	if SafeCast(from, to) {
		return true
	}
	fi, ok1 := lookup(from)
	ti, ok2 := lookup(to)
	if !ok1 || !ok2 {
		return false
	}
	return fi.kind == ti.kind
}

// AllowedCast gates casting admissibility from `from` to `to` under `mode`.
func AllowedCast(from, to Dtype, mode CastingMode) bool {
	if from == to {
		return true
	}
	switch mode {
	case CastUnsafe:
		return true
	case CastNo, CastEquiv:
		// The core ships no byte-swap dtype variants, so `equiv` (which
		// nominally also allows byte-swapped equivalents of the same
		// type) is observationally identical to `no` here.
		return false
	case CastSafe:
		return SafeCast(from, to)
	case CastSameKind:
		return SameKindCast(from, to)
	default:
		return false
	}
}
