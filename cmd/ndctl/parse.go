package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dashflow-io/ndarray/internal/dtype"
	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/layout"
)

// dtypeNames maps the CLI's human-readable dtype names to the closed
// dtype.Dtype enum. This table is local to the CLI; internal/dtype only
// knows the single-letter codes each dtype is assigned.
var dtypeNames = map[string]dtype.Dtype{
	"bool":       dtype.Bool,
	"int8":       dtype.Int8,
	"uint8":      dtype.Uint8,
	"uint8c":     dtype.Uint8C,
	"int16":      dtype.Int16,
	"uint16":     dtype.Uint16,
	"int32":      dtype.Int32,
	"uint32":     dtype.Uint32,
	"int64":      dtype.Int64,
	"uint64":     dtype.Uint64,
	"int128":     dtype.Int128,
	"uint128":    dtype.Uint128,
	"int256":     dtype.Int256,
	"uint256":    dtype.Uint256,
	"float16":    dtype.Float16,
	"bfloat16":   dtype.BFloat16,
	"float32":    dtype.Float32,
	"float64":    dtype.Float64,
	"float128":   dtype.Float128,
	"complex64":  dtype.Complex64,
	"complex128": dtype.Complex128,
	"binary":     dtype.Binary,
	"generic":    dtype.Generic,
}

func parseDtype(s string) (dtype.Dtype, error) {
	d, ok := dtypeNames[strings.ToLower(s)]
	if !ok {
		return dtype.Unknown, fmt.Errorf("unknown dtype %q", s)
	}
	return d, nil
}

func parseOrder(s string) (layout.Order, error) {
	switch strings.ToLower(s) {
	case "", "row", "row-major", "c":
		return layout.RowMajor, nil
	case "col", "column", "column-major", "fortran", "f":
		return layout.ColumnMajor, nil
	default:
		return 0, fmt.Errorf("unknown order %q (want row or column)", s)
	}
}

func parseMode(s string) (indexmode.Mode, error) {
	switch strings.ToLower(s) {
	case "", "error":
		return indexmode.Error, nil
	case "clamp":
		return indexmode.Clamp, nil
	case "wrap":
		return indexmode.Wrap, nil
	default:
		return 0, fmt.Errorf("unknown index mode %q (want error, clamp, or wrap)", s)
	}
}

// parseShape parses a comma-separated shape such as "2,3,4" into an
// []int64. An empty string yields a 0-rank shape (nil).
func parseShape(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid shape component %q: %w", p, err)
		}
		out[i] = n
	}
	return out, nil
}

// parseCastingMode maps a CLI mode name to dtype.CastingMode.
func parseCastingMode(s string) (dtype.CastingMode, error) {
	switch strings.ToLower(s) {
	case "no":
		return dtype.CastNo, nil
	case "equiv":
		return dtype.CastEquiv, nil
	case "safe":
		return dtype.CastSafe, nil
	case "same-kind", "samekind":
		return dtype.CastSameKind, nil
	case "unsafe":
		return dtype.CastUnsafe, nil
	default:
		return 0, fmt.Errorf("unknown casting mode %q (want no, equiv, safe, same-kind, or unsafe)", s)
	}
}
