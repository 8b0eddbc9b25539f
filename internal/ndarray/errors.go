package ndarray

import (
	"errors"

	"github.com/dashflow-io/ndarray/internal/coord"
)

// The closed error taxonomy of this package, returned (wrapped with
// additional context via fmt.Errorf's %w where useful) rather than a bare
// status integer or a panic — the descriptor's callers are expected to
// treat these as ordinary, recoverable conditions, not programmer errors.
// The accessors report ErrOutOfRange and ErrUnsupportedDtype. Broadcasting
// and kernel dispatch report their own sentinels (broadcast.ErrIncompatible,
// kernel.ErrRankMismatch), and no function in this module returns
// ErrIncompatible or ErrCastRejected.
var (
	// ErrOutOfRange: a subscript or linear index lies outside its
	// axis/view under Error mode. It is the same sentinel internal/coord
	// returns, so every accessor path reports the same error value.
	ErrOutOfRange = coord.ErrOutOfRange

	// ErrIncompatible: a broadcasting failure, a buffer smaller than a
	// view demands, or a dispatcher given an unknown rank.
	ErrIncompatible = errors.New("ndarray: incompatible shapes or buffer")

	// ErrUnsupportedDtype: a dtype enum value with no entry in the
	// width/char tables, or with no native Go accessor.
	ErrUnsupportedDtype = errors.New("ndarray: unsupported dtype")

	// ErrCastRejected: a casting mode rejects a (from, to) dtype pair.
	ErrCastRejected = errors.New("ndarray: cast rejected")
)
