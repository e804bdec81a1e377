package safeint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/constraints"
)

// requireFailure asserts that fn panics with a *Error matching want and
// that the captured call site points into a real file.
func requireFailure(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected the operation to fail")
		err, ok := r.(*Error)
		require.True(t, ok, "panic value should be *Error, got %T", r)
		require.ErrorIs(t, err, want)
		require.NotEmpty(t, err.Loc().File)
		require.NotZero(t, err.Loc().Line)
	}()
	fn()
}

// bigOf converts any fixed-width integer to a big.Int for reference
// computations.
func bigOf[T constraints.Integer](v T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// inRange reports whether the unbounded integer v is representable in T.
func inRange[T constraints.Integer](v *big.Int) bool {
	return v.Cmp(bigOf(minOf[T]())) >= 0 && v.Cmp(bigOf(maxOf[T]())) <= 0
}

// wrapToRange reduces the unbounded integer v modulo 2^bitwidth(T) into the
// representable range of T.
func wrapToRange[T constraints.Integer](v *big.Int) *big.Int {
	width := bitSize[T]()
	modulus := new(big.Int).Lsh(big.NewInt(1), width)
	wrapped := new(big.Int).Mod(v, modulus) // always in [0, 2^width)
	if isSigned[T]() && wrapped.Cmp(bigOf(maxOf[T]())) > 0 {
		wrapped.Sub(wrapped, modulus)
	}
	return wrapped
}
