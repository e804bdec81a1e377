package safeint

import "golang.org/x/exp/constraints"

// Pow returns base raised to exp, computed by iterated checked
// multiplication starting from the multiplicative identity. Pow(base, 0) is
// 1 for every base, including 0. Any intermediate overflow behaves exactly
// like a single Mul under the active policy.
func Pow[T constraints.Integer, U constraints.Unsigned](base T, exp U) T {
	res := T(1)
	for i := U(0); i < exp; i++ {
		res = checkedMul(res, base)
	}
	return res
}

// MulAll multiplies its arguments left to right with checked
// multiplication, failing as soon as an intermediate product overflows
// under the active policy.
func MulAll[T constraints.Integer](lhs, rhs T, rest ...T) T {
	res := checkedMul(lhs, rhs)
	for _, v := range rest {
		res = checkedMul(res, v)
	}
	return res
}
