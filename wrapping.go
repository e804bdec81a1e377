package safeint

import "golang.org/x/exp/constraints"

// WrappingAdd returns the unique value congruent to lhs + rhs modulo
// 2^bitwidth(T). It never fails.
//
// Go defines fixed-width integer arithmetic as two's-complement truncation,
// so the native operators already provide the modular semantics the rest of
// the package builds on; these functions are that contract, spelled out.
func WrappingAdd[T constraints.Integer](lhs, rhs T) T {
	return lhs + rhs
}

// WrappingSub returns lhs - rhs reduced modulo 2^bitwidth(T). It never fails.
func WrappingSub[T constraints.Integer](lhs, rhs T) T {
	return lhs - rhs
}

// WrappingMul returns lhs * rhs reduced modulo 2^bitwidth(T). It never fails.
func WrappingMul[T constraints.Integer](lhs, rhs T) T {
	return lhs * rhs
}

// WrappingNeg returns the two's-complement negation of v. It never fails;
// negating the minimum value yields the minimum value again.
func WrappingNeg[T constraints.Signed](v T) T {
	return -v
}
