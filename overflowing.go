package safeint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// OverflowResult pairs the wrapped value of an operation with an overflow
// flag. Value always equals the mathematically correct result reduced modulo
// 2^bitwidth(T), whether or not overflow occurred; Overflowed is true iff the
// true result lies outside [min(T), max(T)].
type OverflowResult[T constraints.Integer] struct {
	Value      T
	Overflowed bool
}

// OverflowingAdd computes lhs + rhs with wraparound and reports whether the
// mathematical sum escaped the range of T. It never fails.
//
// 64-bit unsigned operands take the math/bits carry path, which compiles to
// the hardware's add-with-carry instruction. Other widths use sign analysis:
// addition overflows iff both operands share a sign and the result's sign
// differs from it.
func OverflowingAdd[T constraints.Integer](lhs, rhs T) OverflowResult[T] {
	if isSigned[T]() {
		value := lhs + rhs
		overflowed := (lhs < 0) == (rhs < 0) && (lhs < 0) != (value < 0)
		return OverflowResult[T]{Value: value, Overflowed: overflowed}
	}
	if bitSize[T]() == 64 {
		sum, carry := bits.Add64(uint64(lhs), uint64(rhs), 0)
		return OverflowResult[T]{Value: T(sum), Overflowed: carry != 0}
	}
	value := lhs + rhs
	return OverflowResult[T]{Value: value, Overflowed: value < lhs}
}

// OverflowingSub computes lhs - rhs with wraparound and reports whether the
// mathematical difference escaped the range of T. It never fails.
func OverflowingSub[T constraints.Integer](lhs, rhs T) OverflowResult[T] {
	if isSigned[T]() {
		value := lhs - rhs
		overflowed := (lhs >= 0 && rhs < 0 && value < 0) ||
			(lhs < 0 && rhs > 0 && value > 0)
		return OverflowResult[T]{Value: value, Overflowed: overflowed}
	}
	if bitSize[T]() == 64 {
		diff, borrow := bits.Sub64(uint64(lhs), uint64(rhs), 0)
		return OverflowResult[T]{Value: T(diff), Overflowed: borrow != 0}
	}
	value := lhs - rhs
	return OverflowResult[T]{Value: value, Overflowed: rhs > lhs}
}

// OverflowingMul computes lhs * rhs with wraparound and reports whether the
// mathematical product escaped the range of T. It never fails.
//
// The portable path detects overflow by dividing the wrapped product back by
// one operand. lhs == -1 is handled separately: it is the one divisor for
// which that division itself could overflow (min(T) / -1).
func OverflowingMul[T constraints.Integer](lhs, rhs T) OverflowResult[T] {
	if isSigned[T]() {
		value := lhs * rhs
		switch {
		case lhs == 0:
			return OverflowResult[T]{Value: value}
		case lhs == ^T(0):
			return OverflowResult[T]{Value: value, Overflowed: rhs == minOf[T]()}
		default:
			return OverflowResult[T]{Value: value, Overflowed: value/lhs != rhs}
		}
	}
	if bitSize[T]() == 64 {
		hi, lo := bits.Mul64(uint64(lhs), uint64(rhs))
		return OverflowResult[T]{Value: T(lo), Overflowed: hi != 0}
	}
	value := lhs * rhs
	return OverflowResult[T]{Value: value, Overflowed: lhs != 0 && value/lhs != rhs}
}
