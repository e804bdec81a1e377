package safeint

import "golang.org/x/exp/constraints"

// Div returns the truncating quotient lhs / rhs. A zero divisor is governed
// by the divide-by-zero policy this binary was built with: under
// DivideByZeroFail it is reported as "divide by zero", under
// DivideByZeroIgnore the raw division raises Go's native runtime panic.
//
// The one quotient that overflows truncating division, min(T) / -1, routes
// through the overflow policy like any other overflow.
func Div[T constraints.Integer](lhs, rhs T) T {
	if divideByZeroPolicy == DivideByZeroFail && rhs == 0 {
		fail(ErrDivideByZero, "divide by zero", 0)
	}
	if overflowPolicy == OverflowFail && isSigned[T]() && rhs == ^T(0) && lhs == minOf[T]() {
		fail(ErrOverflow, "signed overflow in division", 0)
	}
	return lhs / rhs
}

// Mod returns the truncating remainder lhs % rhs, with the same zero-divisor
// handling as Div. min(T) % -1 is mathematically zero, but the hardware
// quotient it rides on overflows, so it fails under OverflowFail as well.
func Mod[T constraints.Integer](lhs, rhs T) T {
	if divideByZeroPolicy == DivideByZeroFail && rhs == 0 {
		fail(ErrDivideByZero, "divide by zero", 0)
	}
	if overflowPolicy == OverflowFail && isSigned[T]() && rhs == ^T(0) && lhs == minOf[T]() {
		fail(ErrOverflow, "signed overflow in modulo", 0)
	}
	return lhs % rhs
}
