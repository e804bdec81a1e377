package safeint

import "golang.org/x/exp/constraints"

// Neg returns -v under the active overflow policy. The only input that
// overflows is min(T), whose negation is not representable; under
// OverflowFail it is reported as "signed overflow in negation", under
// OverflowWrap it yields min(T) again.
func Neg[T constraints.Signed](v T) T {
	switch overflowPolicy {
	case OverflowIgnore:
		return -v
	case OverflowWrap:
		return WrappingNeg(v)
	default:
		if v == minOf[T]() {
			fail(ErrOverflow, "signed overflow in negation", 0)
		}
		return -v
	}
}

// Shl returns lhs << amount. Bits shifted past the width of T are discarded,
// matching two's-complement wraparound, so shifting 1 into the sign bit of a
// signed type yields min(T).
//
// The shift amount may have any integer type. Under OverflowFail an amount
// that is negative or not smaller than bitwidth(T) is reported as a failure;
// under OverflowWrap the amount is reduced modulo the bit width; under
// OverflowIgnore the raw shift is performed (a negative amount then raises
// Go's native runtime panic).
func Shl[T constraints.Integer, U constraints.Integer](lhs T, amount U) T {
	switch overflowPolicy {
	case OverflowIgnore:
		return lhs << amount
	case OverflowWrap:
		return lhs << (uint(amount) & (bitSize[T]() - 1))
	default:
		if shiftOutOfRange[T](amount) {
			fail(ErrShiftOutOfRange, "shift amount out of range in left shift", 0)
		}
		return lhs << amount
	}
}

// Shr returns lhs >> amount: an arithmetic shift for signed T, a logical
// shift for unsigned T. Shift amounts are validated exactly like Shl.
func Shr[T constraints.Integer, U constraints.Integer](lhs T, amount U) T {
	switch overflowPolicy {
	case OverflowIgnore:
		return lhs >> amount
	case OverflowWrap:
		return lhs >> (uint(amount) & (bitSize[T]() - 1))
	default:
		if shiftOutOfRange[T](amount) {
			fail(ErrShiftOutOfRange, "shift amount out of range in right shift", 0)
		}
		return lhs >> amount
	}
}

func shiftOutOfRange[T constraints.Integer, U constraints.Integer](amount U) bool {
	if amount < 0 {
		return true
	}
	return uint64(amount) >= uint64(bitSize[T]())
}
