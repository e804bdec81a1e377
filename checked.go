package safeint

import "golang.org/x/exp/constraints"

// Add returns lhs + rhs under the overflow policy this binary was built
// with. Under OverflowFail an overflowing sum is reported through the
// failure handler as "signed overflow in addition"; under OverflowWrap the
// result wraps; under OverflowIgnore the raw native sum is returned.
//
// Compile-time arithmetic needs no checked call: Go constant expressions
// are rejected by the compiler when they overflow, which is the build-time
// half of this contract.
func Add[T constraints.Integer](lhs, rhs T) T {
	return checkedAdd(lhs, rhs)
}

// Sub returns lhs - rhs under the active overflow policy.
func Sub[T constraints.Integer](lhs, rhs T) T {
	return checkedSub(lhs, rhs)
}

// Mul returns lhs * rhs under the active overflow policy.
func Mul[T constraints.Integer](lhs, rhs T) T {
	return checkedMul(lhs, rhs)
}

// The checked* helpers are shared by the exported operations and report the
// caller of their exported wrapper on failure.

func checkedAdd[T constraints.Integer](lhs, rhs T) T {
	switch overflowPolicy {
	case OverflowIgnore:
		return lhs + rhs
	case OverflowWrap:
		return WrappingAdd(lhs, rhs)
	default:
		res := OverflowingAdd(lhs, rhs)
		if res.Overflowed {
			fail(ErrOverflow, "signed overflow in addition", 1)
		}
		return res.Value
	}
}

func checkedSub[T constraints.Integer](lhs, rhs T) T {
	switch overflowPolicy {
	case OverflowIgnore:
		return lhs - rhs
	case OverflowWrap:
		return WrappingSub(lhs, rhs)
	default:
		res := OverflowingSub(lhs, rhs)
		if res.Overflowed {
			fail(ErrOverflow, "signed overflow in subtraction", 1)
		}
		return res.Value
	}
}

func checkedMul[T constraints.Integer](lhs, rhs T) T {
	switch overflowPolicy {
	case OverflowIgnore:
		return lhs * rhs
	case OverflowWrap:
		return WrappingMul(lhs, rhs)
	default:
		res := OverflowingMul(lhs, rhs)
		if res.Overflowed {
			fail(ErrOverflow, "signed overflow in multiplication", 1)
		}
		return res.Value
	}
}
