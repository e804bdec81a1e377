// Package safeint provides overflow-aware arithmetic for fixed-width
// signed and unsigned integers.
//
// It is built as three layers. The wrapping functions (WrappingAdd,
// WrappingSub, WrappingMul, WrappingNeg) perform plain modular arithmetic
// and never fail. The overflowing functions (OverflowingAdd, OverflowingSub,
// OverflowingMul) compute the same wrapped value and additionally report
// whether the mathematical result escaped the type's range. The checked
// functions (Add, Sub, Mul, Pow, Div, Mod, Neg, Shl, Shr, Cast) are the
// public face: they dispatch on a policy fixed at build time.
//
// # Policies
//
// The overflow policy is one of fail (default), wrap, or ignore, selected
// with the safeint_overflow_wrap or safeint_overflow_ignore build tags:
//
//	go build                                # overflow fails
//	go build -tags safeint_overflow_wrap    # overflow wraps
//	go build -tags safeint_overflow_ignore  # no detection
//
// Div and Mod are governed by a separate divide-by-zero policy of fail
// (default) or ignore, selected with the safeint_div_ignore tag. The
// policies are package constants, not variables: they cannot change at
// runtime and unused policy branches are compiled away.
//
// # Failures
//
// Under a fail policy, a violating operation builds an *Error carrying a
// message and the call site, passes it to the handler installed with
// SetFailureHandler, and panics with it. The error unwraps to ErrOverflow,
// ErrDivideByZero, or ErrShiftOutOfRange:
//
//	defer func() {
//		if err, ok := recover().(*Error); ok && errors.Is(err, safeint.ErrOverflow) {
//			// handle the overflow
//		}
//	}()
//	total := safeint.Mul(count, size)
//
// A failing operation never returns; there are no partial results.
//
// # Compile-time arithmetic
//
// Arithmetic on Go constants needs no checked call. The compiler rejects
// constant expressions that overflow their type, so constant computations
// keep the compile-time half of this contract for free:
//
//	const _ = math.MaxInt64 + 1 // does not compile as an int64 constant
//
// The checked functions govern everything evaluated at runtime.
//
// # Concurrency
//
// Every operation is a pure function on value operands. The policies are
// build-time constants and the failure handler is stored atomically, so all
// operations are safe to call from any number of goroutines.
package safeint
