package safeint

import "fmt"

// OverflowPolicy selects how the checked operations respond to integer
// overflow. The active policy is a build-time constant chosen with build
// tags; it cannot change at runtime, and the compiler drops the unused
// policy branches from every instantiation.
type OverflowPolicy int

const (
	// OverflowFail reports overflow through the failure handler and unwinds.
	// This is the default.
	OverflowFail OverflowPolicy = iota
	// OverflowWrap silently reduces results modulo 2^bitwidth, like the
	// Wrapping* functions. Selected with the safeint_overflow_wrap tag.
	OverflowWrap
	// OverflowIgnore performs the raw native operation with no detection.
	// Selected with the safeint_overflow_ignore tag.
	OverflowIgnore
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowFail:
		return "fail"
	case OverflowWrap:
		return "wrap"
	case OverflowIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// DivideByZeroPolicy selects how Div and Mod respond to a zero divisor.
// Like OverflowPolicy, it is fixed per build.
type DivideByZeroPolicy int

const (
	// DivideByZeroFail reports a zero divisor through the failure handler
	// and unwinds. This is the default.
	DivideByZeroFail DivideByZeroPolicy = iota
	// DivideByZeroIgnore divides without a guard; a zero divisor then
	// raises Go's native runtime panic. Selected with the
	// safeint_div_ignore tag.
	DivideByZeroIgnore
)

func (p DivideByZeroPolicy) String() string {
	switch p {
	case DivideByZeroFail:
		return "fail"
	case DivideByZeroIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ActiveOverflowPolicy reports the overflow policy this binary was built with.
func ActiveOverflowPolicy() OverflowPolicy { return overflowPolicy }

// ActiveDivideByZeroPolicy reports the divide-by-zero policy this binary was
// built with.
func ActiveDivideByZeroPolicy() DivideByZeroPolicy { return divideByZeroPolicy }
