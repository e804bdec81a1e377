//go:build safeint_overflow_wrap && !safeint_overflow_ignore

package safeint

const overflowPolicy = OverflowWrap
