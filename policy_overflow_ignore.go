//go:build safeint_overflow_ignore

package safeint

const overflowPolicy = OverflowIgnore
