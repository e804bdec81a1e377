//go:build !safeint_div_ignore

package safeint

const divideByZeroPolicy = DivideByZeroFail
