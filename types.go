package safeint

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// isSigned reports whether T is a signed integer type. The comparison folds
// to a constant per instantiation.
func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// bitSize returns the width of T in bits.
func bitSize[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// minOf returns the smallest value representable in T.
func minOf[T constraints.Integer]() T {
	if !isSigned[T]() {
		var zero T
		return zero
	}
	return ^T(0) << (bitSize[T]() - 1)
}

// maxOf returns the largest value representable in T.
func maxOf[T constraints.Integer]() T {
	if isSigned[T]() {
		return ^minOf[T]()
	}
	return ^T(0)
}
