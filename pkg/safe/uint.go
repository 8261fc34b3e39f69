// Package safe provides helpers for overflow-aware unsigned arithmetic.
package safe

import "math/bits"

// Unsigned lists the integer types handled by this package.
type Unsigned interface {
	~uint | ~uint32 | ~uint64
}

// Sub returns a-b, clamped at zero instead of wrapping.
func Sub[T Unsigned](a, b T) T {
	if b >= a {
		return 0
	}
	return a - b
}

// Mul returns a*b, clamped at the maximum value of T instead of wrapping.
func Mul[T Unsigned](a, b T) T {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	limit := ^T(0)
	if hi != 0 || lo > uint64(limit) {
		return limit
	}
	return T(lo)
}
