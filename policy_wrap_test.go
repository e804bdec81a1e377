//go:build safeint_overflow_wrap && !safeint_overflow_ignore

package safeint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests run only under the safeint_overflow_wrap build:
//
//	go test -tags safeint_overflow_wrap

func TestWrapPolicyChecked(t *testing.T) {
	assert.Equal(t, OverflowWrap, ActiveOverflowPolicy())

	t.Run("add wraps", func(t *testing.T) {
		assert.Equal(t, int8(math.MinInt8), Add(int8(math.MaxInt8), int8(1)))
		assert.Equal(t, uint8(0), Add(uint8(math.MaxUint8), uint8(1)))
		assert.Equal(t, WrappingAdd(int64(math.MaxInt64), 1), Add(int64(math.MaxInt64), 1))
	})

	t.Run("sub wraps", func(t *testing.T) {
		assert.Equal(t, uint8(math.MaxUint8), Sub(uint8(0), uint8(1)))
		assert.Equal(t, WrappingSub(int32(math.MinInt32), 1), Sub(int32(math.MinInt32), 1))
	})

	t.Run("mul wraps", func(t *testing.T) {
		assert.Equal(t, int8(math.MinInt8), Mul(int8(math.MinInt8), int8(-1)))
		assert.Equal(t, WrappingMul(uint16(math.MaxUint16), 2), Mul(uint16(math.MaxUint16), uint16(2)))
	})

	t.Run("neg wraps", func(t *testing.T) {
		assert.Equal(t, int16(math.MinInt16), Neg(int16(math.MinInt16)))
	})

	t.Run("pow wraps", func(t *testing.T) {
		// 2^8 mod 2^8 == 0
		assert.Equal(t, uint8(0), Pow(uint8(2), uint(8)))
	})

	t.Run("div mod wrap the min by minus one case", func(t *testing.T) {
		assert.Equal(t, int8(math.MinInt8), Div(int8(math.MinInt8), int8(-1)))
		assert.Equal(t, int8(0), Mod(int8(math.MinInt8), int8(-1)))
	})

	t.Run("cast truncates", func(t *testing.T) {
		assert.Equal(t, uint8(0), Cast[uint8](uint64(256)))
		assert.Equal(t, uint8(255), Cast[uint8](int8(-1)))
	})

	t.Run("shift amount is masked", func(t *testing.T) {
		assert.Equal(t, uint8(2), Shl(uint8(1), 9)) // 9 & 7 == 1
		assert.Equal(t, uint8(1), Shr(uint8(2), 9))
	})
}
