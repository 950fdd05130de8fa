package float

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	cases := []struct {
		in        Float
		want      Bits
		zero, sub bool
	}{
		{1, Bits{Sign: 0, Exponent: 0x3ff, Mantissa: 0}, false, false},
		{-2, Bits{Sign: 1, Exponent: 0x400, Mantissa: 0}, false, false},
		{1.5, Bits{Sign: 0, Exponent: 0x3ff, Mantissa: 1 << 51}, false, false},
		{posZero, Bits{}, true, false},
		{negZero, Bits{Sign: 1}, true, false},
		{math.SmallestNonzeroFloat64, Bits{Mantissa: 1}, false, true},
		{Inf(1), Bits{Exponent: 0x7ff}, false, false},
		{Inf(-1), Bits{Sign: 1, Exponent: 0x7ff}, false, false},
	}
	for _, c := range cases {
		t.Run(c.in.String(), func(t *testing.T) {
			got := c.in.Bits()
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.zero, got.Zero())
			assert.Equal(t, c.sub, got.Subnormal())
			assert.Equal(t, c.in.Class(), got.Class())
			assert.Equal(t, c.in.Signbit(), got.Sign == 1)

			// fields cover the whole bit pattern, including the sign of zero
			u := uint64(got.Sign)<<63 | uint64(got.Exponent)<<52 | got.Mantissa
			assert.Equal(t, math.Float64bits(float64(c.in)), u)
		})
	}
}

func TestBitsNaN(t *testing.T) {
	b := NaN().Bits()
	assert.Equal(t, uint16(0x7ff), b.Exponent)
	assert.NotZero(t, b.Mantissa)
	assert.Equal(t, ClassNaN, b.Class())

	// any non-zero mantissa with an all-ones exponent is a NaN
	for _, m := range []uint64{1, 1 << 51, 1<<52 - 1} {
		for _, sign := range []uint64{0, 1} {
			f := Float(math.Float64frombits(sign<<63 | 0x7ff<<52 | m))
			assert.True(t, f.IsNaN())
			assert.False(t, f.Equals(f))
			assert.Equal(t, ClassNaN, f.Class())
			assert.Equal(t, sign == 1, f.Signbit())
		}
	}
}

func TestBitsString(t *testing.T) {
	assert.Equal(t, "sign=0 exponent=0x3ff mantissa=0x0000000000000", Float(1).Bits().String())
	assert.Equal(t, "sign=1 exponent=0x7ff mantissa=0x0000000000000", Inf(-1).Bits().String())
	assert.Equal(t, "sign=1 exponent=0x000 mantissa=0x0000000000000", negZero.Bits().String())
}
