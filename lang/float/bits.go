package float

import (
	"fmt"
	"math"
)

const (
	mantissaBits = 52
	exponentMask = 1<<11 - 1
	mantissaMask = 1<<mantissaBits - 1
)

// Bits is the decomposition of a Float in its IEEE 754 binary64 fields.
type Bits struct {
	Sign     uint8  // 1 bit
	Exponent uint16 // 11 bits, biased
	Mantissa uint64 // 52 bits, without the implicit leading bit
}

// Bits returns the decomposition of f in its sign, exponent and mantissa
// fields.
func (f Float) Bits() Bits {
	b := math.Float64bits(float64(f))
	return Bits{
		Sign:     uint8(b >> 63),
		Exponent: uint16(b>>mantissaBits) & exponentMask,
		Mantissa: b & mantissaMask,
	}
}

// Class returns the class of the value from its bit pattern alone: the
// exponent field is all ones for NaN and infinities, a non-zero mantissa
// being a NaN.
func (b Bits) Class() Class {
	if b.Exponent != exponentMask {
		return ClassFinite
	}
	if b.Mantissa != 0 {
		return ClassNaN
	}
	if b.Sign != 0 {
		return ClassNegInf
	}
	return ClassPosInf
}

// Zero returns true if b represents +0 or -0.
func (b Bits) Zero() bool { return b.Exponent == 0 && b.Mantissa == 0 }

// Subnormal returns true if b represents a denormalized finite value.
func (b Bits) Subnormal() bool { return b.Exponent == 0 && b.Mantissa != 0 }

func (b Bits) String() string {
	return fmt.Sprintf("sign=%d exponent=0x%03x mantissa=0x%013x", b.Sign, b.Exponent, b.Mantissa)
}
