// Package float implements the inspection of IEEE 754 double precision
// values: classification, signed-zero aware reciprocal, equality and
// ordering. All operations are total, an undefined mathematical result is
// represented by a special value (NaN or an infinity), never by an error.
package float

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mna/fclass/lang/token"
)

// Float is the type of a double precision floating point number.
type Float float64

// NaN returns a not-a-number value.
func NaN() Float { return Float(math.NaN()) }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float { return Float(math.Inf(sign)) }

// String returns NaN, +Inf, -Inf or the shortest decimal representation
// that round-trips to f. Negative zero is printed as -0.
func (f Float) String() string {
	switch f.Class() {
	case ClassNaN:
		return "NaN"
	case ClassPosInf:
		return "+Inf"
	case ClassNegInf:
		return "-Inf"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// IsNaN returns true if f is a not-a-number bit pattern.
func (f Float) IsNaN() bool { return f != f }

// IsInf returns true if f is either +Inf or -Inf.
func (f Float) IsInf() bool { return math.IsInf(float64(f), 0) }

// IsFinite returns true if f is neither NaN nor infinite. NaN fails the
// comparison so it is not finite.
func (f Float) IsFinite() bool { return math.Abs(float64(f)) <= math.MaxFloat64 }

// Signbit returns true if the sign bit of f is set, including for -0 and
// NaN values with the sign bit set.
func (f Float) Signbit() bool { return math.Signbit(float64(f)) }

// Class returns the IEEE 754 class of f, decided from its bit pattern.
func (f Float) Class() Class { return f.Bits().Class() }

// Reciprocal returns 1/f. The reciprocal of +0 is +Inf and the reciprocal
// of -0 is -Inf.
func (f Float) Reciprocal() Float {
	return 1 / f
}

// Equals implements IEEE 754 equality: NaN is unequal to every value
// including itself, and +0 equals -0.
func (f Float) Equals(g Float) bool { return f == g }

// Cmp implements a three-valued comparison of two Float values.
func (f Float) Cmp(g Float) int { return floatCmp(f, g) }

// floatCmp performs a three-valued comparison on floats, which are totally
// ordered with NaN > +Inf.
func floatCmp(x, y Float) int {
	if x > y {
		return +1
	} else if x < y {
		return -1
	} else if x == y {
		return 0
	}

	// At least one operand is NaN.
	if x == x {
		return -1 // y is NaN
	} else if y == y {
		return +1 // x is NaN
	}
	return 0 // both NaN
}

// Compare evaluates the relational operator op with f as left operand and g
// as right operand. Comparisons involving NaN are false, except for !=
// which is true. It returns an error only if op is not a relational
// operator.
func (f Float) Compare(op token.Token, g Float) (bool, error) {
	switch op {
	case token.EQEQ:
		return f == g, nil
	case token.BANGEQ:
		return f != g, nil
	case token.LT:
		return f < g, nil
	case token.LE:
		return f <= g, nil
	case token.GT:
		return f > g, nil
	case token.GE:
		return f >= g, nil
	}
	return false, fmt.Errorf("invalid comparison operator: %#v", op)
}

// Binary evaluates the arithmetic operator op with f as left operand and g
// as right operand. Division by zero is valid and results in an infinity
// or NaN. It returns an error only if op is not an arithmetic operator.
func (f Float) Binary(op token.Token, g Float) (Float, error) {
	if !op.IsArithmetic() {
		return 0, fmt.Errorf("invalid arithmetic operator: %#v", op)
	}

	switch op {
	case token.PLUS:
		return f + g, nil
	case token.MINUS:
		return f - g, nil
	case token.STAR:
		return f * g, nil
	default: // token.SLASH
		return f / g, nil
	}
}

// Unary applies the sign operator op to f. Negation only flips the sign
// bit, so -0 is the negation of 0 and a NaN stays a NaN.
func (f Float) Unary(op token.Token) (Float, error) {
	if op == token.MINUS {
		return -f, nil
	}
	if op == token.PLUS {
		return f, nil
	}
	return 0, fmt.Errorf("invalid unary operator: %#v", op)
}
