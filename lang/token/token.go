package token

// A Token represents an operator applicable to float values.
type Token int8

//nolint:revive
const (
	ILLEGAL Token = iota

	// arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// relational operators
	EQEQ   // ==
	BANGEQ // !=
	LT     // <
	GT     // >
	GE     // >=
	LE     // <=

	maxToken             = LE
	arithStart, arithEnd = PLUS, SLASH
	relStart, relEnd     = EQEQ, LE
)

func (tok Token) String() string {
	if tok < 0 || tok > maxToken {
		return tokenNames[ILLEGAL]
	}
	return tokenNames[tok]
}

// GoString is like String but quotes operator tokens. Use Sprintf("%#v",
// tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok <= ILLEGAL || tok > maxToken {
		return tok.String()
	}
	return "'" + tokenNames[tok] + "'"
}

// IsArithmetic returns true if tok is one of the binary arithmetic
// operators.
func (tok Token) IsArithmetic() bool { return tok >= arithStart && tok <= arithEnd }

// IsRelational returns true if tok is one of the comparison operators.
func (tok Token) IsRelational() bool { return tok >= relStart && tok <= relEnd }

var tokenNames = [...]string{
	ILLEGAL: "illegal token",

	PLUS:  "+",
	MINUS: "-",
	STAR:  "*",
	SLASH: "/",

	EQEQ:   "==",
	BANGEQ: "!=",
	LT:     "<",
	GT:     ">",
	GE:     ">=",
	LE:     "<=",
}

var operators = func() map[string]Token {
	ops := make(map[string]Token, maxToken)
	for i := ILLEGAL + 1; i <= maxToken; i++ {
		ops[tokenNames[i]] = i
	}
	return ops
}()

// LookupOp maps an operator to its token or ILLEGAL (if not a valid
// operator).
func LookupOp(op string) Token {
	if tok, ok := operators[op]; ok {
		return tok
	}
	return ILLEGAL
}
