package float

import (
	"fmt"
	"math"

	"github.com/dolthub/swiss"
	"github.com/mna/fclass/lang/token"
	"golang.org/x/exp/slices"
)

// A Builtin is a named math function over Float values. Builtins are total
// over their domain: undefined results are returned as NaN or infinities.
type Builtin struct {
	Name  string
	Arity int
	fn    func(args []Float) (Float, error)
}

// Call invokes the builtin with the provided arguments. It fails only if the
// number of arguments does not match the arity of b.
func (b *Builtin) Call(args ...Float) (Float, error) {
	if len(args) != b.Arity {
		return 0, fmt.Errorf("%s: want %d argument(s), got %d", b.Name, b.Arity, len(args))
	}
	return b.fn(args)
}

func (b *Builtin) String() string { return fmt.Sprintf("%s/%d", b.Name, b.Arity) }

// Universe is the set of builtins available by name. It should not be
// modified.
var Universe = newUniverse(
	unary("acos", math.Acos),
	unary("asin", math.Asin),
	unary("exp", math.Exp),
	unary("log", math.Log),
	unary("log2", math.Log2),
	unary("log10", math.Log10),
	unary("sqrt", math.Sqrt),
	&Builtin{Name: "recip", Arity: 1, fn: func(args []Float) (Float, error) { return args[0].Reciprocal(), nil }},
	unaryOp("neg", token.MINUS),
	binaryOp("add", token.PLUS),
	binaryOp("sub", token.MINUS),
	binaryOp("mul", token.STAR),
	binaryOp("div", token.SLASH),
	constant("nan", NaN()),
	constant("inf", Inf(1)),
)

func constant(name string, v Float) *Builtin {
	return &Builtin{
		Name: name,
		fn:   func([]Float) (Float, error) { return v, nil },
	}
}

func unaryOp(name string, op token.Token) *Builtin {
	return &Builtin{
		Name:  name,
		Arity: 1,
		fn:    func(args []Float) (Float, error) { return args[0].Unary(op) },
	}
}

func binaryOp(name string, op token.Token) *Builtin {
	return &Builtin{
		Name:  name,
		Arity: 2,
		fn:    func(args []Float) (Float, error) { return args[0].Binary(op, args[1]) },
	}
}

func unary(name string, fn func(float64) float64) *Builtin {
	return &Builtin{
		Name:  name,
		Arity: 1,
		fn:    func(args []Float) (Float, error) { return Float(fn(float64(args[0]))), nil },
	}
}

// BuiltinSet is an immutable set of builtins indexed by name.
type BuiltinSet struct {
	m     *swiss.Map[string, *Builtin]
	names []string
}

func newUniverse(bs ...*Builtin) *BuiltinSet {
	set := &BuiltinSet{
		m:     swiss.NewMap[string, *Builtin](uint32(len(bs))),
		names: make([]string, 0, len(bs)),
	}
	for _, b := range bs {
		if _, ok := set.m.Get(b.Name); ok {
			panic(fmt.Sprintf("duplicate builtin: %s", b.Name))
		}
		set.m.Put(b.Name, b)
		set.names = append(set.names, b.Name)
	}
	slices.Sort(set.names)
	return set
}

// Lookup returns the builtin with that name, if it exists.
func (s *BuiltinSet) Lookup(name string) (*Builtin, bool) {
	return s.m.Get(name)
}

// Names returns the sorted names of the builtins in s.
func (s *BuiltinSet) Names() []string {
	return slices.Clone(s.names)
}
