package float

import (
	"errors"
	"fmt"
	"io"

	"github.com/mna/fclass/lang/token"
)

// Reporter controls printing of Float values and their classification.
type Reporter struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// Bits indicates if the sign, exponent and mantissa fields are printed.
	Bits bool

	// Short prints a single line per value instead of one line per
	// predicate.
	Short bool
}

// Report prints x, identified by label, along with its class and the result
// of the IsNaN, IsInf and IsFinite predicates. If label is empty, the
// string representation of x is used.
func (r *Reporter) Report(label string, x Float) error {
	if label == "" {
		label = x.String()
	}

	p := &printer{w: r.Output}
	if r.Short {
		p.printf("%s = %s (%s)", label, x, x.Class())
		if r.Bits {
			p.printf(" [%s]", x.Bits())
		}
		p.printf("\n")
		return p.err
	}

	p.printf("%s = %s\n", label, x)
	p.field("class", x.Class())
	p.field("is_nan", x.IsNaN())
	p.field("is_infinite", x.IsInf())
	p.field("is_finite", x.IsFinite())
	if r.Bits {
		b := x.Bits()
		p.field("bits", b)
		p.field("zero", b.Zero())
		p.field("subnormal", b.Subnormal())
	}
	return p.err
}

// ReportCompare prints the result of the comparison of x and y using the
// relational operator op.
func (r *Reporter) ReportCompare(x Float, op token.Token, y Float) error {
	res, err := x.Compare(op, y)
	if err != nil {
		return err
	}

	p := &printer{w: r.Output}
	p.printf("%s %s %s: %t\n", x, op, y, res)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if p.w == nil {
		p.err = errors.New("no output set")
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) field(name string, v any) {
	p.printf("\t%-12s %v\n", name+":", v)
}
