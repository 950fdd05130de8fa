package maincmd

import (
	"context"

	"github.com/mna/fclass/lang/float"
	"github.com/mna/fclass/lang/token"
	"github.com/mna/mainer"
)

func (c *Cmd) Compare(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CompareNumbers(ctx, stdio, args[0], args[1], args[2])
}

// CompareNumbers parses x and y and prints the result of the comparison
// using the relational operator op.
func CompareNumbers(_ context.Context, stdio mainer.Stdio, x, op, y string) error {
	vals, err := ParseNumbers(x, y)
	if err != nil {
		return printError(stdio, err)
	}
	r := &float.Reporter{Output: stdio.Stdout}
	return printError(stdio, r.ReportCompare(vals[0], token.LookupOp(op), vals[1]))
}
