package maincmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mna/fclass/lang/float"
	"github.com/mna/mainer"
)

func (c *Cmd) Call(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CallBuiltin(ctx, stdio, c.reporter(stdio), args[0], args[1:]...)
}

// CallBuiltin calls the builtin function name with the parsed args and
// reports the result using r, labeled as the call expression.
func CallBuiltin(_ context.Context, stdio mainer.Stdio, r *float.Reporter, name string, args ...string) error {
	b, ok := float.Universe.Lookup(name)
	if !ok {
		return printError(stdio, fmt.Errorf("unknown builtin function: %s", name))
	}

	vals, err := ParseNumbers(args...)
	if err != nil {
		return printError(stdio, err)
	}

	res, err := b.Call(vals...)
	if err != nil {
		return printError(stdio, err)
	}

	label := fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	return printError(stdio, r.Report(label, res))
}
