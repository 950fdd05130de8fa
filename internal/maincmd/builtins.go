package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/fclass/lang/float"
	"github.com/mna/mainer"
)

func (c *Cmd) Builtins(_ context.Context, stdio mainer.Stdio, _ []string) error {
	for _, nm := range float.Universe.Names() {
		b, _ := float.Universe.Lookup(nm)
		if _, err := fmt.Fprintln(stdio.Stdout, b); err != nil {
			return printError(stdio, err)
		}
	}
	return nil
}
