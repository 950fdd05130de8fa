package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/fclass/lang/float"
	"github.com/mna/fclass/lang/token"
	"github.com/mna/mainer"
)

const binName = "fclass"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<arg>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<arg>...] [-- <arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

Inspection tool for IEEE 754 double precision floating point values.
Numbers are parsed as Go float literals, and may be NaN, Inf, +Inf,
-Inf or a hexadecimal float. Negative numbers must be provided after
a "--" separator placed after the command name, otherwise they are
parsed as flags:
       %[1]s compare -- -1 '<' -Inf
       %[1]s call recip -- -0

The <command> can be one of:
       builtins                  Print the list of builtin functions
                                 available to the call command, with
                                 their number of arguments.
       call <name> [<num>...]    Call the builtin function <name> with
                                 the provided arguments and print the
                                 classification of the result.
       classify <num>...         Print the classification of each
                                 number.
       compare <num> <op> <num>  Print the result of the comparison of
                                 both numbers, where <op> is one of
                                 ==, !=, <, <=, > or >=.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Valid flag options for the <call> and <classify> commands are:
       --bits                    Print the sign, exponent and mantissa
                                 fields of the values, and whether they
                                 are zero or subnormal.
       --short                   Print a single line per value.

Valid flag options for the <classify> command are:
       --sort                    Print the values in ascending order,
                                 NaN values last.
       --float32                 Convert the values to single precision
                                 before classifying them.

More information on the %[1]s repository:
       https://github.com/mna/fclass
`, binName)
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	Bits    bool `flag:"bits"`
	Short   bool `flag:"short"`
	Sort    bool `flag:"sort"`
	Float32 bool `flag:"float32"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	cmdArgs := c.args[1:]
	switch cmdName {
	case "classify":
		if len(cmdArgs) == 0 {
			return fmt.Errorf("%s: at least one number must be provided", cmdName)
		}

	case "call":
		if len(cmdArgs) == 0 {
			return fmt.Errorf("%s: a builtin function name must be provided", cmdName)
		}
		if _, ok := float.Universe.Lookup(cmdArgs[0]); !ok {
			return fmt.Errorf("%s: unknown builtin function: %s", cmdName, cmdArgs[0])
		}

	case "compare":
		if len(cmdArgs) != 3 {
			return fmt.Errorf("%s: expected <num> <op> <num>, got %d argument(s)", cmdName, len(cmdArgs))
		}
		if op := token.LookupOp(cmdArgs[1]); !op.IsRelational() {
			return fmt.Errorf("%s: invalid comparison operator: %s", cmdName, cmdArgs[1])
		}

	case "builtins":
		if len(cmdArgs) > 0 {
			return fmt.Errorf("%s: no argument expected", cmdName)
		}
	}

	for _, fl := range []string{"bits", "short"} {
		if c.flags[fl] && cmdName != "call" && cmdName != "classify" {
			return fmt.Errorf("%s: invalid flag '%s'", cmdName, fl)
		}
	}
	for _, fl := range []string{"sort", "float32"} {
		if c.flags[fl] && cmdName != "classify" {
			return fmt.Errorf("%s: invalid flag '%s'", cmdName, fl)
		}
	}

	return nil
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false, // leaving this here for now in case some flags can use this
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command takes care of printing its errors, just return with an error code
		return mainer.Failure
	}
	return mainer.Success
}

func (c *Cmd) reporter(stdio mainer.Stdio) *float.Reporter {
	return &float.Reporter{
		Output: stdio.Stdout,
		Bits:   c.Bits,
		Short:  c.Short,
	}
}

// valid commands are those that take a mainer.Stdio and a slice of strings as
// input, and return an error as output.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
