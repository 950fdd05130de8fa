package maincmd

import (
	"context"

	"github.com/mna/fclass/lang/float"
	"github.com/mna/mainer"
	"golang.org/x/exp/slices"
)

// ClassifyOptions controls how numbers are classified by ClassifyNumbers.
type ClassifyOptions struct {
	// Sort reports the numbers in ascending order, NaN values last.
	Sort bool

	// Float32 narrows each number to single precision before it is
	// classified, so that 1e39 is +Inf and 1e-46 is 0.
	Float32 bool
}

func (c *Cmd) Classify(ctx context.Context, stdio mainer.Stdio, args []string) error {
	opts := ClassifyOptions{Sort: c.Sort, Float32: c.Float32}
	return ClassifyNumbers(ctx, stdio, c.reporter(stdio), opts, args...)
}

// ClassifyNumbers parses and reports each number in nums using r.
func ClassifyNumbers(ctx context.Context, stdio mainer.Stdio, r *float.Reporter, opts ClassifyOptions, nums ...string) error {
	type labeled struct {
		label string
		val   float.Float
	}

	vals, err := ParseNumbers(nums...)
	if err != nil {
		return printError(stdio, err)
	}

	lvals := make([]labeled, len(vals))
	for i, v := range vals {
		if opts.Float32 {
			v = float.Of(float32(v))
		}
		lvals[i] = labeled{label: nums[i], val: v}
	}
	if opts.Sort {
		slices.SortStableFunc(lvals, func(a, b labeled) int {
			return a.val.Cmp(b.val)
		})
	}

	for _, lv := range lvals {
		if err := ctx.Err(); err != nil {
			return printError(stdio, err)
		}
		if err := r.Report(lv.label, lv.val); err != nil {
			return printError(stdio, err)
		}
	}
	return nil
}
