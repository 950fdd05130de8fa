package maincmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mna/fclass/lang/float"
)

// ParseNumber parses s as a Go float literal. A literal that overflows is
// not an error, it is rounded to the corresponding infinity (or zero on
// underflow) as for any IEEE 754 operation.
func ParseNumber(s string) (float.Float, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid number: %q", s)
	}
	return float.Float(f), nil
}

// ParseNumbers parses each string in ss with ParseNumber.
func ParseNumbers(ss ...string) ([]float.Float, error) {
	fs := make([]float.Float, 0, len(ss))
	for _, s := range ss {
		f, err := ParseNumber(s)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, nil
}
