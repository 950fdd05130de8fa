package float

import "golang.org/x/exp/constraints"

// Of converts x of any floating point type to a Float. Special values are
// preserved: a float32 NaN or infinity stays a NaN or infinity.
func Of[T constraints.Float](x T) Float { return Float(float64(x)) }
