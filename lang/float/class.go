package float

// Class is the IEEE 754 category of a Float value. Every value belongs to
// exactly one class.
type Class int8

// List of classes.
const (
	ClassFinite Class = iota
	ClassNaN
	ClassPosInf
	ClassNegInf
)

var classNames = [...]string{
	ClassFinite: "finite",
	ClassNaN:    "nan",
	ClassPosInf: "+inf",
	ClassNegInf: "-inf",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "invalid class"
	}
	return classNames[c]
}
