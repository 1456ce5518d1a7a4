package biquad

// Structure selects the recursion used to evaluate each section.
// All structures realize the same transfer function; they differ in
// register count and rounding behaviour.
type Structure int

const (
	// DirectFormI keeps separate input and output histories. It needs four
	// registers per section and is the most tolerant of coefficient rounding.
	DirectFormI Structure = iota
	// DirectFormII shares one delay line per section (two registers).
	DirectFormII
	// TransposedDirectFormII reorders the Direct Form II graph for better
	// floating-point behaviour on high-Q sections (two registers).
	TransposedDirectFormII
)

// String returns the structure name.
func (s Structure) String() string {
	switch s {
	case DirectFormI:
		return "DirectFormI"
	case DirectFormII:
		return "DirectFormII"
	case TransposedDirectFormII:
		return "TransposedDirectFormII"
	default:
		return "Structure(?)"
	}
}

// Valid reports whether s is one of the defined structures.
func (s Structure) Valid() bool {
	return s >= DirectFormI && s <= TransposedDirectFormII
}

// Registers returns the number of delay registers per section.
func (s Structure) Registers() int {
	if s == DirectFormI {
		return 4
	}

	return 2
}

// Structures lists every structure in declaration order.
func Structures() []Structure {
	return []Structure{DirectFormI, DirectFormII, TransposedDirectFormII}
}
