package filter

// SemType is the abstract type tag carried by a register. The set is
// closed: UNKNOWN sits at the bottom of a flat lattice with S64, DOUBLE and
// STRING as incomparable peaks. Invalid is not a lattice element and is
// never assigned to a register.
type SemType int

const (
	Unknown SemType = iota
	S64
	Double
	String

	// Invalid never labels a register. Register indices are bounded by
	// InvalidReg (regfile.go), not by this value.
	Invalid
)

func (t SemType) String() string {
	switch t {
	case Unknown:
		return "UNKNOWN"
	case S64:
		return "S64"
	case Double:
		return "DOUBLE"
	case String:
		return "STRING"
	case Invalid:
		return "INVALID"
	default:
		return "SEMTYPE(?)"
	}
}

// IsNumeric reports whether t is one of the two numeric peaks of the
// lattice. It does not include STRING or UNKNOWN.
func (t SemType) IsNumeric() bool {
	return t == S64 || t == Double
}
