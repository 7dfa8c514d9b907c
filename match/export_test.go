package match

// Exported for match_test.
var (
	WithinTolerance = withinTolerance
	Multiplier      = multiplier
	SameVector      = sameVector
)

// Enumerate exposes the coefficient enumeration order.
func Enumerate(s MultiplierSet, visit func(n1, n2, n3 float64)) { s.enumerate(visit) }
