// Package fare computes the ticket price of a journey from its total distance.
//
// The price grows linearly with distance and is capped:
//
//	fare(d) = min(Base + PerKm·d, Cap)
//
// With the default schedule (Base 10, PerKm 2, Cap 60) a 12 km journey costs 34
// and anything from 25 km upward costs 60.
package fare

// Default schedule constants, in currency units.
const (
	DefaultBase  int64 = 10
	DefaultPerKm int64 = 2
	DefaultCap   int64 = 60
)

// Schedule holds the parameters of the fare formula.
type Schedule struct {
	Base  int64 // flat boarding charge
	PerKm int64 // charge per kilometre
	Cap   int64 // maximum fare
}

// Default returns the standard schedule.
func Default() Schedule {
	return Schedule{Base: DefaultBase, PerKm: DefaultPerKm, Cap: DefaultCap}
}

// Calculate returns min(Base + PerKm·distance, Cap).
// Overflow for unrealistic distances is not handled.
func (s Schedule) Calculate(distance int64) int64 {
	return min(s.Base+s.PerKm*distance, s.Cap)
}

// Calculate prices distance with the Default schedule.
func Calculate(distance int64) int64 {
	return Default().Calculate(distance)
}
