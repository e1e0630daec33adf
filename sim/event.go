package sim

// Event marks a single point on the competition timeline: either the moment
// a competitor finishes a whole hot dog, or the final bell for that
// competitor, with fractional progress on the hot dog in hand.
//
// Event is a comparable value type; use == for structural equality.
type Event struct {
	ElapsedTime  float64 // cumulative seconds since the starting gun
	Name         string  // competitor name
	HotDogsEaten float64 // cumulative hot dogs eaten; fractional only on terminal events
}

// Less reports whether e precedes other in the log order: elapsed time
// first, name on ties. The same order drives sorting and winner selection.
func (e Event) Less(other Event) bool {
	if e.ElapsedTime == other.ElapsedTime {
		return e.Name < other.Name
	}
	return e.ElapsedTime < other.ElapsedTime
}

// Rounded returns a copy of e with both numeric fields rounded to three
// decimal places, half to even. e itself is unchanged.
func (e Event) Rounded() Event {
	return Event{
		ElapsedTime:  roundHalfEven(e.ElapsedTime, reportPrecision),
		Name:         e.Name,
		HotDogsEaten: roundHalfEven(e.HotDogsEaten, reportPrecision),
	}
}
