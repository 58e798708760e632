package transit

// NextDeparture returns the departure with the smallest estimated time.
// The API usually returns departures in order, but nothing guarantees it.
func NextDeparture(deps []Departure) (Departure, bool) {
	if len(deps) == 0 {
		return Departure{}, false
	}

	next := deps[0]
	for _, d := range deps[1:] {
		if d.EstimatedTime < next.EstimatedTime {
			next = d
		}
	}
	return next, true
}

// CountRealtime returns how many departures are backed by realtime data
func CountRealtime(deps []Departure) int {
	n := 0
	for _, d := range deps {
		if d.Realtime {
			n++
		}
	}
	return n
}
