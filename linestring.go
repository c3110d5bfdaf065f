package linestring

// A Linestring is an ordered sequence of points describing a polyline. A
// well-formed linestring has at least two points: its endpoints. Shorter
// sequences are tolerated everywhere and returned unchanged, since there is
// nothing between the endpoints to remove or smooth.
//
// Algorithms in this package never modify the linestring (or the points)
// they are given; they return a newly allocated result.
type Linestring []Point

// Clone returns a deep copy of the linestring: neither the sequence nor the
// points share storage with ls.
func (ls Linestring) Clone() Linestring {
	out := make(Linestring, len(ls))
	for i, p := range ls {
		out[i] = p.Clone()
	}
	return out
}

// Equal reports whether ls and o consist of identical points.
func (ls Linestring) Equal(o Linestring) bool {
	if len(ls) != len(o) {
		return false
	}
	for i := range ls {
		if !ls[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// TotalLength returns the arc length of the polyline, i.e. the sum of the
// lengths of its segments. Linestrings with fewer than two points have
// length 0.
func (ls Linestring) TotalLength() float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += ls[i-1].Distance(ls[i])
	}
	return total
}
