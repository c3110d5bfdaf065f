package linestring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Point is a location in euclidean space, with one coordinate per
// dimension. The dimension is not fixed by the type; it is the length of
// the slice, and all points taking part in a single computation must share
// it. Points are treated as immutable values: no method modifies its
// receiver, operations return new points.
type Point []float64

// Pt returns the point with the given coordinates.
func Pt(coords ...float64) Point {
	return Point(coords)
}

// Dims returns the number of dimensions of the point.
func (p Point) Dims() int {
	return len(p)
}

// Clone returns a copy of the point that shares no storage with it.
func (p Point) Clone() Point {
	return append(Point(nil), p...)
}

func (p Point) String() string {
	coords := make([]string, len(p))
	for i, c := range p {
		coords[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "(" + strings.Join(coords, ", ") + ")"
}

// Equal reports whether p and o have identical dimensions and coordinates.
func (p Point) Equal(o Point) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Add returns the componentwise sum p+o.
func (p Point) Add(o Point) Point {
	checkDims(p, o)
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] + o[i]
	}
	return out
}

// Sub returns the componentwise difference p−o.
func (p Point) Sub(o Point) Point {
	checkDims(p, o)
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] - o[i]
	}
	return out
}

// Scale returns p with every coordinate multiplied by f.
func (p Point) Scale(f float64) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] * f
	}
	return out
}

// Dot returns the dot product of p and o, both read as vectors from the
// origin.
func (p Point) Dot(o Point) float64 {
	checkDims(p, o)
	var dot float64
	for i := range p {
		dot += p[i] * o[i]
	}
	return dot
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}

// DistanceSquared returns the squared euclidean distance between two
// points.
//
// This function is more efficient than squaring the result of
// [Point.Distance].
func (p Point) DistanceSquared(o Point) float64 {
	checkDims(p, o)
	var sum float64
	for i := range p {
		d := p[i] - o[i]
		sum += d * d
	}
	return sum
}

// Lerp linearly interpolates between two points. t = 0 yields p, t = 1
// yields o.
func (p Point) Lerp(o Point, t float64) Point {
	checkDims(p, o)
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] + (o[i]-p[i])*t
	}
	return out
}

// DistanceToSegment returns the distance from p to the line segment with
// endpoints a and b. Beyond either end of the segment the distance is
// measured to the nearer endpoint. If a and b coincide, the segment is that
// single point.
func (p Point) DistanceToSegment(a, b Point) float64 {
	return math.Sqrt(distanceToSegmentSquared(a, b, p, a.DistanceSquared(b)))
}

// distanceToSegmentSquared computes the squared distance from p to the
// segment a-b, clamped to the segment's endpoints. chord2 is the squared
// length of the segment, precomputed because RDP probes many points against
// the same chord.
func distanceToSegmentSquared(a, b, p Point, chord2 float64) float64 {
	var along float64
	for i := range p {
		along += (p[i] - a[i]) * (b[i] - a[i])
	}
	switch {
	case along <= 0:
		// projection falls before a (or a == b)
		return p.DistanceSquared(a)
	case along >= chord2:
		// projection falls past b
		return p.DistanceSquared(b)
	default:
		return p.DistanceSquared(a.Lerp(b, along/chord2))
	}
}

func checkDims(p, o Point) {
	if len(p) != len(o) {
		panic(fmt.Sprintf("mismatched point dimensions %d and %d", len(p), len(o)))
	}
}
