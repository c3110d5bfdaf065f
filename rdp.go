package linestring

import (
	"fmt"
	"math"
)

// SimplifyRDP simplifies a linestring with the [Ramer–Douglas–Peucker]
// algorithm: it returns the subsequence of the input, always including both
// endpoints, such that every discarded point lies within distance epsilon
// of the segment that replaces it. Distances are measured to the segment,
// not the infinite line. With epsilon 0 only exactly collinear points are
// discarded.
//
// When several points in a range are equally far from the chord, which one
// becomes the new anchor is unspecified (currently the earliest); the
// result is a valid simplification either way, but not a unique one.
//
// The returned points are shared with the input, not copied. Returns
// [ErrEpsilon] if epsilon is negative or NaN.
//
// [Ramer–Douglas–Peucker]: https://en.wikipedia.org/wiki/Ramer%E2%80%93Douglas%E2%80%93Peucker_algorithm
func SimplifyRDP(line Linestring, epsilon float64) (Linestring, error) {
	kept, err := SimplifyRDPIndices(line, epsilon)
	if err != nil {
		return nil, err
	}
	out := make(Linestring, len(kept))
	for i, idx := range kept {
		out[i] = line[idx]
	}
	return out, nil
}

// SimplifyRDPIndices returns, in ascending order, the indices of the points
// that [SimplifyRDP] would keep.
func SimplifyRDPIndices(line Linestring, epsilon float64) ([]int, error) {
	if math.IsNaN(epsilon) || epsilon < 0 {
		return nil, fmt.Errorf("%w, got %g", ErrEpsilon, epsilon)
	}
	if len(line) < 2 {
		kept := make([]int, len(line))
		for i := range kept {
			kept[i] = i
		}
		return kept, nil
	}
	kept := make([]int, 0, len(line))
	kept = append(kept, 0)
	kept = rdpRange(line, 0, len(line)-1, epsilon*epsilon, kept)
	return append(kept, len(line)-1), nil
}

// rdpRange appends to kept the indices strictly between first and last that
// survive simplification, in ascending order. Distances are compared
// squared to avoid square roots.
func rdpRange(line Linestring, first, last int, eps2 float64, kept []int) []int {
	if last-first < 2 {
		return kept
	}
	a, b := line[first], line[last]
	chord2 := a.DistanceSquared(b)
	splitIdx, splitDist2 := first, math.Inf(-1)
	for i := first + 1; i < last; i++ {
		if d2 := distanceToSegmentSquared(a, b, line[i], chord2); d2 > splitDist2 {
			splitIdx, splitDist2 = i, d2
		}
	}
	if splitDist2 <= eps2 {
		// every interior point is within tolerance of the chord
		return kept
	}
	kept = rdpRange(line, first, splitIdx, eps2, kept)
	kept = append(kept, splitIdx)
	return rdpRange(line, splitIdx, last, eps2, kept)
}
