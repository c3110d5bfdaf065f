package linestring

import (
	"fmt"
	"math"
)

// Resample redistributes the points of a linestring so that consecutive
// points lie the given spacing apart along the original path. Output points
// are linear interpolations between the input points that bracket them; the
// first and last output points are exactly the first and last input points.
// The final segment is whatever arc length remains and may therefore be
// shorter than spacing; a spacing longer than the whole path yields just
// the two endpoints.
//
// Returns [ErrSpacing] if spacing is not a positive number.
func Resample(line Linestring, spacing float64) (Linestring, error) {
	if math.IsNaN(spacing) || spacing <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrSpacing, spacing)
	}
	if len(line) < 2 {
		return line.Clone(), nil
	}

	out := Linestring{line[0].Clone()}
	// arc length left to travel before the next point is emitted
	remaining := spacing
	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		edge := a.Distance(b)
		travelled := 0.0
		for remaining <= edge-travelled {
			travelled += remaining
			out = append(out, a.Lerp(b, travelled/edge))
			remaining = spacing
		}
		remaining -= edge - travelled
	}

	// The walk stops short of the last point unless the spacing divides the
	// total length evenly, in which case it landed on it exactly and we
	// must not emit it twice. A linestring of zero total length still comes
	// back with both endpoints.
	last := line[len(line)-1]
	if len(out) == 1 || !out[len(out)-1].Equal(last) {
		out = append(out, last.Clone())
	}
	return out, nil
}

// ResampleCount resamples a linestring to exactly n evenly spaced points,
// dividing the total arc length into n−1 equal steps. The first and last
// output points are exactly the first and last input points. A linestring
// of zero total length collapses to n copies of its single location.
//
// Returns [ErrTargetCount] if n < 2.
func ResampleCount(line Linestring, n int) (Linestring, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTargetCount, n)
	}
	if len(line) < 2 {
		return line.Clone(), nil
	}

	// cumulative arc length up to each input point
	cum := make([]float64, len(line))
	for i := 1; i < len(line); i++ {
		cum[i] = cum[i-1] + line[i-1].Distance(line[i])
	}
	total := cum[len(cum)-1]

	out := make(Linestring, 0, n)
	out = append(out, line[0].Clone())
	seg := 0
	for i := 1; i < n-1; i++ {
		target := total * float64(i) / float64(n-1)
		for cum[seg+1] < target {
			seg++
		}
		edge := cum[seg+1] - cum[seg]
		if edge == 0 {
			// target sits exactly on a zero-length segment
			out = append(out, line[seg].Clone())
			continue
		}
		out = append(out, line[seg].Lerp(line[seg+1], (target-cum[seg])/edge))
	}
	out = append(out, line[len(line)-1].Clone())
	return out, nil
}
