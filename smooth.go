package linestring

import "fmt"

// Smooth convolves a linestring with a kernel: each interior point is
// replaced by the weighted mean of itself and its neighbors within the
// kernel's radius, with the weights normalized to sum to 1. The output has
// exactly as many points as the input, and the first and last points are
// copied unchanged regardless of the kernel.
//
// Near the ends of the linestring part of the kernel's window falls outside
// the index range. Those positions are simply excluded and the remaining
// weights renormalized; the window is not reflected, wrapped, or padded.
// Smoothing is therefore weaker near the endpoints than in the middle, and
// a linestring of two or three points comes back essentially unchanged.
//
// Returns [ErrRadius] if the kernel reports a radius smaller than 1.
func Smooth(line Linestring, kernel Kernel) (Linestring, error) {
	radius := kernel.Radius()
	if radius < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrRadius, radius)
	}
	if len(line) <= 2 {
		return line.Clone(), nil
	}

	out := make(Linestring, len(line))
	out[0] = line[0].Clone()
	out[len(line)-1] = line[len(line)-1].Clone()
	for i := 1; i < len(line)-1; i++ {
		lo := max(i-radius, 0)
		hi := min(i+radius, len(line)-1)
		mean := make(Point, len(line[i]))
		var total float64
		for j := lo; j <= hi; j++ {
			w := kernel.Weight(j - i)
			for d := range mean {
				mean[d] += w * line[j][d]
			}
			total += w
		}
		if total == 0 {
			// a kernel with no weight anywhere in range leaves the point
			// where it is
			out[i] = line[i].Clone()
			continue
		}
		for d := range mean {
			mean[d] /= total
		}
		out[i] = mean
	}
	return out, nil
}

// SmoothMovingAverage smooths a linestring with a [MovingAverage] kernel of
// the given window half-width: each interior point becomes the mean of the
// up to 2*radius+1 points centered on it. See [Smooth] for the handling of
// endpoints and out-of-range neighbors.
//
// Returns [ErrRadius] if radius < 1.
func SmoothMovingAverage(line Linestring, radius int) (Linestring, error) {
	kernel, err := NewMovingAverage(radius)
	if err != nil {
		return nil, err
	}
	return Smooth(line, kernel)
}

// SmoothGaussian smooths a linestring with a [Gaussian] kernel of the given
// standard deviation, measured in point offsets. See [Smooth] for the
// handling of endpoints and out-of-range neighbors.
//
// Returns [ErrStdDev] if stdDev is not a positive number.
func SmoothGaussian(line Linestring, stdDev float64) (Linestring, error) {
	kernel, err := NewGaussian(stdDev)
	if err != nil {
		return nil, err
	}
	return Smooth(line, kernel)
}
