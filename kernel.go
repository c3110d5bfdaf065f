package linestring

import (
	"fmt"
	"math"
)

// A Kernel assigns relative weights to the neighborhood of a point along a
// linestring, by index offset. [Smooth] consults offsets in [−Radius,
// Radius] and normalizes the weights of the neighbors that actually exist,
// so weights need not sum to 1.
//
// Implementations must be pure: the same offset always yields the same
// weight.
type Kernel interface {
	// Weight returns the relative weight of the point that sits offset
	// positions away from the point of interest. The offset may be
	// negative; kernels are typically symmetric.
	Weight(offset int) float64

	// Radius returns the neighborhood half-width in points: weights are
	// consulted for offsets up to and including ±Radius.
	Radius() int
}

// MovingAverage is a uniform kernel: every point in a window of 2*radius+1
// points weighs the same, so smoothing with it replaces each interior point
// by the plain mean of its window.
type MovingAverage struct {
	radius int
}

// NewMovingAverage returns a moving-average kernel with the given window
// half-width. Returns [ErrRadius] if radius < 1.
func NewMovingAverage(radius int) (MovingAverage, error) {
	if radius < 1 {
		return MovingAverage{}, fmt.Errorf("%w, got %d", ErrRadius, radius)
	}
	return MovingAverage{radius: radius}, nil
}

func (k MovingAverage) Weight(offset int) float64 {
	return 1
}

func (k MovingAverage) Radius() int {
	return k.radius
}

// gaussianTruncation is where the Gaussian kernel's support is cut off, in
// standard deviations. Weights beyond it are below 2.2e-3 of the peak and
// contribute nothing visible to the smoothed curve.
const gaussianTruncation = 3.5

// Gaussian is a bell-shaped kernel: a point offset o away from the point of
// interest weighs exp(−o²/(2σ²)). The ideal Gaussian has infinite support;
// this kernel truncates it at ⌈3.5σ⌉ offsets, which is an approximation,
// not the ideal, and keeps the window size proportional to σ.
type Gaussian struct {
	stdDev float64
	radius int
}

// NewGaussian returns a Gaussian kernel with the given standard deviation,
// measured in point offsets. Returns [ErrStdDev] if stdDev is not a
// positive number.
func NewGaussian(stdDev float64) (Gaussian, error) {
	if math.IsNaN(stdDev) || stdDev <= 0 {
		return Gaussian{}, fmt.Errorf("%w, got %g", ErrStdDev, stdDev)
	}
	radius := int(math.Ceil(gaussianTruncation * stdDev))
	return Gaussian{stdDev: stdDev, radius: radius}, nil
}

func (k Gaussian) Weight(offset int) float64 {
	o := float64(offset)
	return math.Exp(-o * o / (2 * k.stdDev * k.stdDev))
}

func (k Gaussian) Radius() int {
	return k.radius
}

// Triangular is a linear-falloff kernel: the point of interest weighs
// radius+1 and each step away from it weighs one less, down to 1 at the
// edge of the window.
type Triangular struct {
	radius int
}

// NewTriangular returns a triangular kernel with the given window
// half-width. Returns [ErrRadius] if radius < 1.
func NewTriangular(radius int) (Triangular, error) {
	if radius < 1 {
		return Triangular{}, fmt.Errorf("%w, got %d", ErrRadius, radius)
	}
	return Triangular{radius: radius}, nil
}

func (k Triangular) Weight(offset int) float64 {
	if offset < 0 {
		offset = -offset
	}
	return float64(k.radius + 1 - offset)
}

func (k Triangular) Radius() int {
	return k.radius
}
