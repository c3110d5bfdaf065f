// Package linestring provides routines for simplifying, resampling, and
// smoothing polylines ("linestrings") in N-dimensional euclidean space. It
// was designed for cleaning up captured paths such as GPS tracks or sensor
// trajectories, whose endpoints are anchored to other geometry and must not
// move.
//
// # Features
//
// We provide the following notable features:
//
//   - Resampling at a fixed spacing or to a fixed point count (see
//     [Resample] and [ResampleCount])
//   - Ramer–Douglas–Peucker simplification (see [SimplifyRDP])
//   - Visvalingam–Whyatt simplification, by area tolerance or target point
//     count (see [SimplifyVW] and [SimplifyVWCount])
//   - Convolution-style smoothing with pluggable kernels (see [Smooth],
//     [MovingAverage], and [Gaussian])
//
// # Points and linestrings
//
// The two core types of this package are [Point], a slice-backed point in
// euclidean space of any dimension, and [Linestring], an ordered sequence
// of at least two points describing a polyline. All algorithms work
// unmodified in any dimension; the dimension is simply the number of
// coordinates per point. Points are treated as immutable values: no
// operation in this package modifies a point in place.
//
// # Endpoint invariance
//
// Every algorithm returns a new linestring whose first and last points are
// exactly, bit for bit, the first and last points of the input. Interior
// points may be moved or removed, but the two endpoints never are, even
// when that makes the result locally "worse" (for example, a final
// resampled segment shorter than the requested spacing).
//
// # Errors
//
// Linestrings with fewer than two points have nothing between their
// endpoints to remove or smooth; all algorithms return them unchanged
// rather than failing. Geometrically meaningless parameters, such as a
// non-positive spacing or a window of zero points, are rejected with one of
// the package's sentinel errors, which callers can test for with
// [errors.Is].
//
// # Concurrency
//
// All functions are pure: they do not retain or modify their inputs, they
// allocate their own outputs and working state, and they share no global
// state. They may be called concurrently without synchronization.
package linestring
