package linestring

import (
	"container/heap"
	"fmt"
	"math"
)

// SimplifyVW simplifies a linestring with the [Visvalingam–Whyatt]
// algorithm: it repeatedly removes the interior point whose effective area,
// the area of the triangle formed with its current left and right
// neighbors, is smallest, for as long as that smallest area does not exceed
// areaTolerance. Endpoints are never removed. A tolerance of 0 or less
// removes nothing and returns the input unchanged.
//
// The returned points are shared with the input, not copied. Returns
// [ErrAreaTolerance] if areaTolerance is NaN.
//
// [Visvalingam–Whyatt]: https://en.wikipedia.org/wiki/Visvalingam%E2%80%93Whyatt_algorithm
func SimplifyVW(line Linestring, areaTolerance float64) (Linestring, error) {
	kept, err := SimplifyVWIndices(line, areaTolerance)
	if err != nil {
		return nil, err
	}
	return pointsAt(line, kept), nil
}

// SimplifyVWIndices returns, in ascending order, the indices of the points
// that [SimplifyVW] would keep.
func SimplifyVWIndices(line Linestring, areaTolerance float64) ([]int, error) {
	if math.IsNaN(areaTolerance) {
		return nil, fmt.Errorf("%w, got %g", ErrAreaTolerance, areaTolerance)
	}
	if len(line) <= 2 || areaTolerance <= 0 {
		return allIndices(len(line)), nil
	}
	removed := vwRemove(line, func(area float64, _ int) bool {
		return area > areaTolerance
	})
	return keptIndices(removed), nil
}

// SimplifyVWCount simplifies a linestring with the Visvalingam–Whyatt
// algorithm (see [SimplifyVW]) until exactly n points remain, always
// including both endpoints. If the input already has n points or fewer it
// is returned unchanged.
//
// The returned points are shared with the input, not copied. Returns
// [ErrTargetCount] if n < 2.
func SimplifyVWCount(line Linestring, n int) (Linestring, error) {
	kept, err := SimplifyVWCountIndices(line, n)
	if err != nil {
		return nil, err
	}
	return pointsAt(line, kept), nil
}

// SimplifyVWCountIndices returns, in ascending order, the indices of the
// points that [SimplifyVWCount] would keep.
func SimplifyVWCountIndices(line Linestring, n int) ([]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTargetCount, n)
	}
	if len(line) <= n {
		return allIndices(len(line)), nil
	}
	removed := vwRemove(line, func(_ float64, remaining int) bool {
		return remaining <= n
	})
	return keptIndices(removed), nil
}

// effectiveArea returns the area of the triangle spanned by the three
// points, via Heron's formula so that it works in any dimension. Roundoff
// can drive the radicand slightly negative for (near-)degenerate triangles;
// it is clamped at zero.
func effectiveArea(a, b, c Point) float64 {
	s1 := a.Distance(b)
	s2 := b.Distance(c)
	s3 := c.Distance(a)
	s := (s1 + s2 + s3) / 2
	radicand := s * (s - s1) * (s - s2) * (s - s3)
	if radicand <= 0 {
		return 0
	}
	return math.Sqrt(radicand)
}

// A vwEntry is a heap candidate: an interior point and its effective area
// at the time the entry was pushed. Entries are never updated in place;
// when a point's neighbors change, a fresh entry is pushed and the stale
// one is recognized and skipped when popped (its area no longer matches the
// point's current one).
type vwEntry struct {
	index int
	area  float64
}

// vwHeap is a min-heap of candidates ordered by effective area.
type vwHeap []vwEntry

func (h vwHeap) Len() int {
	return len(h)
}

func (h vwHeap) Less(i, j int) bool {
	return h[i].area < h[j].area
}

func (h vwHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *vwHeap) Push(x any) {
	*h = append(*h, x.(vwEntry))
}

func (h *vwHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// vwRemove runs the Visvalingam–Whyatt removal loop on a linestring of more
// than two points, popping the interior point with the smallest current
// effective area until stop says otherwise, and reports which indices were
// removed. stop sees the area of the candidate about to be removed and the
// number of points that remain before its removal. Each removal updates
// only the two now-adjacent neighbors.
func vwRemove(line Linestring, stop func(area float64, remaining int) bool) []bool {
	n := len(line)
	removed := make([]bool, n)
	// doubly linked neighbor list over indices
	prev := make([]int, n)
	next := make([]int, n)
	areas := make([]float64, n)
	h := make(vwHeap, 0, n-2)
	for i := range line {
		prev[i], next[i] = i-1, i+1
	}
	for i := 1; i < n-1; i++ {
		areas[i] = effectiveArea(line[i-1], line[i], line[i+1])
		h = append(h, vwEntry{index: i, area: areas[i]})
	}
	heap.Init(&h)

	remaining := n
	for h.Len() > 0 {
		e := heap.Pop(&h).(vwEntry)
		if removed[e.index] || e.area != areas[e.index] {
			// stale entry, a fresher one is (or was) in the heap
			continue
		}
		if stop(e.area, remaining) {
			break
		}
		removed[e.index] = true
		remaining--
		l, r := prev[e.index], next[e.index]
		next[l], prev[r] = r, l
		if l > 0 {
			areas[l] = effectiveArea(line[prev[l]], line[l], line[r])
			heap.Push(&h, vwEntry{index: l, area: areas[l]})
		}
		if r < n-1 {
			areas[r] = effectiveArea(line[l], line[r], line[next[r]])
			heap.Push(&h, vwEntry{index: r, area: areas[r]})
		}
	}
	return removed
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func keptIndices(removed []bool) []int {
	out := make([]int, 0, len(removed))
	for i, r := range removed {
		if !r {
			out = append(out, i)
		}
	}
	return out
}

func pointsAt(line Linestring, indices []int) Linestring {
	out := make(Linestring, len(indices))
	for i, idx := range indices {
		out[i] = line[idx]
	}
	return out
}
