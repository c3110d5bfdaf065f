package linestring

import (
	"errors"
	"math"
	"testing"
)

func TestResampleStraightLine(t *testing.T) {
	in := line([2]float64{0, 0}, [2]float64{8, 0})
	got, err := Resample(in, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := line(
		[2]float64{0, 0},
		[2]float64{2, 0},
		[2]float64{4, 0},
		[2]float64{6, 0},
		[2]float64{8, 0},
	)
	diff(t, want, got)
}

func TestResampleSpacing(t *testing.T) {
	// On a straight line resampled at spacing d, consecutive points are
	// exactly d apart except for the final segment, which is at most d.
	in := line([2]float64{0, 0}, [2]float64{0, 5})
	got, err := Resample(in, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d points, want 4", len(got))
	}
	for i := 1; i < len(got)-1; i++ {
		if d := got[i-1].Distance(got[i]); d != 2 {
			t.Errorf("segment %d has length %v, want exactly 2", i, d)
		}
	}
	if d := got[len(got)-2].Distance(got[len(got)-1]); d > 2 {
		t.Errorf("final segment has length %v, want at most 2", d)
	}
	checkEndpoints(t, in, got)
}

func TestResampleMultiEdge(t *testing.T) {
	// spacing carries across input segment boundaries
	in := line([2]float64{0, 0}, [2]float64{2, 0}, [2]float64{2, 2})
	got, err := Resample(in, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := line(
		[2]float64{0, 0},
		[2]float64{1, 0},
		[2]float64{2, 0},
		[2]float64{2, 1},
		[2]float64{2, 2},
	)
	diff(t, want, got)
}

func TestResampleSpacingExceedsLength(t *testing.T) {
	in := line([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 0})
	got, err := Resample(in, 100)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, line([2]float64{0, 0}, [2]float64{2, 0}), got)
}

func TestResampleEndpoints(t *testing.T) {
	in := line(
		[2]float64{0.1234, -9.87},
		[2]float64{1.7, 3.3},
		[2]float64{2.01, -0.5},
		[2]float64{5.55, 1.1},
	)
	for _, spacing := range []float64{0.1, 0.333, 1, 2.5, 50} {
		got, err := Resample(in, spacing)
		if err != nil {
			t.Fatal(err)
		}
		checkEndpoints(t, in, got)
	}
}

func TestResampleDegenerate(t *testing.T) {
	single := Linestring{Pt(1, 2)}
	got, err := Resample(single, 1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, single, got)

	got, err = Resample(Linestring{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d points for an empty linestring, want 0", len(got))
	}
}

func TestResampleInvalidSpacing(t *testing.T) {
	in := line([2]float64{0, 0}, [2]float64{1, 0})
	for _, spacing := range []float64{0, -1, math.NaN()} {
		if _, err := Resample(in, spacing); !errors.Is(err, ErrSpacing) {
			t.Errorf("spacing %v: got error %v, want ErrSpacing", spacing, err)
		}
	}
}

func TestResampleCount(t *testing.T) {
	in := Linestring{Pt(0), Pt(1)}
	got, err := ResampleCount(in, 3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Linestring{Pt(0), Pt(0.5), Pt(1)}, got)
}

func TestResampleCountExact(t *testing.T) {
	in := line(
		[2]float64{0, 0},
		[2]float64{1.5, 2},
		[2]float64{3, 1},
		[2]float64{4, 4},
	)
	for n := 2; n <= 20; n++ {
		got, err := ResampleCount(in, n)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != n {
			t.Errorf("n=%d: got %d points", n, len(got))
		}
		checkEndpoints(t, in, got)
	}
}

func TestResampleCountZeroLength(t *testing.T) {
	// all points coincide: the result is n copies of the same location
	in := line([2]float64{1, 1}, [2]float64{1, 1}, [2]float64{1, 1})
	got, err := ResampleCount(in, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := line([2]float64{1, 1}, [2]float64{1, 1}, [2]float64{1, 1}, [2]float64{1, 1})
	diff(t, want, got)
}

func TestResampleCountInvalid(t *testing.T) {
	in := line([2]float64{0, 0}, [2]float64{1, 0})
	for _, n := range []int{1, 0, -3} {
		if _, err := ResampleCount(in, n); !errors.Is(err, ErrTargetCount) {
			t.Errorf("n=%d: got error %v, want ErrTargetCount", n, err)
		}
	}
}
