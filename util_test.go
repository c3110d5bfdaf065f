package linestring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// line builds a 2D linestring from coordinate pairs.
func line(coords ...[2]float64) Linestring {
	out := make(Linestring, len(coords))
	for i, c := range coords {
		out[i] = Pt(c[0], c[1])
	}
	return out
}

// checkEndpoints asserts the endpoint invariant: the first and last points
// of got are bit for bit those of in.
func checkEndpoints(t *testing.T, in, got Linestring) {
	t.Helper()
	if len(got) == 0 {
		t.Fatal("got an empty linestring")
	}
	if !got[0].Equal(in[0]) {
		t.Errorf("first point moved from %v to %v", in[0], got[0])
	}
	if !got[len(got)-1].Equal(in[len(in)-1]) {
		t.Errorf("last point moved from %v to %v", in[len(in)-1], got[len(got)-1])
	}
}
