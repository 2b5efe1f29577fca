package strokes

import (
	"math"
	"testing"
)

func TestFlattenCurve(t *testing.T) {
	// Length 3√2 at a step of 1 needs ⌈6√2⌉ = 9 intervals.
	pts := FlattenCurve(Pt(0, 0), CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)), 1)
	want := make([]Point, 10)
	for i := range want {
		f := float64(i) / 3
		want[i] = Pt(f, f)
	}
	diff(t, want, pts, approx)
}

func TestFlattenCurveCount(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	const step = 10.0
	pts := FlattenCurve(q.P0, QuadTo(q.P1, q.P2), step)
	n := int(math.Ceil(q.Arclen(DefaultAccuracy) / (step / 2)))
	if len(pts) != n+1 {
		t.Fatalf("got %d points, want %d", len(pts), n+1)
	}
	diff(t, q.P0, pts[0])
	diff(t, q.P2, pts[n])
}

func TestFlattenCurveConverges(t *testing.T) {
	tests := []struct {
		start Point
		seg   Segment
	}{
		{Pt(0, 0), QuadTo(Pt(50, 100), Pt(100, 0))},
		{Pt(0, 0), CubicTo(Pt(30, 100), Pt(70, -50), Pt(100, 0))},
	}
	for _, tt := range tests {
		want := tt.seg.Curve(tt.start).Arclen(DefaultAccuracy)
		prev := 0.0
		for _, step := range []float64{20, 10, 5, 1, 0.1} {
			pts := FlattenCurve(tt.start, tt.seg, step)
			var sum float64
			for i := 1; i < len(pts); i++ {
				sum += pts[i-1].Distance(pts[i])
			}
			// Chords never exceed the curve, and finer tables never lose
			// length.
			if sum > want+1e-9 {
				t.Errorf("%s, step %g: polyline length %g exceeds arc length %g", tt.seg, step, sum, want)
			}
			if sum < prev-1e-9 {
				t.Errorf("%s, step %g: polyline length %g shrank from %g", tt.seg, step, sum, prev)
			}
			prev = sum
		}
		if rel := math.Abs(prev-want) / want; rel > 1e-3 {
			t.Errorf("%s: polyline length %g is %g off arc length %g", tt.seg, prev, rel, want)
		}
	}
}

func TestFlattenCurveZeroLength(t *testing.T) {
	pts := FlattenCurve(Pt(7, 7), CubicTo(Pt(7, 7), Pt(7, 7), Pt(7, 7)), 10)
	diff(t, []Point{Pt(7, 7), Pt(7, 7)}, pts)
}

func TestFlatten(t *testing.T) {
	segs := []Segment{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(3, 0)),
		CubicTo(Pt(4, 0), Pt(5, 0), Pt(6, 0)),
		LineTo(Pt(6, 5)),
	}
	got := Flatten(segs, 2)
	want := []Segment{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(3, 0)),
		LineTo(Pt(4, 0)),
		LineTo(Pt(5, 0)),
		LineTo(Pt(6, 0)),
		LineTo(Pt(6, 5)),
	}
	diff(t, want, got, segmentComparer)

	for _, seg := range Flatten(segs, 0.1) {
		if seg.IsCurve() {
			t.Fatalf("flattened path contains %s", seg)
		}
	}
}
