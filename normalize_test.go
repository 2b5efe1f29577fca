package strokes

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var segmentComparer = cmp.Comparer(func(a, b Segment) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	for _, pts := range [][2]Point{{a.p0, b.p0}, {a.p1, b.p1}, {a.p2, b.p2}} {
		if pts[0].Distance(pts[1]) > 1e-9 {
			return false
		}
	}
	return true
})

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		d    string
		aff  Affine
		want []Segment
	}{
		{
			"relative",
			"m10 10 l5 0 l0 5",
			Identity,
			[]Segment{MoveTo(Pt(10, 10)), LineTo(Pt(15, 10)), LineTo(Pt(15, 15))},
		},
		{
			"horizontal and vertical",
			"M10 10 H20 V30 h-5 v-5",
			Identity,
			[]Segment{
				MoveTo(Pt(10, 10)),
				LineTo(Pt(20, 10)),
				LineTo(Pt(20, 30)),
				LineTo(Pt(15, 30)),
				LineTo(Pt(15, 25)),
			},
		},
		{
			"scaled",
			"M10 10 h10 c0,10 10,10 10,0",
			Scale(2, 3),
			[]Segment{
				MoveTo(Pt(20, 30)),
				LineTo(Pt(40, 30)),
				CubicTo(Pt(40, 60), Pt(60, 60), Pt(60, 30)),
			},
		},
		{
			"smooth cubic",
			"M0 0 C0 10 10 10 10 0 S20 -10 20 0",
			Identity,
			[]Segment{
				MoveTo(Pt(0, 0)),
				CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0)),
				CubicTo(Pt(10, -10), Pt(20, -10), Pt(20, 0)),
			},
		},
		{
			"smooth cubic without previous cubic",
			"M0 0 L5 0 s5 5 10 0",
			Identity,
			[]Segment{
				MoveTo(Pt(0, 0)),
				LineTo(Pt(5, 0)),
				CubicTo(Pt(5, 0), Pt(10, 5), Pt(15, 0)),
			},
		},
		{
			"smooth quadratic",
			"M0 0 Q5 10 10 0 T20 0 t10 0",
			Identity,
			[]Segment{
				MoveTo(Pt(0, 0)),
				QuadTo(Pt(5, 10), Pt(10, 0)),
				QuadTo(Pt(15, -10), Pt(20, 0)),
				QuadTo(Pt(25, 10), Pt(30, 0)),
			},
		},
		{
			"close path",
			"M1 1 L5 1 L5 5 Z",
			Identity,
			[]Segment{MoveTo(Pt(1, 1)), LineTo(Pt(5, 1)), LineTo(Pt(5, 5)), LineTo(Pt(1, 1))},
		},
		{
			"zero radius arc",
			"M0 0 A0 5 0 0 1 10 0",
			Identity,
			[]Segment{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0))},
		},
		{
			"arc to the current point",
			"M3 3 A5 5 0 0 1 3 3",
			Identity,
			[]Segment{MoveTo(Pt(3, 3))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath(tt.d, tt.aff)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, segmentComparer)
		})
	}
}

// arcPoints normalizes d and returns points along the resulting path.
func arcPoints(t *testing.T, d string, aff Affine) []Point {
	t.Helper()
	segs, err := NormalizePath(d, aff)
	if err != nil {
		t.Fatal(err)
	}
	var pts []Point
	for _, seg := range Flatten(segs, 0.05) {
		pts = append(pts, seg.End())
	}
	return pts
}

func TestNormalizeArc(t *testing.T) {
	// Semicircle of radius 1 around (1, 0), sweeping through (1, -1).
	segs, err := NormalizePath("M0 0 A1 1 0 0 1 2 0", Identity)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want a move and two cubics", len(segs))
	}
	for _, seg := range segs[1:] {
		if seg.Kind() != CubicToKind {
			t.Fatalf("got %s, want CubicTo", seg)
		}
	}
	assertNear(t, segs[1].End(), Pt(1, -1), 1e-9)
	diff(t, Pt(2, 0), segs[2].End())

	for _, pt := range arcPoints(t, "M0 0 A1 1 0 0 1 2 0", Identity) {
		if d := math.Abs(pt.Distance(Pt(1, 0)) - 1); d > 1e-3 {
			t.Errorf("%s is %g off the circle", pt, d)
		}
	}
}

func TestNormalizeArcFlags(t *testing.T) {
	tests := []struct {
		d   string
		mid Point
	}{
		// Small arcs between (0, 0) and (2, 2) on a circle of radius 2.
		{"M0 0 A2 2 0 0 1 2 2", Pt(math.Sqrt2, 2-math.Sqrt2)},
		{"M0 0 A2 2 0 0 0 2 2", Pt(2-math.Sqrt2, math.Sqrt2)},
		// Large arcs.
		{"M0 0 A2 2 0 1 1 2 2", Pt(2+math.Sqrt2, -math.Sqrt2)},
		{"M0 0 A2 2 0 1 0 2 2", Pt(-math.Sqrt2, 2+math.Sqrt2)},
	}
	for _, tt := range tests {
		pts := arcPoints(t, tt.d, Identity)
		best := math.Inf(1)
		for _, pt := range pts {
			best = min(best, pt.Distance(tt.mid))
		}
		if best > 0.05 {
			t.Errorf("%s: arc doesn't pass through %s (closest %g)", tt.d, tt.mid, best)
		}
	}
}

func TestNormalizeArcTransformed(t *testing.T) {
	// A circular arc scaled to an ellipse with radii 2 and 1 around (2, 0).
	for _, pt := range arcPoints(t, "M0 0 A1 1 0 0 1 2 0", Scale(2, 1)) {
		x := (pt.X - 2) / 2
		if d := math.Abs(x*x + pt.Y*pt.Y - 1); d > 1e-3 {
			t.Errorf("%s is %g off the ellipse", pt, d)
		}
	}

	// Mirroring flips the sweep direction, keeping the arc on the mirrored
	// side.
	segs, err := NormalizePath("M0 0 A1 1 0 0 1 2 0", Scale(1, -1))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, segs[1].End(), Pt(1, 1), 1e-9)

	// Rotated ellipse, then rotated again by the transform.
	aff := Rotate(math.Pi / 6)
	arc := ellipticalArc{
		From:      Pt(0, 0),
		To:        Pt(4, 0),
		Radii:     Vec(2, 1),
		XRotation: 0,
		Sweep:     true,
	}.Transform(aff)
	diff(t, Vec(2, 1), arc.Radii, approx)
	diff(t, math.Pi/6, arc.XRotation, approx)
	assertNear(t, arc.To, Pt(4, 0).Transform(aff), 1e-9)
}

func TestNormalizeArcTooSmall(t *testing.T) {
	// Radii too small to reach the end point are scaled up: a semicircle.
	for _, pt := range arcPoints(t, "M0 0 A0.5 0.5 0 0 1 4 0", Identity) {
		if d := math.Abs(pt.Distance(Pt(2, 0)) - 2); d > 1e-3 {
			t.Errorf("%s is %g off the circle", pt, d)
		}
	}
}

func TestNormalizeCommandsUnsupported(t *testing.T) {
	cmds := [][]Command{
		{{'M', []float64{0, 0}}, {'X', []float64{1, 1}}},
		{{'M', []float64{0, 0}}, {'L', []float64{1}}},
	}
	for _, c := range cmds {
		_, err := NormalizeCommands(c, Identity)
		var uerr *UnsupportedSegmentError
		if !errors.As(err, &uerr) {
			t.Errorf("%v: got error %v, want *UnsupportedSegmentError", c, err)
		}
	}
}

func TestNormalizeCommandsNonFinite(t *testing.T) {
	cmds := [][]Command{
		{{'M', []float64{0, 0}}, {'L', []float64{math.Inf(1), 0}}},
		{{'M', []float64{math.NaN(), 0}}},
		{{'M', []float64{0, 0}}, {'c', []float64{1, 1, 2, 2, 3, math.Inf(-1)}}},
		{{'M', []float64{0, 0}}, {'A', []float64{1, 1, 0, 0, 1, math.Inf(1), 0}}},
	}
	for _, c := range cmds {
		if _, err := NormalizeCommands(c, Identity); !errors.Is(err, ErrNonFiniteCoordinate) {
			t.Errorf("%v: got error %v, want ErrNonFiniteCoordinate", c, err)
		}
	}

	// Finite in source coordinates, but not once scaled.
	c := []Command{{'M', []float64{0, 0}}, {'L', []float64{1e300, 0}}}
	if _, err := NormalizeCommands(c, Scale(1e10, 1)); !errors.Is(err, ErrNonFiniteCoordinate) {
		t.Errorf("got error %v, want ErrNonFiniteCoordinate", err)
	}
}
