package strokes

import (
	"errors"
	"math"
	"testing"
)

func TestViewboxScaleTo(t *testing.T) {
	src := Viewbox{0, 0, 109, 109}
	sx, sy, err := src.ScaleTo(BoundingBox(1000))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 999.0/109.0, sx)
	diff(t, 999.0/109.0, sy)

	sx, sy, err = Viewbox{0, 0, 100, 50}.ScaleTo(Viewbox{0, 0, 10, 10})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.1, sx)
	diff(t, 0.2, sy)
}

func TestViewboxZero(t *testing.T) {
	boxes := []Viewbox{
		{0, 0, 0, 109},
		{0, 0, 109, 0},
		{0, 0, math.NaN(), 1},
		{0, 0, 1, math.Inf(1)},
	}
	for _, vb := range boxes {
		if _, _, err := vb.ScaleTo(BoundingBox(1000)); !errors.Is(err, ErrZeroViewbox) {
			t.Errorf("%s: got error %v, want ErrZeroViewbox", vb, err)
		}
		if _, _, err := BoundingBox(1000).ScaleTo(vb); !errors.Is(err, ErrZeroViewbox) {
			t.Errorf("%s as target: got error %v, want ErrZeroViewbox", vb, err)
		}
	}
}

func TestViewboxTransformTo(t *testing.T) {
	const epsilon = 1e-9
	src := Viewbox{-10, 20, 100, 200}
	dst := ViewboxFromCorners(5, 5, 15, 25)
	aff, err := src.TransformTo(dst)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, Pt(-10, 20).Transform(aff), Pt(5, 5), epsilon)
	assertNear(t, Pt(90, 220).Transform(aff), Pt(15, 25), epsilon)
	assertNear(t, Pt(40, 120).Transform(aff), Pt(10, 15), epsilon)

	// Mapping back is the inverse.
	back, err := dst.TransformTo(src)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{Pt(0, 0), Pt(13.5, -7.25), Pt(1e3, 1e-3)} {
		assertNear(t, p.Transform(aff).Transform(back), p, epsilon)
	}
}

func TestViewboxCorners(t *testing.T) {
	diff(t, [4]float64{0, 0, 999, 999}, BoundingBox(1000).Corners())
	diff(t, [4]float64{1, 2, 4, 6}, Viewbox{1, 2, 3, 4}.Corners())
	diff(t, Viewbox{1, 2, 3, 4}, ViewboxFromCorners(1, 2, 4, 6))
}

func TestParseViewbox(t *testing.T) {
	tests := []struct {
		in   string
		want Viewbox
	}{
		{"0 0 109 109", Viewbox{0, 0, 109, 109}},
		{"0,0,109,109", Viewbox{0, 0, 109, 109}},
		{" 0, 0 ,109\t109 ", Viewbox{0, 0, 109, 109}},
		{"-4.5 -8 8 15", Viewbox{-4.5, -8, 8, 15}},
		{"0 0 1e2 .5", Viewbox{0, 0, 100, 0.5}},
	}
	for _, tt := range tests {
		got, err := ParseViewbox(tt.in)
		if err != nil {
			t.Errorf("%q: %s", tt.in, err)
			continue
		}
		diff(t, tt.want, got)
	}

	for _, in := range []string{"", "0 0 109", "0 0 109 109 5", "0 0 a b"} {
		_, err := ParseViewbox(in)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: got error %v, want *SyntaxError", in, err)
		}
	}
}
