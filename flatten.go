package strokes

import (
	"math"
)

// FlattenCurve returns a lookup table for the curve seg draws from start,
// with points spaced at most step/2 apart along the curve. The table holds
// n+1 points, n = ⌈length / (step/2)⌉, the first of which is start. A curve
// of zero length yields its start and end points.
//
// FlattenCurve panics if seg is not a curve.
func FlattenCurve(start Point, seg Segment, step float64) []Point {
	c := seg.Curve(start)
	l := c.Arclen(DefaultAccuracy)
	n := 1
	if f := math.Ceil(l / (step / 2)); finite(f) {
		n = max(int(f), 1)
	}
	return LUT(c, n)
}

// Flatten replaces every curve in segs with lines through its
// [FlattenCurve] lookup table. The first point of each table is the end of
// the previous segment and is dropped. Other segments are copied unchanged.
func Flatten(segs []Segment, step float64) []Segment {
	out := make([]Segment, 0, len(segs))
	var cur Point
	for _, seg := range segs {
		if seg.IsCurve() {
			for _, pt := range FlattenCurve(cur, seg, step)[1:] {
				out = append(out, LineTo(pt))
			}
		} else {
			out = append(out, seg)
		}
		if seg.IsValid() {
			cur = seg.End()
		}
	}
	return out
}
