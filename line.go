package strokes

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Eval returns the point at parameter t. See [PointOnLine].
func (l Line) Eval(t float64) Point {
	return PointOnLine(l.P0, l.P1, t)
}
