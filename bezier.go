package strokes

import (
	"fmt"
)

// DefaultAccuracy is the accuracy used for arc length computations.
const DefaultAccuracy = 1e-9

// Bezier is a quadratic or cubic Bézier curve.
type Bezier interface {
	// Eval evaluates the curve at parameter t ∈ [0, 1].
	Eval(t float64) Point
	// Arclen returns the arc length of the curve, to within accuracy.
	Arclen(accuracy float64) float64
	Start() Point
	End() Point
}

// NewBezier returns the quadratic Bézier for three points and the cubic
// Bézier for four points. It panics for any other number of points.
func NewBezier(points ...Point) Bezier {
	switch len(points) {
	case 3:
		return QuadBez{points[0], points[1], points[2]}
	case 4:
		return CubicBez{points[0], points[1], points[2], points[3]}
	default:
		panic(fmt.Sprintf("NewBezier: need 3 or 4 points, got %d", len(points)))
	}
}

// LUT returns n+1 points of c, evaluated at t = i/n for i ∈ [0, n]. The first
// point is c's start and the last is c's end. n smaller than one is treated
// as one.
func LUT(c Bezier, n int) []Point {
	if n < 1 {
		n = 1
	}
	out := make([]Point, 0, n+1)
	out = append(out, c.Start())
	for i := 1; i < n; i++ {
		out = append(out, c.Eval(float64(i)/float64(n)))
	}
	return append(out, c.End())
}
