package strokes

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFiniteCoordinate is returned for paths with a coordinate that is
// infinite or NaN once mapped to the target viewbox.
var ErrNonFiniteCoordinate = errors.New("non-finite coordinate")

// UnsupportedSegmentError is returned when a path contains a command that
// cannot be reduced to move, line, quadratic and cubic segments, or when a
// stage of the pipeline receives a segment it doesn't handle.
type UnsupportedSegmentError struct {
	Command string
}

func (err *UnsupportedSegmentError) Error() string {
	return fmt.Sprintf("unsupported path segment %q", err.Command)
}

// NormalizePath parses SVG path data and reduces it to canonical segments in
// the coordinate system described by aff. See [NormalizeCommands].
func NormalizePath(d string, aff Affine) ([]Segment, error) {
	cmds, err := ParsePathData(d)
	if err != nil {
		return nil, err
	}
	return NormalizeCommands(cmds, aff)
}

// NormalizeCommands reduces path data commands to canonical segments:
//
//   - relative coordinates become absolute
//   - every coordinate is mapped through aff
//   - smooth curves (S, T) get their reflected control points
//   - elliptical arcs become cubic Béziers spanning at most 90° each
//   - horizontal and vertical lines become lines
//   - close path becomes a line back to the start of the subpath
//
// Commands whose mapped coordinates are not finite fail with
// [ErrNonFiniteCoordinate]. The result contains only MoveTo, LineTo, QuadTo and CubicTo segments.
func NormalizeCommands(cmds []Command, aff Affine) ([]Segment, error) {
	segs := make([]Segment, 0, len(cmds))
	var (
		cur, start Point
		// Second control point of the previous cubic, or the control point
		// of the previous quadratic.
		ctrl     Point
		prevKind SegmentKind
	)
	for _, cmd := range cmds {
		if n := arity(cmd.Op); n < 0 || n != len(cmd.Args) {
			return nil, &UnsupportedSegmentError{Command: cmd.String()}
		}
		a := cmd.Args
		pt := func(i int) Point {
			if cmd.IsRelative() {
				return Pt(cur.X+a[i], cur.Y+a[i+1])
			}
			return Pt(a[i], a[i+1])
		}

		kind := LineToKind
		var seg Segment
		switch cmd.Op {
		case 'M', 'm':
			cur = pt(0)
			start = cur
			kind = MoveToKind
			seg = MoveTo(cur)
		case 'L', 'l':
			cur = pt(0)
			seg = LineTo(cur)
		case 'H', 'h':
			if cmd.IsRelative() {
				cur.X += a[0]
			} else {
				cur.X = a[0]
			}
			seg = LineTo(cur)
		case 'V', 'v':
			if cmd.IsRelative() {
				cur.Y += a[0]
			} else {
				cur.Y = a[0]
			}
			seg = LineTo(cur)
		case 'Z', 'z':
			cur = start
			seg = LineTo(cur)
		case 'C', 'c', 'S', 's':
			var p1, p2, p3 Point
			if cmd.Op == 'C' || cmd.Op == 'c' {
				p1, p2, p3 = pt(0), pt(2), pt(4)
			} else {
				p1 = cur
				if prevKind == CubicToKind {
					p1 = reflect(ctrl, cur)
				}
				p2, p3 = pt(0), pt(2)
			}
			cur, ctrl = p3, p2
			kind = CubicToKind
			seg = CubicTo(p1, p2, p3)
		case 'Q', 'q', 'T', 't':
			var p1, p2 Point
			if cmd.Op == 'Q' || cmd.Op == 'q' {
				p1, p2 = pt(0), pt(2)
			} else {
				p1 = cur
				if prevKind == QuadToKind {
					p1 = reflect(ctrl, cur)
				}
				p2 = pt(0)
			}
			cur, ctrl = p2, p1
			kind = QuadToKind
			seg = QuadTo(p1, p2)
		case 'A', 'a':
			arc := ellipticalArc{
				From:      cur,
				To:        pt(5),
				Radii:     Vec(a[0], a[1]),
				XRotation: a[2] * math.Pi / 180,
				LargeArc:  a[3] != 0,
				Sweep:     a[4] != 0,
			}
			cur = arc.To
			// Arcs are mapped as ellipses, so their segments are already in
			// target coordinates.
			arc = arc.Transform(aff)
			if !arc.finite() {
				return nil, fmt.Errorf("%w in %s", ErrNonFiniteCoordinate, cmd)
			}
			n := len(segs)
			segs = arc.appendSegments(segs)
			for _, s := range segs[n:] {
				if s.IsNaN() || s.IsInf() {
					return nil, fmt.Errorf("%w in %s", ErrNonFiniteCoordinate, cmd)
				}
			}
			prevKind = kind
			continue
		}
		seg = seg.Transform(aff)
		if seg.IsNaN() || seg.IsInf() {
			return nil, fmt.Errorf("%w in %s", ErrNonFiniteCoordinate, cmd)
		}
		segs = append(segs, seg)
		prevKind = kind
	}
	return segs, nil
}

// reflect returns the reflection of ctrl about pt.
func reflect(ctrl, pt Point) Point {
	return Pt(2*pt.X-ctrl.X, 2*pt.Y-ctrl.Y)
}

// ellipticalArc is an SVG arc in endpoint parameterization.
type ellipticalArc struct {
	From      Point
	To        Point
	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// Transform maps the arc through aff. The end points are transformed
// directly; the radii and x-axis rotation are those of the transformed
// ellipse.
func (a ellipticalArc) Transform(aff Affine) ellipticalArc {
	out := a
	out.From = a.From.Transform(aff)
	out.To = a.To.Transform(aff)
	m := aff.Linear().Mul(Rotate(a.XRotation)).Mul(Scale(math.Abs(a.Radii.X), math.Abs(a.Radii.Y)))
	radii, th := m.svd()
	if !radii.IsNaN() {
		out.Radii = radii
		out.XRotation = th
	}
	if aff.Determinant() < 0 {
		out.Sweep = !out.Sweep
	}
	return out
}

func (a ellipticalArc) finite() bool {
	return finite(a.From.X) && finite(a.From.Y) &&
		finite(a.To.X) && finite(a.To.Y) &&
		finite(a.Radii.X) && finite(a.Radii.Y) &&
		finite(a.XRotation)
}

// appendSegments appends the cubic Béziers approximating the arc to dst,
// following the endpoint to center conversion of the SVG implementation
// notes. An arc with coincident end points is omitted and an arc with a zero
// radius is a straight line.
func (a ellipticalArc) appendSegments(dst []Segment) []Segment {
	if a.From == a.To {
		return dst
	}
	rx, ry := math.Abs(a.Radii.X), math.Abs(a.Radii.Y)
	if rx == 0 || ry == 0 {
		return append(dst, LineTo(a.To))
	}

	sin, cos := math.Sincos(a.XRotation)
	dx := (a.From.X - a.To.X) / 2
	dy := (a.From.Y - a.To.Y) / 2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	// Scale up radii that are too small to span the end points.
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(max(num/den, 0))
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	center := Pt(
		cos*cx1-sin*cy1+(a.From.X+a.To.X)/2,
		sin*cx1+cos*cy1+(a.From.Y+a.To.Y)/2,
	)

	u := Vec((x1-cx1)/rx, (y1-cy1)/ry)
	v := Vec((-x1-cx1)/rx, (-y1-cy1)/ry)
	startAngle := vecAngle(Vec(1, 0), u)
	sweepAngle := vecAngle(u, v)
	if !a.Sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if a.Sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}

	radii := Vec(rx, ry)
	n := max(math.Ceil(math.Abs(sweepAngle)/(math.Pi/2)-1e-9), 1)
	angleStep := sweepAngle / n
	armLen := (4.0 / 3.0) * math.Tan(angleStep/4)
	angle0 := startAngle
	p0 := sampleEllipse(radii, a.XRotation, angle0)
	for i := 0; i < int(n); i++ {
		angle1 := angle0 + angleStep
		p1 := p0.Add(sampleEllipse(radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
		p3 := sampleEllipse(radii, a.XRotation, angle1)
		p2 := p3.Sub(sampleEllipse(radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))
		end := center.Translate(p3)
		if i == int(n)-1 {
			end = a.To
		}
		dst = append(dst, CubicTo(center.Translate(p1), center.Translate(p2), end))
		angle0 = angle1
		p0 = p3
	}
	return dst
}

// vecAngle returns the signed angle from u to v.
func vecAngle(u, v Vec2) float64 {
	return math.Atan2(u.Cross(v), u.Dot(v))
}

// sampleEllipse returns the point on the ellipse centered on the origin with
// the given radii and x-axis rotation, at the given angle.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return rotatePt(Vec2{radii.X * cos, radii.Y * sin}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
