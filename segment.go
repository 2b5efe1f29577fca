package strokes

import (
	"fmt"
)

// SegmentKind identifies the drawing command of a [Segment].
type SegmentKind int

const (
	// Move the pen without drawing, starting the path.
	MoveToKind SegmentKind = iota + 1
	// Draw a line from the current location to the end point.
	LineToKind
	// Draw a quadratic Bézier from the current location.
	QuadToKind
	// Draw a cubic Bézier from the current location.
	CubicToKind
)

func (k SegmentKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	default:
		return "InvalidSegment"
	}
}

// Segment is one element of a canonical path. Like a pen command, it doesn't
// store its start point; that is the end point of the previous segment.
//
// Segments can only be created with [MoveTo], [LineTo], [QuadTo] and
// [CubicTo]. The zero value is invalid.
type Segment struct {
	kind SegmentKind
	p0   Point
	p1   Point
	p2   Point
}

func MoveTo(pt Point) Segment {
	return Segment{kind: MoveToKind, p0: pt}
}

func LineTo(pt Point) Segment {
	return Segment{kind: LineToKind, p0: pt}
}

// QuadTo draws a quadratic Bézier with control point p1, ending at p2.
func QuadTo(p1, p2 Point) Segment {
	return Segment{kind: QuadToKind, p0: p1, p1: p2}
}

// CubicTo draws a cubic Bézier with control points p1 and p2, ending at p3.
func CubicTo(p1, p2, p3 Point) Segment {
	return Segment{kind: CubicToKind, p0: p1, p1: p2, p2: p3}
}

func (seg Segment) Kind() SegmentKind { return seg.kind }

// IsValid reports whether seg was built by one of the constructors.
func (seg Segment) IsValid() bool {
	return seg.kind >= MoveToKind && seg.kind <= CubicToKind
}

// IsCurve reports whether seg is a quadratic or cubic Bézier.
func (seg Segment) IsCurve() bool {
	return seg.kind == QuadToKind || seg.kind == CubicToKind
}

// End returns the point the pen is at after the segment.
func (seg Segment) End() Point {
	switch seg.kind {
	case MoveToKind, LineToKind:
		return seg.p0
	case QuadToKind:
		return seg.p1
	case CubicToKind:
		return seg.p2
	default:
		panic(fmt.Sprintf("invalid segment kind %d", seg.kind))
	}
}

// Curve returns the Bézier curve that seg draws when the pen is at start.
// It panics if seg is not a curve.
func (seg Segment) Curve(start Point) Bezier {
	switch seg.kind {
	case QuadToKind:
		return NewBezier(start, seg.p0, seg.p1)
	case CubicToKind:
		return NewBezier(start, seg.p0, seg.p1, seg.p2)
	default:
		panic(fmt.Sprintf("Curve called on %s segment", seg.kind))
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.kind {
	case MoveToKind:
		return MoveTo(seg.p0.Transform(aff))
	case LineToKind:
		return LineTo(seg.p0.Transform(aff))
	case QuadToKind:
		return QuadTo(seg.p0.Transform(aff), seg.p1.Transform(aff))
	case CubicToKind:
		return CubicTo(seg.p0.Transform(aff), seg.p1.Transform(aff), seg.p2.Transform(aff))
	default:
		return Segment{}
	}
}

func (seg Segment) String() string {
	switch seg.kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s(%s)", seg.kind, seg.p0)
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s)", seg.kind, seg.p0, seg.p1)
	case CubicToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", seg.kind, seg.p0, seg.p1, seg.p2)
	default:
		return seg.kind.String()
	}
}

func (seg Segment) IsNaN() bool {
	return seg.p0.IsNaN() ||
		seg.p1.IsNaN() ||
		seg.p2.IsNaN()
}

func (seg Segment) IsInf() bool {
	return seg.p0.IsInf() ||
		seg.p1.IsInf() ||
		seg.p2.IsInf()
}
