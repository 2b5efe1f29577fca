package strokes

import (
	"errors"
)

var (
	// ErrLineBeforeMove is returned for paths that draw before their first
	// move.
	ErrLineBeforeMove = errors.New("line segment before first move")
	// ErrDuplicateMove is returned for paths with more than one move.
	ErrDuplicateMove = errors.New("move encountered more than once")
)

// Resampler places points at a fixed arc-length spacing along a path made of
// a single MoveTo followed by LineTo segments. The distance still to travel
// before the next point is carried from one segment to the next, so spacing
// is uniform across segment boundaries.
//
// Resampler is a value; [Resampler.Next] returns the updated state.
type Resampler struct {
	step      float64
	last      Point
	remaining float64
	started   bool
}

// NewResampler returns a resampler that emits a point every step units.
func NewResampler(step float64) Resampler {
	return Resampler{step: step}
}

// Remaining returns the distance left before the next point is emitted.
func (r Resampler) Remaining() float64 { return r.remaining }

// Next consumes one segment and returns the new state and the points emitted
// for the segment.
//
// A MoveTo emits its own point. A LineTo emits the points that fall on it,
// interpolated between the previous end point and its own, and nothing at all
// if it has zero length.
func (r Resampler) Next(seg Segment) (Resampler, []Point, error) {
	switch seg.Kind() {
	case MoveToKind:
		if r.started {
			return r, nil, ErrDuplicateMove
		}
		r.started = true
		r.last = seg.End()
		r.remaining = r.step
		return r, []Point{r.last}, nil
	case LineToKind:
		if !r.started {
			return r, nil, ErrLineBeforeMove
		}
		if err := validateStep(r.step); err != nil {
			return r, nil, err
		}
		line := Line{r.last, seg.End()}
		l := line.Length()
		var out []Point
		if l > 0 {
			for r.remaining <= l {
				out = append(out, line.Eval(r.remaining/l))
				r.remaining += r.step
			}
			r.remaining -= l
		}
		r.last = line.P1
		return r, out, nil
	default:
		return r, nil, &UnsupportedSegmentError{Command: seg.Kind().String()}
	}
}

// Resample folds a [Resampler] over segs and returns all emitted points.
// segs must already be flattened.
func Resample(segs []Segment, step float64) ([]Point, error) {
	r := NewResampler(step)
	var out []Point
	for _, seg := range segs {
		var pts []Point
		var err error
		r, pts, err = r.Next(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}
