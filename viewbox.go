package strokes

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroViewbox is returned for viewboxes whose width or height is zero or
// not a finite number.
var ErrZeroViewbox = errors.New("viewbox has zero area")

// Viewbox is an axis-aligned coordinate box, as in the viewBox attribute of
// an SVG document.
type Viewbox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// ViewboxFromCorners returns the viewbox spanning from (x0, y0) to (x1, y1).
func ViewboxFromCorners(x0, y0, x1, y1 float64) Viewbox {
	return Viewbox{MinX: x0, MinY: y0, Width: x1 - x0, Height: y1 - y0}
}

// BoundingBox returns the square viewbox for a bounding box of size
// coordinates per axis, that is [0, 0, size-1, size-1].
func BoundingBox(size int) Viewbox {
	return ViewboxFromCorners(0, 0, float64(size-1), float64(size-1))
}

// Corners returns the viewbox as [MinX, MinY, MaxX, MaxY].
func (vb Viewbox) Corners() [4]float64 {
	return [4]float64{vb.MinX, vb.MinY, vb.MinX + vb.Width, vb.MinY + vb.Height}
}

func (vb Viewbox) String() string {
	return fmt.Sprintf("viewbox(%g %g %g %g)", vb.MinX, vb.MinY, vb.Width, vb.Height)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate returns an error wrapping [ErrZeroViewbox] if the viewbox cannot be
// scaled to or from.
func (vb Viewbox) Validate() error {
	if vb.Width == 0 || vb.Height == 0 ||
		!finite(vb.MinX) || !finite(vb.MinY) || !finite(vb.Width) || !finite(vb.Height) {
		return fmt.Errorf("%w: %s", ErrZeroViewbox, vb)
	}
	return nil
}

// ScaleTo returns the per-axis factors that scale vb's extent to target's.
func (vb Viewbox) ScaleTo(target Viewbox) (sx, sy float64, err error) {
	if err := vb.Validate(); err != nil {
		return 0, 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, 0, err
	}
	return target.Width / vb.Width, target.Height / vb.Height, nil
}

// TransformTo returns the transform mapping coordinates in vb to coordinates
// in target. vb's origin maps to target's origin.
func (vb Viewbox) TransformTo(target Viewbox) (Affine, error) {
	sx, sy, err := vb.ScaleTo(target)
	if err != nil {
		return Affine{}, err
	}
	return Translate(Vec(-vb.MinX, -vb.MinY)).
		ThenScale(sx, sy).
		ThenTranslate(Vec(target.MinX, target.MinY)), nil
}

// ParseViewbox parses the value of a viewBox attribute: four numbers
// separated by whitespace and/or commas.
func ParseViewbox(s string) (Viewbox, error) {
	sc := scanner{b: []byte(s)}
	var v [4]float64
	for i := range v {
		var err error
		v[i], err = sc.number()
		if err != nil {
			return Viewbox{}, err
		}
	}
	if !sc.done() {
		return Viewbox{}, sc.errorf("trailing data in viewbox %q", s)
	}
	return Viewbox{MinX: v[0], MinY: v[1], Width: v[2], Height: v[3]}, nil
}
