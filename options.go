package strokes

import (
	"errors"
	"fmt"
)

// ErrInvalidStep is returned for a point spacing that isn't a positive,
// finite number.
var ErrInvalidStep = errors.New("distance between points must be positive and finite")

// Options configures [Convert].
type Options struct {
	// The coordinate box points are mapped into. It is also the header of
	// the output.
	TargetViewbox Viewbox
	// The arc length between consecutive output points.
	MaxDistanceBetweenPoints float64
	// Round output coordinates to the nearest integer.
	RoundFloats bool
}

// DefaultOptions returns options mapping into [0, 0, 999, 999] with a point
// every 10 units and rounded coordinates.
func DefaultOptions() Options {
	return Options{
		TargetViewbox:            BoundingBox(1000),
		MaxDistanceBetweenPoints: 10,
		RoundFloats:              true,
	}
}

// Validate reports configuration errors.
func (opts Options) Validate() error {
	if err := validateStep(opts.MaxDistanceBetweenPoints); err != nil {
		return err
	}
	if err := opts.TargetViewbox.Validate(); err != nil {
		return fmt.Errorf("target %w", err)
	}
	return nil
}

func validateStep(step float64) error {
	if !(step > 0) || !finite(step) {
		return fmt.Errorf("%w: got %g", ErrInvalidStep, step)
	}
	return nil
}
