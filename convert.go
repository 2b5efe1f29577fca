package strokes

import (
	"fmt"
)

// Document is a source document reduced to what conversion needs: its
// coordinate box and the data of its paths, in document order.
type Document struct {
	ViewBox Viewbox
	Paths   []PathData
}

// PathData is the d attribute of a path and the path's identifier.
type PathData struct {
	ID string
	D  string
}

// PathError records a path that could not be converted.
type PathError struct {
	// Position of the path in [Document.Paths].
	Index int
	ID    string
	Err   error
}

func (err *PathError) Error() string {
	if err.ID != "" {
		return fmt.Sprintf("path %d (%s): %s", err.Index, err.ID, err.Err)
	}
	return fmt.Sprintf("path %d: %s", err.Index, err.Err)
}

func (err *PathError) Unwrap() error { return err.Err }

// Convert turns every path of doc into a sequence of points spaced
// opts.MaxDistanceBetweenPoints apart along the path, in opts.TargetViewbox
// coordinates.
//
// Invalid options or a degenerate source viewbox are returned as errors.
// Paths that fail to convert are logged, recorded in
// [StrokeOutput.Skipped] and left out of [StrokeOutput.Strokes]; the
// remaining paths are still converted.
func Convert(doc Document, opts Options) (*StrokeOutput, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	aff, err := doc.ViewBox.TransformTo(opts.TargetViewbox)
	if err != nil {
		return nil, fmt.Errorf("source %w", err)
	}

	log := Logger()
	out := &StrokeOutput{
		ViewBox: opts.TargetViewbox,
		Strokes: make([][]Point, 0, len(doc.Paths)),
	}
	for i, p := range doc.Paths {
		pts, err := ConvertPath(p.D, aff, opts)
		if err != nil {
			perr := &PathError{Index: i, ID: p.ID, Err: err}
			log.Warn("skipping path", "index", i, "id", p.ID, "err", err)
			out.Skipped = append(out.Skipped, perr)
			continue
		}
		log.Debug("converted path", "index", i, "id", p.ID, "points", len(pts))
		out.Strokes = append(out.Strokes, pts)
	}
	return out, nil
}

// ConvertPath converts a single path: its data is normalized into the
// coordinate system of aff, curves are flattened, and the result is resampled
// and optionally rounded. opts.TargetViewbox is not used.
func ConvertPath(d string, aff Affine, opts Options) ([]Point, error) {
	step := opts.MaxDistanceBetweenPoints
	if err := validateStep(step); err != nil {
		return nil, err
	}
	segs, err := NormalizePath(d, aff)
	if err != nil {
		return nil, err
	}
	pts, err := Resample(Flatten(segs, step), step)
	if err != nil {
		return nil, err
	}
	if opts.RoundFloats {
		for i, pt := range pts {
			pts[i] = pt.Round()
		}
	}
	return pts, nil
}
