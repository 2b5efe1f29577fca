package strokes

import (
	"encoding/json"
	"fmt"
)

// StrokeOutput is the result of [Convert].
//
// Its JSON form is an array whose first element is the corner form of the
// viewbox, followed by one array of [x, y] pairs per stroke:
//
//	[[0,0,999,999],[[10,20],[15,28]],[[40,50],[44,59]]]
type StrokeOutput struct {
	ViewBox Viewbox
	Strokes [][]Point
	// Paths that were not converted. Not part of the JSON form.
	Skipped []*PathError
}

// jsonFloat turns negative zero into zero.
func jsonFloat(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// Arrays returns the output as nested slices of numbers: the viewbox corners
// as a []float64, then each stroke as a [][]float64.
func (out *StrokeOutput) Arrays() []any {
	corners := out.ViewBox.Corners()
	header := make([]float64, len(corners))
	for i, f := range corners {
		header[i] = jsonFloat(f)
	}
	arrays := make([]any, 0, len(out.Strokes)+1)
	arrays = append(arrays, header)
	for _, stroke := range out.Strokes {
		pts := make([][]float64, len(stroke))
		for i, pt := range stroke {
			pts[i] = []float64{jsonFloat(pt.X), jsonFloat(pt.Y)}
		}
		arrays = append(arrays, pts)
	}
	return arrays
}

func (out *StrokeOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(out.Arrays())
}

func (out *StrokeOutput) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("stroke output: missing viewbox header")
	}
	var header []float64
	if err := json.Unmarshal(raw[0], &header); err != nil {
		return fmt.Errorf("stroke output: viewbox header: %w", err)
	}
	if len(header) != 4 {
		return fmt.Errorf("stroke output: viewbox header has %d numbers, want 4", len(header))
	}
	strokes := make([][]Point, 0, len(raw)-1)
	for i, r := range raw[1:] {
		var pairs [][2]float64
		if err := json.Unmarshal(r, &pairs); err != nil {
			return fmt.Errorf("stroke output: stroke %d: %w", i, err)
		}
		stroke := make([]Point, len(pairs))
		for j, p := range pairs {
			stroke[j] = Pt(p[0], p[1])
		}
		strokes = append(strokes, stroke)
	}
	*out = StrokeOutput{
		ViewBox: ViewboxFromCorners(header[0], header[1], header[2], header[3]),
		Strokes: strokes,
	}
	return nil
}
