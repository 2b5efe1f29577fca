// Package strokes converts vector stroke outlines into evenly spaced point
// sequences, for rendering stroke order animations or matching strokes drawn
// by hand.
//
// The input is SVG path data in some source coordinate system, described by a
// [Viewbox]. [Convert] runs every path of a [Document] through a pipeline:
//
//   - [NormalizePath] parses the path data and reduces it to a single
//     [MoveTo] followed by [LineTo], [QuadTo] and [CubicTo] segments in the
//     target coordinate system. Relative coordinates, shorthand curves,
//     horizontal and vertical lines, elliptical arcs and close path commands
//     are all rewritten in terms of these.
//   - [Flatten] replaces every Bézier curve with short lines through a lookup
//     table of points on the curve. The number of points depends on the
//     curve's arc length, computed by Legendre-Gauss quadrature.
//   - [Resample] walks the resulting polyline and emits a point every
//     [Options.MaxDistanceBetweenPoints] units of arc length. The distance left
//     over at the end of one line carries into the next, so spacing stays
//     uniform across segment boundaries.
//
// Points are optionally rounded to integers. The resulting [StrokeOutput]
// encodes to JSON as the target viewbox followed by one array of [x, y] pairs
// per stroke.
//
// Paths that fail to convert don't fail the document. They are recorded in
// [StrokeOutput.Skipped] and logged through the logger installed with
// [SetLogger].
//
// The svgdoc sub-package reads documents from SVG files, and the
// kanjistrokes command converts a directory of KanjiVG files in bulk.
package strokes
