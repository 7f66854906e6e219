package shapes

// SplineSegment is one anchor of a cubic Bezier chain: P0 is the anchor,
// P1 and P2 are the outgoing control points. The curve of segment i ends at
// the anchor of segment i+1.
type SplineSegment struct {
	P0, P1, P2 Point
}

// SplineSpec describes a stroked chain of cubic Bezier curves.
// The control points of the last segment are unused: it only supplies the
// final anchor.
type SplineSpec struct {
	Segments []SplineSegment
	Color    Color
	Stroke   Stroke
}

// Mesh strokes the spline with default options.
func (s SplineSpec) Mesh() (*Mesh, error) {
	return TessellateSpline(s)
}

// Path returns the spline as a path of cubic curves.
func (s SplineSpec) Path() *Path {
	p := NewPath()
	if len(s.Segments) == 0 {
		return p
	}
	p.MoveTo(s.Segments[0].P0.X, s.Segments[0].P0.Y)
	for i := 0; i+1 < len(s.Segments); i++ {
		seg, next := s.Segments[i], s.Segments[i+1]
		p.CubicTo(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, next.P0.X, next.P0.Y)
	}
	return p
}

// TessellateSpline strokes the spline. It needs at least two segments.
func TessellateSpline(spec SplineSpec, opts ...Option) (*Mesh, error) {
	if len(spec.Segments) < 2 {
		return nil, configError("segments", len(spec.Segments), "need at least 2 anchors")
	}
	return StrokeMesh(spec.Path(), spec.Color, spec.Stroke, opts...)
}
