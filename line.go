package shapes

// LineSpec describes a single stroked line segment.
type LineSpec struct {
	From, To Point
	Color    Color
	Stroke   Stroke
}

// Mesh strokes the line with default options.
func (s LineSpec) Mesh() (*Mesh, error) {
	return TessellateLine(s)
}

// TessellateLine strokes the segment From-To.
func TessellateLine(spec LineSpec, opts ...Option) (*Mesh, error) {
	p := NewPath()
	p.MoveTo(spec.From.X, spec.From.Y)
	p.LineTo(spec.To.X, spec.To.Y)
	return StrokeMesh(p, spec.Color, spec.Stroke, opts...)
}
