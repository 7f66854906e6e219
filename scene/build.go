package scene

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/shapes"
)

// Built is the result of building one shape.
type Built struct {
	Name   string
	Kind   string
	Mesh   *shapes.Mesh
	Sprite *shapes.Sprite
}

// Build tessellates every shape in document order. Ring sprites are built
// in pixel space with the document's pixels per unit; the other shapes are
// built in units and wrapped in a sprite at their bounding box.
func (d *Document) Build(opts ...shapes.Option) ([]Built, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := make([]Built, 0, len(d.Shapes))
	for i := range d.Shapes {
		b, err := d.buildShape(&d.Shapes[i], opts)
		if err != nil {
			return nil, fmt.Errorf("scene: shape %q: %w", d.Shapes[i].Name, err)
		}
		shapes.Logger().Debug("scene: shape built",
			slog.String("name", b.Name),
			slog.String("kind", b.Kind),
			slog.Int("vertices", b.Mesh.VertexCount()),
			slog.Int("triangles", b.Mesh.TriangleCount()))
		out = append(out, b)
	}
	return out, nil
}

// Source returns the shape as a shapes.Source, for use with shapes.Builder.
func (s *Shape) Source() (shapes.Source, error) {
	if err := s.checkBlock(); err != nil {
		return nil, err
	}
	c := shapes.White
	if s.Color != nil {
		c = *s.Color
	}

	switch s.Kind {
	case KindRing:
		return s.Ring.spec(c), nil
	case KindEllipse:
		e := s.Ellipse
		return shapes.EllipseSpec{
			RadiusX: e.RadiusX, RadiusY: e.RadiusY,
			MaskX: e.MaskX, MaskY: e.MaskY,
			StepDistance: e.Step,
			Color:        c,
		}, nil
	case KindRectangle:
		r := s.Rectangle
		return shapes.RectangleSpec{
			Width: r.Width, Height: r.Height,
			MaskWidth: r.MaskWidth, MaskHeight: r.MaskHeight,
			Color: c,
		}, nil
	case KindLine:
		st, err := s.Stroke.stroke()
		if err != nil {
			return nil, err
		}
		return shapes.LineSpec{From: s.Line.From.point(), To: s.Line.To.point(), Color: c, Stroke: st}, nil
	case KindSpline:
		st, err := s.Stroke.stroke()
		if err != nil {
			return nil, err
		}
		segs := make([]shapes.SplineSegment, len(s.Spline.Segments))
		for i, seg := range s.Spline.Segments {
			segs[i] = shapes.SplineSegment{P0: seg.P0.point(), P1: seg.P1.point(), P2: seg.P2.point()}
		}
		return shapes.SplineSpec{Segments: segs, Color: c, Stroke: st}, nil
	default: // KindTrail
		tr := shapes.NewTrail(s.Trail.AppendDistance, s.Trail.Width)
		tr.Color = c
		for _, p := range s.Trail.Points {
			tr.Push(p.point())
		}
		return tr, nil
	}
}

func (d *Document) buildShape(s *Shape, opts []shapes.Option) (Built, error) {
	b := Built{Name: s.Name, Kind: s.Kind}
	if s.Kind == KindRing {
		c := shapes.White
		if s.Color != nil {
			c = *s.Color
		}
		sp, err := shapes.NewRingSprite(s.Ring.spec(c), d.ppu(), opts...)
		if err != nil {
			return b, err
		}
		b.Mesh, b.Sprite = sp.Mesh, sp
		return b, nil
	}

	src, err := s.Source()
	if err != nil {
		return b, err
	}
	var m *shapes.Mesh
	switch spec := src.(type) {
	case shapes.EllipseSpec:
		m, err = shapes.TessellateEllipse(spec, opts...)
	case shapes.RectangleSpec:
		m, err = shapes.TessellateRectangle(spec, opts...)
	case shapes.LineSpec:
		m, err = shapes.TessellateLine(spec, opts...)
	case shapes.SplineSpec:
		m, err = shapes.TessellateSpline(spec, opts...)
	default:
		m, err = src.Mesh()
	}
	if err != nil {
		return b, err
	}
	sp, err := shapes.NewSprite(m, d.ppu())
	if err != nil {
		return b, err
	}
	b.Mesh, b.Sprite = m, sp
	return b, nil
}

func (r *Ring) spec(c shapes.Color) shapes.RingSpec {
	return shapes.RingSpec{
		StartAngleDeg:   r.StartDeg,
		EndAngleDeg:     r.EndDeg,
		Sides:           r.Sides,
		OuterRadius:     r.Radius,
		InnerMaskRadius: r.MaskRadius,
		Color:           c,
	}
}

func (s *Stroke) stroke() (shapes.Stroke, error) {
	st := shapes.DefaultStroke()
	if s == nil {
		return st, nil
	}
	if s.HalfThickness != 0 {
		st.HalfThickness = s.HalfThickness
	}
	if s.MiterLimit != 0 {
		st.MiterLimit = s.MiterLimit
	}
	if s.Tolerance != 0 {
		st.Tolerance = s.Tolerance
	}

	switch s.Cap {
	case "", "butt":
		st.Cap = shapes.LineCapButt
	case "round":
		st.Cap = shapes.LineCapRound
	case "square":
		st.Cap = shapes.LineCapSquare
	default:
		return st, fmt.Errorf("unknown cap %q", s.Cap)
	}

	switch s.Join {
	case "", "miter":
		st.Join = shapes.LineJoinMiter
	case "round":
		st.Join = shapes.LineJoinRound
	case "bevel":
		st.Join = shapes.LineJoinBevel
	default:
		return st, fmt.Errorf("unknown join %q", s.Join)
	}
	return st, nil
}
