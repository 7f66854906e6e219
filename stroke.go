package shapes

import (
	"log/slog"

	ipath "github.com/gogpu/shapes/internal/path"
	"github.com/gogpu/shapes/internal/stroke"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroking paths into meshes.
type Stroke struct {
	// HalfThickness is half the line width. Default: 0.1
	HalfThickness float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0 (common default, matches SVG)
	MiterLimit float64

	// Tolerance is the maximum deviation allowed when flattening curves
	// and approximating round caps and joins. Default: 0.05
	Tolerance float64
}

// DefaultStroke returns a Stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		HalfThickness: 0.1,
		Cap:           LineCapButt,
		Join:          LineJoinMiter,
		MiterLimit:    4.0,
		Tolerance:     0.05,
	}
}

// WithHalfThickness returns a copy of the Stroke with the given half thickness.
func (s Stroke) WithHalfThickness(h float64) Stroke {
	s.HalfThickness = h
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithTolerance returns a copy of the Stroke with the given tolerance.
func (s Stroke) WithTolerance(tol float64) Stroke {
	s.Tolerance = tol
	return s
}

func (s Stroke) validate(strict bool) error {
	if s.HalfThickness < 0 {
		return configError("half thickness", s.HalfThickness, "must not be negative")
	}
	if strict && !isFinite(s.HalfThickness) {
		return configError("half thickness", s.HalfThickness, "must be finite")
	}
	return nil
}

// StrokeMesh expands every subpath of path into a single-sided,
// counter-clockwise triangle mesh filled with c. Curves are flattened with
// the stroke tolerance. An empty path yields an empty mesh.
func StrokeMesh(path *Path, c Color, s Stroke, opts ...Option) (*Mesh, error) {
	o := buildOptions(opts)
	if err := s.validate(o.strict); err != nil {
		return nil, err
	}
	if o.strict {
		for _, p := range path.points() {
			if !p.IsFinite() {
				return nil, configError("path point", p, "must be finite")
			}
		}
	}

	scaled := path
	if o.scale != 1 {
		scaled = path.Scaled(o.scale)
	}

	e := stroke.NewExpander(stroke.Style{
		HalfWidth:  s.HalfThickness * o.scale,
		Cap:        stroke.LineCap(s.Cap),
		Join:       stroke.LineJoin(s.Join),
		MiterLimit: s.MiterLimit,
	})
	e.SetTolerance(s.Tolerance * o.scale)

	m := NewMesh(0, 0)
	for _, line := range ipath.Flatten(scaled.internal(), s.Tolerance*o.scale) {
		pts := make([]stroke.Point, len(line.Points))
		for i, p := range line.Points {
			pts[i] = stroke.Point(p)
		}
		out := e.Expand(pts, line.Closed)

		base := uint32(m.VertexCount())
		for _, v := range out.Vertices {
			m.AddVertex(Point(v), c)
		}
		for _, t := range out.Triangles {
			m.AddTriangle(base+uint32(t[0]), base+uint32(t[1]), base+uint32(t[2]))
		}
	}

	Logger().Debug("shapes: path stroked",
		slog.Int("vertices", m.VertexCount()),
		slog.Int("triangles", m.TriangleCount()))
	return m, nil
}
