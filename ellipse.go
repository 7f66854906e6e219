package shapes

import (
	"log/slog"
	"math"
)

// Segment limits for ellipse tessellation.
const (
	minEllipseSegments = 12
	maxEllipseSegments = 720

	// DefaultStepDistance is the outline length covered by one ellipse segment.
	DefaultStepDistance = 10.0
)

// EllipseSpec describes a filled ellipse centered at the origin with an
// optional elliptical hole. The hole is removed with the odd-even rule,
// so a zero mask gives a solid ellipse and a mask equal to the radii gives
// an empty one.
type EllipseSpec struct {
	RadiusX, RadiusY float64
	MaskX, MaskY     float64
	Color            Color

	// StepDistance is the approximate outline length per segment.
	// Zero or negative uses DefaultStepDistance.
	StepDistance float64
}

// Mesh tessellates the ellipse with default options.
func (s EllipseSpec) Mesh() (*Mesh, error) {
	return TessellateEllipse(s)
}

// TessellateEllipse builds a single-sided, counter-clockwise mesh for spec.
// The outline is sampled n times, and each outer sample is paired with the
// mask sample at the same angle to form a closed quad strip: 2n vertices
// and 2n triangles.
func TessellateEllipse(spec EllipseSpec, opts ...Option) (*Mesh, error) {
	o := buildOptions(opts)
	if err := spec.validate(o.strict); err != nil {
		return nil, err
	}

	rx, ry := spec.RadiusX*o.scale, spec.RadiusY*o.scale
	// Masks larger than the shape would turn the odd-even fill inside out.
	mx := math.Min(spec.MaskX*o.scale, rx)
	my := math.Min(spec.MaskY*o.scale, ry)

	step := spec.StepDistance
	if !(step > 0) {
		step = DefaultStepDistance
	}
	n := ellipseSegments(rx, ry, step*o.scale)

	m := NewMesh(2*n, 2*n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := math.Cos(a), math.Sin(a)
		m.AddVertex(Pt(mx*cos, my*sin), spec.Color)
		m.AddVertex(Pt(rx*cos, ry*sin), spec.Color)
	}
	for i := 0; i < n; i++ {
		in0, out0 := uint32(2*i), uint32(2*i+1)
		j := (i + 1) % n
		in1, out1 := uint32(2*j), uint32(2*j+1)
		m.AddTriangle(in0, out0, out1)
		m.AddTriangle(in0, out1, in1)
	}

	Logger().Debug("shapes: ellipse tessellated",
		slog.Int("segments", n),
		slog.Int("vertices", m.VertexCount()))
	return m, nil
}

func (s EllipseSpec) validate(strict bool) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"radius x", s.RadiusX},
		{"radius y", s.RadiusY},
		{"mask x", s.MaskX},
		{"mask y", s.MaskY},
	} {
		if f.v < 0 {
			return configError(f.name, f.v, "must not be negative")
		}
		if strict && !isFinite(f.v) {
			return configError(f.name, f.v, "must be finite")
		}
	}
	return nil
}

// ellipseSegments picks the segment count for an outline of the given radii
// so each segment covers roughly step units of the perimeter.
func ellipseSegments(rx, ry, step float64) int {
	// Ramanujan's second approximation.
	h := 0.0
	if rx+ry > 0 {
		h = (rx - ry) * (rx - ry) / ((rx + ry) * (rx + ry))
	}
	perimeter := math.Pi * (rx + ry) * (1 + 3*h/(10+math.Sqrt(4-3*h)))

	n := math.Ceil(perimeter / step)
	switch {
	case math.IsNaN(n) || n < minEllipseSegments:
		return minEllipseSegments
	case n > maxEllipseSegments:
		return maxEllipseSegments
	}
	return int(n)
}
