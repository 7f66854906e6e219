package shapes

import "log/slog"

// Ring side limits exposed by editor inspectors.
const (
	MinRingSides = 3
	MaxRingSides = 72
)

// RingSpec describes an annular sector: the part of a ring between two
// angles, optionally hollowed by an inner mask radius.
//
// Angles are in degrees, measured clockwise from +Y, and are not normalized:
// spans beyond a full turn wrap around the ring again.
type RingSpec struct {
	StartAngleDeg   float64
	EndAngleDeg     float64
	Sides           int
	OuterRadius     float64
	InnerMaskRadius float64
	Color           Color
}

// Validate reports whether the ring can be tessellated. With strict set it
// also rejects non-finite angles and radii.
func (s RingSpec) Validate(strict bool) error {
	if s.Sides < MinRingSides {
		return configError("sides", s.Sides, "must be at least 3")
	}
	if !strict {
		return nil
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"start angle", s.StartAngleDeg},
		{"end angle", s.EndAngleDeg},
		{"outer radius", s.OuterRadius},
		{"inner mask radius", s.InnerMaskRadius},
	} {
		if !isFinite(f.v) {
			return configError(f.name, f.v, "must be finite")
		}
	}
	return nil
}

// Mesh tessellates the ring with default options.
func (s RingSpec) Mesh() (*Mesh, error) {
	return Tessellate(s)
}

// Tessellate builds the double-sided triangle mesh of a ring sector.
//
// The arc from EndAngleDeg towards StartAngleDeg is split into Sides equal
// steps. Each of the Sides+1 samples contributes an inner and an outer
// vertex, and consecutive samples are joined by two triangles. The face is
// emitted twice, once per winding, and every vertex is shifted by
// (OuterRadius, OuterRadius) so the ring's center sits at that offset.
//
// Tessellate fails only for Sides < 3 (or non-finite input under
// WithStrict). Zero radii or equal angles yield degenerate, zero-area
// geometry rather than an error.
func Tessellate(spec RingSpec, opts ...Option) (*Mesh, error) {
	o := buildOptions(opts)
	if err := spec.Validate(o.strict); err != nil {
		return nil, err
	}
	if o.scale != 1 {
		spec.OuterRadius *= o.scale
		spec.InnerMaskRadius *= o.scale
	}

	front := ringFace(spec, false)
	back := ringFace(spec, true)

	mesh := NewMesh(len(front.Vertices)*2, len(front.Triangles)*2)
	mesh.Append(front)
	mesh.Append(back)
	mesh.Fill(spec.Color)

	Logger().Debug("shapes: ring tessellated",
		slog.Int("sides", spec.Sides),
		slog.Int("vertices", mesh.VertexCount()),
		slog.Int("triangles", mesh.TriangleCount()))
	return mesh, nil
}

// ringFace builds one face of the ring. Both faces share vertex positions;
// reverse selects the opposite winding.
func ringFace(spec RingSpec, reverse bool) *Mesh {
	sides := spec.Sides
	steps := sides + 1
	angleStep := (spec.StartAngleDeg - spec.EndAngleDeg) / float64(sides)

	// Mask radii beyond the outer radius collapse the ring to zero width
	// instead of going negative.
	width := spec.OuterRadius - spec.InnerMaskRadius
	if spec.InnerMaskRadius > spec.OuterRadius {
		width = 0
	}
	offset := Pt(spec.OuterRadius, spec.OuterRadius)

	face := &Mesh{
		Vertices:  make([]Point, 0, steps*2),
		Triangles: make([]Triangle, 0, sides*2),
	}
	for i := 0; i < steps; i++ {
		angle := spec.EndAngleDeg + float64(i)*angleStep
		dir := DirDeg(angle)

		outer := dir.Mul(spec.OuterRadius)
		inner := outer.Sub(dir.Mul(width))
		face.Vertices = append(face.Vertices, inner.Add(offset), outer.Add(offset))

		if i == sides {
			continue
		}
		v := uint32(i * 2)
		if reverse {
			face.AddTriangle(v+1, v, v+2)
			face.AddTriangle(v+3, v+1, v+2)
		} else {
			face.AddTriangle(v+1, v+2, v)
			face.AddTriangle(v+3, v+2, v+1)
		}
	}
	face.Fill(spec.Color)
	return face
}
