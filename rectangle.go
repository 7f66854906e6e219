package shapes

// RectangleSpec describes a filled rectangle with an optional rectangular
// hole centered inside it.
type RectangleSpec struct {
	Width, Height         float64
	MaskWidth, MaskHeight float64
	Color                 Color
}

// Mesh tessellates the rectangle with default options.
func (s RectangleSpec) Mesh() (*Mesh, error) {
	return TessellateRectangle(s)
}

// TessellateRectangle builds a single-sided, counter-clockwise mesh for spec
// centered at the origin. The mask is clamped to the rectangle. Without a
// mask the result is two triangles; with one it is an eight-triangle frame.
func TessellateRectangle(spec RectangleSpec, opts ...Option) (*Mesh, error) {
	o := buildOptions(opts)
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", spec.Width},
		{"height", spec.Height},
		{"mask width", spec.MaskWidth},
		{"mask height", spec.MaskHeight},
	} {
		if f.v < 0 {
			return nil, configError(f.name, f.v, "must not be negative")
		}
		if o.strict && !isFinite(f.v) {
			return nil, configError(f.name, f.v, "must be finite")
		}
	}

	w, h := spec.Width*o.scale, spec.Height*o.scale
	mw, mh := spec.MaskWidth*o.scale, spec.MaskHeight*o.scale
	outer := XYWH(0, 0, w, h)
	mask := XYWH(w/2-mw/2, h/2-mh/2, mw, mh).Intersect(outer)

	var m *Mesh
	if mask.Empty() {
		m = NewMesh(4, 2)
		a := m.AddVertex(outer.Min, spec.Color)
		b := m.AddVertex(Pt(outer.Max.X, outer.Min.Y), spec.Color)
		c := m.AddVertex(outer.Max, spec.Color)
		d := m.AddVertex(Pt(outer.Min.X, outer.Max.Y), spec.Color)
		m.AddTriangle(a, b, c)
		m.AddTriangle(a, c, d)
	} else {
		m = frameMesh(outer, mask, spec.Color)
	}

	// Center alignment: the pivot sits in the middle of the outer rectangle.
	m.Translate(outer.Center().Mul(-1))
	return m, nil
}

// frameMesh triangulates the region between outer and an inner rectangle
// fully contained in it.
func frameMesh(outer, inner Rect, c Color) *Mesh {
	m := NewMesh(8, 8)
	corners := func(r Rect) [4]uint32 {
		return [4]uint32{
			m.AddVertex(r.Min, c),
			m.AddVertex(Pt(r.Max.X, r.Min.Y), c),
			m.AddVertex(r.Max, c),
			m.AddVertex(Pt(r.Min.X, r.Max.Y), c),
		}
	}
	o := corners(outer)
	in := corners(inner)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		m.AddTriangle(o[i], o[j], in[j])
		m.AddTriangle(o[i], in[j], in[i])
	}
	return m
}
