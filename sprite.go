package shapes

// Sprite pairs a mesh with the placement data a sprite renderer needs:
// the bounding rectangle in pixels, a normalized pivot and the pixel density.
type Sprite struct {
	Rect          Rect
	Pivot         Point
	PixelsPerUnit float64
	Mesh          *Mesh
}

// DefaultPivot is the center of the sprite rectangle.
var DefaultPivot = Pt(0.5, 0.5)

// NewSprite wraps a mesh whose rectangle is the mesh bounding box.
func NewSprite(m *Mesh, pixelsPerUnit float64) (*Sprite, error) {
	if !(pixelsPerUnit > 0) || !isFinite(pixelsPerUnit) {
		return nil, configError("pixels per unit", pixelsPerUnit, "must be positive")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Sprite{
		Rect:          m.Bounds(),
		Pivot:         DefaultPivot,
		PixelsPerUnit: pixelsPerUnit,
		Mesh:          m,
	}, nil
}

// NewRingSprite tessellates spec in pixel space and wraps it in a sprite.
// Radii are scaled by pixelsPerUnit/2 and the sprite rectangle spans
// (-r, -r, 2r, 2r) for the scaled outer radius r.
func NewRingSprite(spec RingSpec, pixelsPerUnit float64, opts ...Option) (*Sprite, error) {
	if !(pixelsPerUnit > 0) || !isFinite(pixelsPerUnit) {
		return nil, configError("pixels per unit", pixelsPerUnit, "must be positive")
	}
	scale := pixelsPerUnit / 2
	m, err := Tessellate(spec, append(opts[:len(opts):len(opts)], WithScale(scale))...)
	if err != nil {
		return nil, err
	}
	r := spec.OuterRadius * scale
	return &Sprite{
		Rect:          XYWH(-r, -r, 2*r, 2*r),
		Pivot:         DefaultPivot,
		PixelsPerUnit: pixelsPerUnit,
		Mesh:          m,
	}, nil
}

// Indices16 returns the mesh index buffer in the 16-bit layout sprite
// geometry is uploaded with.
func (s *Sprite) Indices16() ([]uint16, error) {
	return s.Mesh.Indices16()
}
