package shapes

import (
	"fmt"
	"math"
)

// Triangle is an index triple into Mesh.Vertices.
type Triangle [3]uint32

// Mesh is a flat 2D triangle mesh: a vertex buffer, an index buffer and a
// per-vertex fill color. UVs is either empty or parallel to Vertices.
//
// A Mesh is plain data. Uploading it is up to the renderer that receives it.
type Mesh struct {
	Vertices  []Point
	Triangles []Triangle
	Colors    []Color
	UVs       []Point
}

// NewMesh creates an empty mesh with room for the given number of vertices
// and triangles.
func NewMesh(vertexCap, triangleCap int) *Mesh {
	return &Mesh{
		Vertices:  make([]Point, 0, vertexCap),
		Triangles: make([]Triangle, 0, triangleCap),
		Colors:    make([]Color, 0, vertexCap),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p Point, c Color) uint32 {
	m.Vertices = append(m.Vertices, p)
	m.Colors = append(m.Colors, c)
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends an index triple.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Triangles = append(m.Triangles, Triangle{a, b, c})
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Append concatenates other onto m. The indices of other are shifted by the
// vertex count m had before the call so the combined buffers stay consistent.
func (m *Mesh) Append(other *Mesh) {
	if other == nil {
		return
	}
	base := uint32(len(m.Vertices))
	hadUVs := len(m.UVs) > 0
	if !hadUVs && len(other.UVs) > 0 {
		m.UVs = make([]Point, len(m.Vertices), len(m.Vertices)+len(other.Vertices))
	}

	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Colors = append(m.Colors, other.Colors...)
	if len(m.UVs) > 0 {
		if len(other.UVs) > 0 {
			m.UVs = append(m.UVs, other.UVs...)
		} else {
			m.UVs = append(m.UVs, make([]Point, len(other.Vertices))...)
		}
	}
	for _, t := range other.Triangles {
		m.Triangles = append(m.Triangles, Triangle{t[0] + base, t[1] + base, t[2] + base})
	}
}

// Fill assigns c to every vertex.
func (m *Mesh) Fill(c Color) {
	if cap(m.Colors) < len(m.Vertices) {
		m.Colors = make([]Color, len(m.Vertices))
	}
	m.Colors = m.Colors[:len(m.Vertices)]
	for i := range m.Colors {
		m.Colors[i] = c
	}
}

// Translate moves every vertex by d.
func (m *Mesh) Translate(d Point) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(d)
	}
}

// Bounds returns the bounding box of the vertices. An empty mesh has a zero Rect.
func (m *Mesh) Bounds() Rect {
	if len(m.Vertices) == 0 {
		return Rect{}
	}
	r := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, v := range m.Vertices {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}

// Area returns the summed absolute area of all triangles.
func (m *Mesh) Area() float64 {
	var area float64
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		area += math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}
	return area
}

// Reversed returns a copy of m with the winding of every triangle flipped.
func (m *Mesh) Reversed() *Mesh {
	out := m.Clone()
	for i, t := range out.Triangles {
		out.Triangles[i] = Triangle{t[1], t[0], t[2]}
	}
	return out
}

// DoubleSided returns m followed by its reversed copy, so the mesh renders
// from both sides without relying on culling state.
func (m *Mesh) DoubleSided() *Mesh {
	out := m.Clone()
	out.Append(m.Reversed())
	return out
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices:  append([]Point(nil), m.Vertices...),
		Triangles: append([]Triangle(nil), m.Triangles...),
		Colors:    append([]Color(nil), m.Colors...),
	}
	if len(m.UVs) > 0 {
		out.UVs = append([]Point(nil), m.UVs...)
	}
	return out
}

// Indices returns the flattened index buffer.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

// Indices16 returns the flattened index buffer as 16-bit indices, the format
// sprite geometry uses. It fails with ErrIndexOverflow when the mesh has
// more vertices than a uint16 can address.
func (m *Mesh) Indices16() ([]uint16, error) {
	if len(m.Vertices) > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %d vertices", ErrIndexOverflow, len(m.Vertices))
	}
	out := make([]uint16, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, uint16(t[0]), uint16(t[1]), uint16(t[2]))
	}
	return out, nil
}

// Validate checks the mesh invariants: every index addresses a vertex,
// there is one color per vertex and UVs are absent or one per vertex.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx >= n {
				return fmt.Errorf("%w: triangle %d index %d out of range [0,%d)", ErrInvalidMesh, i, idx, n)
			}
		}
	}
	if len(m.Colors) != len(m.Vertices) {
		return fmt.Errorf("%w: %d colors for %d vertices", ErrInvalidMesh, len(m.Colors), len(m.Vertices))
	}
	if len(m.UVs) != 0 && len(m.UVs) != len(m.Vertices) {
		return fmt.Errorf("%w: %d uvs for %d vertices", ErrInvalidMesh, len(m.UVs), len(m.Vertices))
	}
	return nil
}
