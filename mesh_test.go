package shapes

import (
	"errors"
	"math"
	"testing"
)

func quadMesh(c Color) *Mesh {
	m := NewMesh(4, 2)
	a := m.AddVertex(Pt(0, 0), c)
	b := m.AddVertex(Pt(2, 0), c)
	d := m.AddVertex(Pt(2, 1), c)
	e := m.AddVertex(Pt(0, 1), c)
	m.AddTriangle(a, b, d)
	m.AddTriangle(a, d, e)
	return m
}

func TestMesh_Append(t *testing.T) {
	m := quadMesh(Red)
	other := quadMesh(Blue)
	other.Translate(Pt(10, 0))

	m.Append(other)
	if m.VertexCount() != 8 || m.TriangleCount() != 4 {
		t.Fatalf("got %d vertices, %d triangles; want 8, 4", m.VertexCount(), m.TriangleCount())
	}
	if m.Triangles[2] != (Triangle{4, 5, 6}) {
		t.Errorf("appended triangle = %v, want {4 5 6}", m.Triangles[2])
	}
	if m.Colors[4] != Blue {
		t.Errorf("appended color = %v, want blue", m.Colors[4])
	}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}

	m.Append(nil)
	if m.VertexCount() != 8 {
		t.Error("Append(nil) should be a no-op")
	}
}

func TestMesh_AppendPadsUVs(t *testing.T) {
	m := quadMesh(Red)
	other := quadMesh(Red)
	other.UVs = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	m.Append(other)
	if len(m.UVs) != 8 {
		t.Fatalf("len(UVs) = %d, want 8", len(m.UVs))
	}
	if m.UVs[6] != Pt(1, 1) {
		t.Errorf("UVs[6] = %v, want (1,1)", m.UVs[6])
	}

	m.Append(quadMesh(Red))
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestMesh_Bounds(t *testing.T) {
	if got := (&Mesh{}).Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %v, want zero", got)
	}
	m := quadMesh(Red)
	m.Translate(Pt(-1, -0.5))
	want := Rect{Min: Pt(-1, -0.5), Max: Pt(1, 0.5)}
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestMesh_Area(t *testing.T) {
	if got := quadMesh(Red).Area(); math.Abs(got-2) > 1e-12 {
		t.Errorf("Area() = %v, want 2", got)
	}
}

func TestMesh_DoubleSided(t *testing.T) {
	m := quadMesh(Red)
	ds := m.DoubleSided()
	if ds.VertexCount() != 8 || ds.TriangleCount() != 4 {
		t.Fatalf("got %d vertices, %d triangles", ds.VertexCount(), ds.TriangleCount())
	}
	if ds.Triangles[2] != (Triangle{5, 4, 6}) {
		t.Errorf("reversed triangle = %v, want {5 4 6}", ds.Triangles[2])
	}
	if m.TriangleCount() != 2 {
		t.Error("DoubleSided must not modify the receiver")
	}
}

func TestMesh_Validate(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
	}{
		{"index out of range", &Mesh{
			Vertices:  []Point{{}, {}},
			Colors:    []Color{Red, Red},
			Triangles: []Triangle{{0, 1, 2}},
		}},
		{"missing colors", &Mesh{
			Vertices:  []Point{{}, {}, {}},
			Colors:    []Color{Red},
			Triangles: []Triangle{{0, 1, 2}},
		}},
		{"short uvs", &Mesh{
			Vertices:  []Point{{}, {}, {}},
			Colors:    []Color{Red, Red, Red},
			UVs:       []Point{{}},
			Triangles: []Triangle{{0, 1, 2}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mesh.Validate(); !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("Validate() = %v, want ErrInvalidMesh", err)
			}
		})
	}
}

func TestMesh_Indices16(t *testing.T) {
	idx, err := quadMesh(Red).Indices16()
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0, 1, 2, 0, 2, 3}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("Indices16() = %v, want %v", idx, want)
		}
	}

	big := &Mesh{Vertices: make([]Point, math.MaxUint16+2)}
	if _, err := big.Indices16(); !errors.Is(err, ErrIndexOverflow) {
		t.Errorf("Indices16() on oversized mesh = %v, want ErrIndexOverflow", err)
	}
}

func TestMesh_Fill(t *testing.T) {
	m := &Mesh{Vertices: make([]Point, 3)}
	m.Fill(Green)
	if len(m.Colors) != 3 || m.Colors[2] != Green {
		t.Errorf("Fill() colors = %v", m.Colors)
	}
}
