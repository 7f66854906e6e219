package shapes

import (
	"errors"
	"math"
	"testing"
)

func checkCCW(t *testing.T, m *Mesh) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	for i, tri := range m.Triangles {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		if b.Sub(a).Cross(c.Sub(a)) < -1e-9 {
			t.Errorf("triangle %d %v is clockwise", i, tri)
		}
	}
}

func TestTessellateEllipse(t *testing.T) {
	tests := []struct {
		name     string
		spec     EllipseSpec
		wantArea float64
	}{
		{"solid circle", EllipseSpec{RadiusX: 10, RadiusY: 10, StepDistance: 0.1}, math.Pi * 100},
		{"ellipse", EllipseSpec{RadiusX: 20, RadiusY: 5, StepDistance: 0.1}, math.Pi * 100},
		{"ring", EllipseSpec{RadiusX: 10, RadiusY: 10, MaskX: 5, MaskY: 5, StepDistance: 0.1}, math.Pi * 75},
		{"mask clamped", EllipseSpec{RadiusX: 10, RadiusY: 10, MaskX: 50, MaskY: 50, StepDistance: 0.1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := TessellateEllipse(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			checkCCW(t, m)
			if m.VertexCount() != m.TriangleCount() {
				t.Errorf("vertices %d != triangles %d", m.VertexCount(), m.TriangleCount())
			}
			if got := m.Area(); math.Abs(got-tt.wantArea) > tt.wantArea*0.01+1e-9 {
				t.Errorf("Area() = %v, want about %v", got, tt.wantArea)
			}
		})
	}
}

func TestTessellateEllipse_SegmentCount(t *testing.T) {
	// Tiny shapes still get the minimum segment count.
	m, err := TessellateEllipse(EllipseSpec{RadiusX: 0.1, RadiusY: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 2*minEllipseSegments {
		t.Errorf("vertices = %d, want %d", m.VertexCount(), 2*minEllipseSegments)
	}

	// Huge shapes are capped.
	m, err = TessellateEllipse(EllipseSpec{RadiusX: 1e6, RadiusY: 1e6, StepDistance: 1})
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 2*maxEllipseSegments {
		t.Errorf("vertices = %d, want %d", m.VertexCount(), 2*maxEllipseSegments)
	}

	// A circle of radius 100 with the default step: perimeter / 10.
	m, err = TessellateEllipse(EllipseSpec{RadiusX: 100, RadiusY: 100})
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * int(math.Ceil(2*math.Pi*100/DefaultStepDistance)); m.VertexCount() != want {
		t.Errorf("vertices = %d, want %d", m.VertexCount(), want)
	}
}

func TestTessellateEllipse_Negative(t *testing.T) {
	_, err := TessellateEllipse(EllipseSpec{RadiusX: -1, RadiusY: 1})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestTessellateRectangle(t *testing.T) {
	tests := []struct {
		name          string
		spec          RectangleSpec
		wantTriangles int
		wantArea      float64
	}{
		{"solid", RectangleSpec{Width: 4, Height: 2}, 2, 8},
		{"frame", RectangleSpec{Width: 4, Height: 2, MaskWidth: 2, MaskHeight: 1}, 8, 6},
		{"mask larger than rect", RectangleSpec{Width: 4, Height: 2, MaskWidth: 10, MaskHeight: 10}, 8, 0},
		{"zero mask height", RectangleSpec{Width: 4, Height: 2, MaskWidth: 2}, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := TessellateRectangle(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			checkCCW(t, m)
			if m.TriangleCount() != tt.wantTriangles {
				t.Errorf("triangles = %d, want %d", m.TriangleCount(), tt.wantTriangles)
			}
			if got := m.Area(); math.Abs(got-tt.wantArea) > 1e-9 {
				t.Errorf("Area() = %v, want %v", got, tt.wantArea)
			}
			want := Rect{Min: Pt(-2, -1), Max: Pt(2, 1)}
			if got := m.Bounds(); got != want {
				t.Errorf("Bounds() = %v, want %v (centered)", got, want)
			}
		})
	}
}

func TestTessellateRectangle_Scale(t *testing.T) {
	m, err := TessellateRectangle(RectangleSpec{Width: 1, Height: 1}, WithScale(100))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Bounds().Width(); got != 100 {
		t.Errorf("width = %v, want 100", got)
	}
	if _, err := TessellateRectangle(RectangleSpec{Width: -1}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("negative width: err = %v", err)
	}
}

func TestTessellateLine(t *testing.T) {
	spec := LineSpec{From: Pt(0, 0), To: Pt(10, 0), Color: White, Stroke: DefaultStroke().WithHalfThickness(0.5)}
	m, err := TessellateLine(spec)
	if err != nil {
		t.Fatal(err)
	}
	checkCCW(t, m)
	if math.Abs(m.Area()-10) > 1e-9 {
		t.Errorf("Area() = %v, want 10", m.Area())
	}
	want := Rect{Min: Pt(0, -0.5), Max: Pt(10, 0.5)}
	if got := m.Bounds(); !approxPoint(got.Min, want.Min, 1e-12) || !approxPoint(got.Max, want.Max, 1e-12) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestTessellateLine_Degenerate(t *testing.T) {
	m, err := TessellateLine(LineSpec{From: Pt(1, 1), To: Pt(1, 1), Stroke: DefaultStroke()})
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsEmpty() {
		t.Errorf("zero-length butt line should be empty, got %d triangles", m.TriangleCount())
	}
	_, err = TessellateLine(LineSpec{To: Pt(1, 0), Stroke: DefaultStroke().WithHalfThickness(-1)})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("negative thickness: err = %v", err)
	}
}

func TestTessellateSpline(t *testing.T) {
	spec := SplineSpec{
		Segments: []SplineSegment{
			{P0: Pt(0, 0), P1: Pt(0, 5), P2: Pt(10, 5)},
			{P0: Pt(10, 0), P1: Pt(10, -5), P2: Pt(20, -5)},
			{P0: Pt(20, 0)},
		},
		Color:  Red,
		Stroke: DefaultStroke().WithJoin(LineJoinRound).WithCap(LineCapRound),
	}
	m, err := TessellateSpline(spec)
	if err != nil {
		t.Fatal(err)
	}
	checkCCW(t, m)
	b := m.Bounds()
	if b.Min.X > -0.09 || b.Max.X < 20.09 {
		t.Errorf("Bounds() = %v, want x span covering the round caps", b)
	}
	if b.Max.Y < 3 || b.Min.Y > -3 {
		t.Errorf("Bounds() = %v, want the curve to bulge both ways", b)
	}

	p := spec.Path()
	if len(p.Elements()) != 3 {
		t.Errorf("Path() has %d elements, want MoveTo + 2 CubicTo", len(p.Elements()))
	}
}

func TestTessellateSpline_TooFewSegments(t *testing.T) {
	_, err := TessellateSpline(SplineSpec{Segments: []SplineSegment{{P0: Pt(1, 1)}}, Stroke: DefaultStroke()})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestStrokeMesh_MultipleSubpaths(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(4, 0)
	p.MoveTo(0, 10)
	p.LineTo(4, 10)
	p.LineTo(4, 14)
	p.Close()

	m, err := StrokeMesh(p, Blue, DefaultStroke().WithHalfThickness(0.5))
	if err != nil {
		t.Fatal(err)
	}
	checkCCW(t, m)
	// Open segment: 2 triangles. Closed triangle: 3 quads + 3 joins.
	if m.TriangleCount() < 2+6+3 {
		t.Errorf("triangles = %d, want at least 11", m.TriangleCount())
	}
}

func TestStrokeMesh_Strict(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(math.NaN(), 1)
	if _, err := StrokeMesh(p, Red, DefaultStroke(), WithStrict()); !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestStrokeMesh_Scale(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	m, err := StrokeMesh(p, Red, DefaultStroke().WithHalfThickness(0.5), WithScale(10))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.Area()-100) > 1e-9 {
		t.Errorf("Area() = %v, want 100", m.Area())
	}
}
