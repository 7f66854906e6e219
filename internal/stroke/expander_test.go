package stroke

import (
	"math"
	"testing"
)

func signedArea(m Mesh, t [3]int) float64 {
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

func totalArea(m Mesh) float64 {
	var sum float64
	for _, t := range m.Triangles {
		sum += math.Abs(signedArea(m, t))
	}
	return sum
}

func checkMesh(t *testing.T, m Mesh) {
	t.Helper()
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				t.Fatalf("triangle %d index %d out of range", i, idx)
			}
		}
		if signedArea(m, tri) < -1e-12 {
			t.Errorf("triangle %d is clockwise", i)
		}
	}
}

func TestNewExpander(t *testing.T) {
	e := NewExpander(Style{HalfWidth: 0.5, MiterLimit: 4})
	if e.style.HalfWidth != 0.5 {
		t.Errorf("style.HalfWidth = %v, want 0.5", e.style.HalfWidth)
	}
	if e.tolerance != 0.05 {
		t.Errorf("tolerance = %v, want 0.05", e.tolerance)
	}

	e.SetTolerance(0.2)
	if e.tolerance != 0.2 {
		t.Errorf("tolerance = %v, want 0.2", e.tolerance)
	}
	e.SetTolerance(-1)
	if e.tolerance != 0.2 {
		t.Error("negative tolerance should be ignored")
	}
}

func TestExpandSimpleLine(t *testing.T) {
	e := NewExpander(Style{HalfWidth: 1, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4})
	m := e.Expand([]Point{{0, 0}, {10, 0}}, false)
	checkMesh(t, m)

	if len(m.Vertices) != 4 || len(m.Triangles) != 2 {
		t.Fatalf("got %d vertices, %d triangles; want 4, 2", len(m.Vertices), len(m.Triangles))
	}
	if got := totalArea(m); math.Abs(got-20) > 1e-9 {
		t.Errorf("area = %v, want 20", got)
	}
}

func TestExpandSquareCap(t *testing.T) {
	e := NewExpander(Style{HalfWidth: 1, Cap: LineCapSquare})
	m := e.Expand([]Point{{0, 0}, {10, 0}}, false)
	checkMesh(t, m)
	if got := totalArea(m); math.Abs(got-24) > 1e-9 {
		t.Errorf("area = %v, want 24 (length extended by the half width at both ends)", got)
	}
}

func TestExpandRoundCap(t *testing.T) {
	e := NewExpander(Style{HalfWidth: 1, Cap: LineCapRound})
	e.SetTolerance(0.001)
	m := e.Expand([]Point{{0, 0}, {10, 0}}, false)
	checkMesh(t, m)
	want := 20 + math.Pi
	if got := totalArea(m); math.Abs(got-want) > 0.01 {
		t.Errorf("area = %v, want about %v", got, want)
	}
	// Caps reach past the endpoints.
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, v := range m.Vertices {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
	}
	if math.Abs(minX+1) > 1e-9 || math.Abs(maxX-11) > 1e-9 {
		t.Errorf("x extent = [%v, %v], want [-1, 11]", minX, maxX)
	}
}

func TestExpandJoins(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	tests := []struct {
		name      string
		join      LineJoin
		wantExtra float64
	}{
		{"bevel", LineJoinBevel, 0.5},
		{"miter", LineJoinMiter, 1},
		{"round", LineJoinRound, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(Style{HalfWidth: 1, Join: tt.join, MiterLimit: 4})
			e.SetTolerance(0.0001)
			m := e.Expand(pts, false)
			checkMesh(t, m)
			// Two 10x2 segment quads plus the join wedge.
			want := 40 + tt.wantExtra
			if got := totalArea(m); math.Abs(got-want) > 0.01 {
				t.Errorf("area = %v, want about %v", got, want)
			}
		})
	}
}

func TestExpandMiterLimitFallsBackToBevel(t *testing.T) {
	// A very sharp turn: miter ratio far above the limit.
	pts := []Point{{0, 0}, {10, 0}, {0, 0.5}}
	miter := NewExpander(Style{HalfWidth: 1, Join: LineJoinMiter, MiterLimit: 2}).Expand(pts, false)
	bevel := NewExpander(Style{HalfWidth: 1, Join: LineJoinBevel}).Expand(pts, false)
	if len(miter.Triangles) != len(bevel.Triangles) {
		t.Errorf("miter past limit: %d triangles, bevel: %d", len(miter.Triangles), len(bevel.Triangles))
	}
}

func TestExpandClosed(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	e := NewExpander(Style{HalfWidth: 1, Join: LineJoinMiter, MiterLimit: 4})
	m := e.Expand(square, true)
	checkMesh(t, m)
	// 4 segment quads + 4 miter joins of 2 triangles each.
	if len(m.Triangles) != 4*2+4*2 {
		t.Errorf("triangles = %d, want 16", len(m.Triangles))
	}
}

func TestExpandDegenerate(t *testing.T) {
	e := NewExpander(Style{HalfWidth: 1, Cap: LineCapButt})
	if m := e.Expand(nil, false); len(m.Triangles) != 0 {
		t.Error("nil input should produce no triangles")
	}
	if m := e.Expand([]Point{{1, 1}, {1, 1}}, false); len(m.Triangles) != 0 {
		t.Error("single repeated point with butt cap should produce no triangles")
	}

	dot := NewExpander(Style{HalfWidth: 1, Cap: LineCapRound}).Expand([]Point{{1, 1}}, false)
	checkMesh(t, dot)
	if len(dot.Triangles) < 4 {
		t.Errorf("round dot has %d triangles, want a full fan", len(dot.Triangles))
	}

	if m := NewExpander(Style{HalfWidth: 0}).Expand([]Point{{0, 0}, {1, 0}}, false); len(m.Triangles) != 0 {
		t.Error("zero width should produce no triangles")
	}
}

func TestExpandStraightContinuationHasNoJoin(t *testing.T) {
	e := NewExpander(Style{HalfWidth: 1, Join: LineJoinRound})
	m := e.Expand([]Point{{0, 0}, {5, 0}, {10, 0}}, false)
	if len(m.Triangles) != 4 {
		t.Errorf("triangles = %d, want 4 (two segments, no join)", len(m.Triangles))
	}
}

func BenchmarkExpand(b *testing.B) {
	pts := make([]Point, 100)
	for i := range pts {
		a := float64(i) * 0.1
		pts[i] = Point{X: float64(i), Y: 10 * math.Sin(a)}
	}
	e := NewExpander(Style{HalfWidth: 2, Cap: LineCapRound, Join: LineJoinRound})
	b.ReportAllocs()
	for b.Loop() {
		_ = e.Expand(pts, false)
	}
}
