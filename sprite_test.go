package shapes

import (
	"errors"
	"testing"
)

func TestNewRingSprite(t *testing.T) {
	spec := RingSpec{StartAngleDeg: 0, EndAngleDeg: 360, Sides: 36, OuterRadius: 1, InnerMaskRadius: 0.5, Color: White}
	s, err := NewRingSprite(spec, 128)
	if err != nil {
		t.Fatal(err)
	}
	want := XYWH(-64, -64, 128, 128)
	if s.Rect != want {
		t.Errorf("Rect = %v, want %v", s.Rect, want)
	}
	if s.Pivot != DefaultPivot || s.PixelsPerUnit != 128 {
		t.Errorf("Pivot = %v, PixelsPerUnit = %v", s.Pivot, s.PixelsPerUnit)
	}
	// Ring vertices are offset by the scaled radius, so they fill (0,0)-(128,128).
	b := s.Mesh.Bounds()
	if !approxPoint(b.Min, Pt(0, 0), 1e-9) || !approxPoint(b.Max, Pt(128, 128), 1e-9) {
		t.Errorf("mesh bounds = %v", b)
	}

	idx, err := s.Indices16()
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 3*s.Mesh.TriangleCount() {
		t.Errorf("len(Indices16()) = %d, want %d", len(idx), 3*s.Mesh.TriangleCount())
	}
}

func TestNewRingSprite_DoesNotAliasOptions(t *testing.T) {
	opts := make([]Option, 1, 4)
	opts[0] = WithStrict()
	if _, err := NewRingSprite(RingSpec{EndAngleDeg: 90, Sides: 3, OuterRadius: 1}, 2, opts...); err != nil {
		t.Fatal(err)
	}
	if len(opts) != 1 {
		t.Errorf("caller options modified: len = %d", len(opts))
	}
	extended := opts[:2]
	if extended[1] != nil {
		t.Error("NewRingSprite wrote into the caller's option slice")
	}
}

func TestNewSprite(t *testing.T) {
	m, err := TessellateRectangle(RectangleSpec{Width: 2, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSprite(m, 100)
	if err != nil {
		t.Fatal(err)
	}
	if s.Rect != XYWH(-1, -2, 2, 4) {
		t.Errorf("Rect = %v", s.Rect)
	}

	for _, ppu := range []float64{0, -1} {
		if _, err := NewSprite(m, ppu); !errors.Is(err, ErrConfiguration) {
			t.Errorf("ppu %v: err = %v, want ErrConfiguration", ppu, err)
		}
		if _, err := NewRingSprite(RingSpec{Sides: 3, OuterRadius: 1}, ppu); !errors.Is(err, ErrConfiguration) {
			t.Errorf("ring ppu %v: err = %v, want ErrConfiguration", ppu, err)
		}
	}

	bad := &Mesh{Vertices: []Point{{}}, Triangles: []Triangle{{0, 0, 5}}, Colors: []Color{Red}}
	if _, err := NewSprite(bad, 1); !errors.Is(err, ErrInvalidMesh) {
		t.Errorf("invalid mesh: err = %v", err)
	}
}
