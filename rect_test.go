package shapes

import "testing"

func TestRect(t *testing.T) {
	r := NewRect(Pt(4, 3), Pt(0, 1))
	if r.Min != Pt(0, 1) || r.Max != Pt(4, 3) {
		t.Fatalf("NewRect did not normalize: %v", r)
	}
	if r.Width() != 4 || r.Height() != 2 {
		t.Errorf("size = %vx%v, want 4x2", r.Width(), r.Height())
	}
	if r.Center() != Pt(2, 2) {
		t.Errorf("Center() = %v, want (2,2)", r.Center())
	}
	if !r.Contains(Pt(4, 3)) || r.Contains(Pt(5, 2)) {
		t.Error("Contains() should include edges and exclude outside points")
	}
	if XYWH(0, 1, 4, 2) != r {
		t.Errorf("XYWH = %v, want %v", XYWH(0, 1, 4, 2), r)
	}
}

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Rect
		want      Rect
		wantEmpty bool
	}{
		{"overlap", XYWH(0, 0, 4, 4), XYWH(2, 2, 4, 4), XYWH(2, 2, 2, 2), false},
		{"contained", XYWH(0, 0, 4, 4), XYWH(1, 1, 1, 1), XYWH(1, 1, 1, 1), false},
		{"disjoint", XYWH(0, 0, 1, 1), XYWH(5, 5, 1, 1), Rect{Min: Pt(5, 5), Max: Pt(5, 5)}, true},
		{"touching", XYWH(0, 0, 1, 1), XYWH(1, 0, 1, 1), Rect{Min: Pt(1, 0), Max: Pt(1, 1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
			if got.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got.Empty(), tt.wantEmpty)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	got := XYWH(0, 0, 1, 1).Union(XYWH(-2, 3, 1, 1))
	want := Rect{Min: Pt(-2, 0), Max: Pt(1, 4)}
	if got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
}
