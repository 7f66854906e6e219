package shapes

import "slices"

// Trail records the positions of a moving object and builds a textured
// ribbon mesh along them. Points closer than AppendDistance to the last
// recorded point are ignored.
//
// A Trail is not safe for concurrent use.
type Trail struct {
	points []Point

	appendSqrDistance float64
	width             float64

	// MaxPoints, when positive, drops the oldest points so the trail never
	// holds more than MaxPoints.
	MaxPoints int

	// Color fills every vertex of the ribbon. Default: White
	Color Color
}

// NewTrail creates a trail that records a point every appendDistance units
// and builds a ribbon of the given width.
func NewTrail(appendDistance, width float64) *Trail {
	return &Trail{
		appendSqrDistance: appendDistance * appendDistance,
		width:             width,
		Color:             White,
	}
}

// Push records p if it is at least the append distance away from the last
// recorded point. The first point is always recorded. It reports whether p
// was appended.
func (t *Trail) Push(p Point) bool {
	if n := len(t.points); n > 0 && p.Sub(t.points[n-1]).LengthSquared() < t.appendSqrDistance {
		return false
	}
	t.points = append(t.points, p)
	if t.MaxPoints > 0 && len(t.points) > t.MaxPoints {
		drop := len(t.points) - t.MaxPoints
		t.points = append(t.points[:0], t.points[drop:]...)
	}
	return true
}

// Points returns a copy of the recorded points, oldest first.
func (t *Trail) Points() []Point {
	return slices.Clone(t.points)
}

// Len returns the number of recorded points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Reset forgets every recorded point.
func (t *Trail) Reset() {
	t.points = t.points[:0]
}

type trailSection struct {
	left, right Point
}

// sections computes the ribbon cross-section at each recorded point. The
// direction is a one-sided difference at the ends and a central difference
// elsewhere; the ribbon extends width/2 to each side of it.
func (t *Trail) sections() []trailSection {
	n := len(t.points)
	out := make([]trailSection, n)
	for i := range t.points {
		var dir Point
		switch i {
		case 0:
			dir = t.points[1].Sub(t.points[0])
		case n - 1:
			dir = t.points[i].Sub(t.points[i-1])
		default:
			dir = t.points[i+1].Sub(t.points[i-1])
		}
		side := dir.Normalize().PerpCW().Mul(t.width / 2)
		out[i] = trailSection{
			left:  t.points[i].Sub(side),
			right: t.points[i].Add(side),
		}
	}
	return out
}

// Mesh builds the ribbon: four vertices per segment with V running from 0
// at the oldest point to 1 at the newest, and two triangles per segment.
// It returns ErrTooFewPoints with fewer than two recorded points.
func (t *Trail) Mesh() (*Mesh, error) {
	if len(t.points) < 2 {
		return nil, ErrTooFewPoints
	}
	secs := t.sections()
	segments := len(t.points) - 1
	step := 1 / float64(segments)

	m := NewMesh(segments*4, segments*2)
	m.UVs = make([]Point, 0, segments*4)
	for i := 0; i < segments; i++ {
		v0, v1 := float64(i)*step, float64(i+1)*step
		m.AddVertex(secs[i].left, t.Color)
		m.AddVertex(secs[i].right, t.Color)
		m.AddVertex(secs[i+1].left, t.Color)
		m.AddVertex(secs[i+1].right, t.Color)
		m.UVs = append(m.UVs, Pt(0, v0), Pt(1, v0), Pt(0, v1), Pt(1, v1))

		base := uint32(i * 4)
		m.AddTriangle(base+1, base+0, base+2)
		m.AddTriangle(base+2, base+3, base+1)
	}
	return m, nil
}
