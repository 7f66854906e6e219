package stroke

import "math"

// Point represents a 2D point or vector (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two vectors.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the vector scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the negated vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length < 1e-12 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Style defines the stroke geometry.
type Style struct {
	HalfWidth  float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Mesh is the triangle output of an expansion.
type Mesh struct {
	Vertices  []Point
	Triangles [][3]int
}

// Expander converts polylines into stroke triangles.
type Expander struct {
	style Style

	// Tolerance for arc approximation in round caps and joins.
	tolerance float64

	out *Mesh
}

// NewExpander creates a new expander with the given style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: 0.05,
	}
}

// SetTolerance sets the arc approximation tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand strokes a polyline. A closed polyline also strokes the segment from
// its last point back to the first and joins at every vertex instead of
// adding caps. Polylines with fewer than two distinct points produce an
// empty mesh, except that a single point with round caps becomes a dot.
func (e *Expander) Expand(points []Point, closed bool) Mesh {
	e.out = &Mesh{}
	defer func() { e.out = nil }()

	hw := e.style.HalfWidth
	if !(hw > 0) {
		return Mesh{}
	}
	pts := dedupe(points, closed)

	switch {
	case len(pts) == 0:
		return Mesh{}
	case len(pts) == 1:
		if e.style.Cap == LineCapRound && !closed {
			e.fan(pts[0], Point{X: hw}, 2*math.Pi)
		}
		return *e.out
	case len(pts) == 2:
		closed = false
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	for i := 0; i < segs; i++ {
		p0, p1 := pts[i], pts[(i+1)%n]
		dir := p1.Sub(p0).Normalize()
		if !closed {
			if i == 0 && e.style.Cap == LineCapSquare {
				p0 = p0.Sub(dir.Scale(hw))
			}
			if i == segs-1 && e.style.Cap == LineCapSquare {
				p1 = p1.Add(dir.Scale(hw))
			}
		}
		e.segment(p0, p1, dir.Perp().Scale(hw))
	}

	// Joins at interior vertices (every vertex for closed polylines).
	first, last := 1, n-1
	if closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		e.join(cur, cur.Sub(prev).Normalize(), next.Sub(cur).Normalize())
	}

	if !closed && e.style.Cap == LineCapRound {
		startDir := pts[1].Sub(pts[0]).Normalize()
		endDir := pts[n-1].Sub(pts[n-2]).Normalize()
		// Sweep the half circle behind the start and ahead of the end.
		e.fan(pts[0], startDir.Perp().Scale(hw), math.Pi)
		e.fan(pts[n-1], endDir.Perp().Scale(-hw), math.Pi)
	}

	return *e.out
}

// segment emits the quad covering p0..p1 offset by norm on both sides.
func (e *Expander) segment(p0, p1, norm Point) {
	l0 := e.vertex(p0.Add(norm))
	r0 := e.vertex(p0.Sub(norm))
	l1 := e.vertex(p1.Add(norm))
	r1 := e.vertex(p1.Sub(norm))
	e.out.Triangles = append(e.out.Triangles, [3]int{r0, r1, l1}, [3]int{r0, l1, l0})
}

// join fills the outer gap at p between a segment arriving along dirIn and
// one leaving along dirOut.
func (e *Expander) join(p, dirIn, dirOut Point) {
	hw := e.style.HalfWidth
	cross := dirIn.Cross(dirOut)
	dot := dirIn.Dot(dirOut)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return
	}

	// Left turns open the gap on the right side.
	side := 1.0
	if cross > 0 {
		side = -1.0
	}
	a := dirIn.Perp().Scale(hw * side)
	b := dirOut.Perp().Scale(hw * side)

	switch e.style.Join {
	case LineJoinRound:
		e.fan(p, a, math.Atan2(a.Cross(b), a.Dot(b)))
		return
	case LineJoinMiter:
		mid := a.Add(b).Normalize()
		cosHalf := mid.Dot(a) / hw
		if cosHalf > 1e-9 && 1/cosHalf <= e.style.MiterLimit {
			tip := mid.Scale(hw / cosHalf)
			e.triangle(p, p.Add(a), p.Add(tip))
			e.triangle(p, p.Add(tip), p.Add(b))
			return
		}
	}
	e.triangle(p, p.Add(a), p.Add(b))
}

// fan emits a triangle fan around center starting at offset from and
// sweeping by angle radians (counter-clockwise when positive).
func (e *Expander) fan(center, from Point, angle float64) {
	steps := e.arcSteps(math.Abs(angle))
	step := angle / float64(steps)
	prev := from
	for i := 1; i <= steps; i++ {
		a := step * float64(i)
		cos, sin := math.Cos(a), math.Sin(a)
		next := Point{X: from.X*cos - from.Y*sin, Y: from.X*sin + from.Y*cos}
		e.triangle(center, center.Add(prev), center.Add(next))
		prev = next
	}
}

// arcSteps returns how many chords approximate an arc of the given sweep
// within tolerance.
func (e *Expander) arcSteps(sweep float64) int {
	hw := e.style.HalfWidth
	maxStep := math.Pi / 2
	if e.tolerance < hw {
		maxStep = math.Min(maxStep, 2*math.Acos(1-e.tolerance/hw))
	}
	n := int(math.Ceil(sweep / maxStep))
	if n < 1 {
		n = 1
	}
	return n
}

// triangle appends a triangle, reordering it to counter-clockwise.
func (e *Expander) triangle(a, b, c Point) {
	if b.Sub(a).Cross(c.Sub(a)) < 0 {
		b, c = c, b
	}
	ia, ib, ic := e.vertex(a), e.vertex(b), e.vertex(c)
	e.out.Triangles = append(e.out.Triangles, [3]int{ia, ib, ic})
}

func (e *Expander) vertex(p Point) int {
	e.out.Vertices = append(e.out.Vertices, p)
	return len(e.out.Vertices) - 1
}

// dedupe drops consecutive duplicates (and, for closed polylines, a final
// point equal to the first).
func dedupe(points []Point, closed bool) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}
