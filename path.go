package shapes

import ipath "github.com/gogpu/shapes/internal/path"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path to be stroked into a mesh.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Scaled returns a copy of the path with every point multiplied by s.
func (p *Path) Scaled(s float64) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X*s, e.Point.Y*s)
		case LineTo:
			result.LineTo(e.Point.X*s, e.Point.Y*s)
		case QuadTo:
			result.QuadraticTo(e.Control.X*s, e.Control.Y*s, e.Point.X*s, e.Point.Y*s)
		case CubicTo:
			result.CubicTo(e.Control1.X*s, e.Control1.Y*s, e.Control2.X*s, e.Control2.Y*s, e.Point.X*s, e.Point.Y*s)
		case Close:
			result.Close()
		}
	}
	return result
}

// points returns every point referenced by the path, control points included.
func (p *Path) points() []Point {
	var pts []Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Control, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return pts
}

// internal converts the path to the flattener's element types.
func (p *Path) internal() []ipath.PathElement {
	out := make([]ipath.PathElement, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point(e.Point)})
		case LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point(e.Point)})
		case QuadTo:
			out = append(out, ipath.QuadTo{Control: ipath.Point(e.Control), Point: ipath.Point(e.Point)})
		case CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: ipath.Point(e.Control1),
				Control2: ipath.Point(e.Control2),
				Point:    ipath.Point(e.Point),
			})
		case Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}
