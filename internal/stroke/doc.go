// Package stroke expands polylines into triangle meshes of constant width.
//
// Each segment becomes a quad offset by half the stroke width on both sides
// of the centerline. The gaps that open on the outer side of a turn are
// filled with join geometry, and the ends of open polylines get caps.
//
// # Line Caps
//
//   - LineCapButt: flat cap ending exactly at the endpoint
//   - LineCapRound: semicircular fan with radius = half width
//   - LineCapSquare: the end segment is extended by half the width
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, falls back to bevel past the miter limit
//   - LineJoinRound: circular fan at the corner
//   - LineJoinBevel: a single triangle across the corner
//
// Segments overlap on the inner side of a turn. That is harmless for the
// solid fills these meshes carry.
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Style{
//	    HalfWidth:  0.5,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 4,
//	})
//	m := e.Expand([]stroke.Point{{0, 0}, {10, 0}, {10, 10}}, false)
//
// Every emitted triangle is counter-clockwise in a Y-up frame.
package stroke
