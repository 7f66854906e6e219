// Package shapes builds small 2D shape meshes for sprite renderers.
//
// # Overview
//
// Each shape is described by a plain spec value and tessellated into a
// [Mesh]: a vertex slice, a slice of index triples and one fill color per
// vertex. Meshes are plain data; uploading them is up to the caller.
//
// The available shapes are:
//   - [RingSpec]: an annular sector, emitted double-sided
//   - [EllipseSpec]: an ellipse with an optional elliptical hole
//   - [RectangleSpec]: a rectangle with an optional centered hole
//   - [LineSpec] and [SplineSpec]: stroked lines and cubic Bezier chains
//   - [Trail]: a ribbon following the recorded positions of a moving object
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	m, err := shapes.Tessellate(shapes.RingSpec{
//	    StartAngleDeg:   0,
//	    EndAngleDeg:     270,
//	    Sides:           36,
//	    OuterRadius:     1,
//	    InnerMaskRadius: 0.8,
//	    Color:           shapes.Hex("#ff8800"),
//	})
//
// # Rebuilding on change
//
// A [Builder] wraps any [Source] and rebuilds its mesh only after Set or
// Invalidate, notifying observers registered with OnChange.
//
// # Coordinate System
//
// Meshes use a Y-up frame. Ring angles are in degrees, 0 points to +Y and
// angles increase clockwise. Single-sided meshes are wound
// counter-clockwise.
//
// # Sub-packages
//
//   - gpu: interleaved vertex and index buffers with a matching vertex layout
//   - raster: PNG previews of meshes
//   - scene: YAML documents describing a set of named shapes
package shapes
