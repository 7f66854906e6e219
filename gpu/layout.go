// Package gpu prepares shape meshes for upload to a GPU vertex pipeline.
//
// It does not own a device. Callers create buffers with their own WebGPU
// backend, fill them with the bytes from [Pack] and build a render pipeline
// from [VertexLayout] and [Primitive].
//
// The vertex format matches this WGSL input:
//
//	struct VertexInput {
//	    @location(0) position: vec2<f32>,
//	    @location(1) color: vec4<f32>,
//	}
package gpu

import "github.com/gogpu/gputypes"

// VertexStride is the byte stride per vertex.
// Layout: position (vec2<f32>) + color (vec4<f32>) = 24 bytes.
const VertexStride = 24

const (
	positionOffset = 0
	colorOffset    = 8
)

// VertexLayout returns the vertex buffer layout for packed shape meshes.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: positionOffset, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x4, Offset: colorOffset, ShaderLocation: 1},    // color
		},
	}
}

// Primitive returns the primitive state for drawing shape meshes.
// Culling is disabled: ring meshes already carry both windings and the
// other shapes are meant to be visible from either side.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}
