package gpu

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/shapes"
)

// Buffers holds the upload-ready bytes of one mesh.
type Buffers struct {
	// Vertices is interleaved position and color data, VertexStride bytes
	// per vertex, little-endian.
	Vertices []byte

	// Indices is the index buffer in IndexFormat, little-endian.
	Indices []byte

	// IndexFormat is Uint16 when every index fits, Uint32 otherwise.
	IndexFormat gputypes.IndexFormat

	// VertexCount and IndexCount are the element counts for draw calls.
	VertexCount uint32
	IndexCount  uint32
}

// Pack validates m and encodes it into GPU buffers.
func Pack(m *shapes.Mesh) (*Buffers, error) {
	return packInto(m, &Buffers{})
}

// PackInto is like Pack but reuses the byte slices of dst when they are
// large enough, for callers that rebuild the same mesh every frame.
func PackInto(dst *Buffers, m *shapes.Mesh) error {
	_, err := packInto(m, dst)
	return err
}

func packInto(m *shapes.Mesh, dst *Buffers) (*Buffers, error) {
	if m == nil {
		return nil, fmt.Errorf("gpu: pack: %w: nil mesh", shapes.ErrInvalidMesh)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("gpu: pack: %w", err)
	}
	if uint64(len(m.Vertices)) > math.MaxUint32 {
		return nil, fmt.Errorf("gpu: pack: %w: %d vertices", shapes.ErrIndexOverflow, len(m.Vertices))
	}

	dst.Vertices = grow(dst.Vertices, len(m.Vertices)*VertexStride)
	for i, p := range m.Vertices {
		writeVertex(dst.Vertices[i*VertexStride:], float32(p.X), float32(p.Y), m.Colors[i].Floats())
	}

	n := len(m.Triangles) * 3
	if len(m.Vertices) <= math.MaxUint16+1 {
		dst.IndexFormat = gputypes.IndexFormatUint16
		dst.Indices = grow(dst.Indices, n*2)
		off := 0
		for _, t := range m.Triangles {
			for _, idx := range t {
				binary.LittleEndian.PutUint16(dst.Indices[off:], uint16(idx))
				off += 2
			}
		}
	} else {
		dst.IndexFormat = gputypes.IndexFormatUint32
		dst.Indices = grow(dst.Indices, n*4)
		off := 0
		for _, t := range m.Triangles {
			for _, idx := range t {
				binary.LittleEndian.PutUint32(dst.Indices[off:], idx)
				off += 4
			}
		}
	}
	dst.VertexCount = uint32(len(m.Vertices))
	dst.IndexCount = uint32(n)

	shapes.Logger().Debug("gpu: mesh packed",
		slog.Int("vertex_bytes", len(dst.Vertices)),
		slog.Int("index_bytes", len(dst.Indices)),
		slog.Bool("uint32_indices", dst.IndexFormat == gputypes.IndexFormatUint32))
	return dst, nil
}

// grow returns buf resliced to n bytes, reallocating only when it is too small.
func grow(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// writeVertex writes a single vertex into the buffer.
// Layout: position (vec2<f32>) + color (vec4<f32>) = 24 bytes.
func writeVertex(buf []byte, px, py float32, color [4]float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(px))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(py))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(color[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(color[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(color[2]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(color[3]))
}
