// Package raster draws shape meshes into images for previews and golden
// tests. Triangles are filled with an anti-aliasing scanline rasterizer;
// each triangle takes the color of its first vertex.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/shapes"
)

// ErrInvalidSize is returned when the output image would be empty.
var ErrInvalidSize = errors.New("raster: width and height must be positive")

// Options controls how a mesh is placed on the canvas.
type Options struct {
	// Width and Height of the output image in pixels.
	Width, Height int

	// Padding is the margin in pixels kept free on every side.
	Padding int

	// Background fills the canvas before drawing. The zero value leaves it
	// transparent.
	Background shapes.Color
}

// Rasterize draws m scaled uniformly to fit the canvas, centered, with +Y
// pointing up.
func Rasterize(m *shapes.Mesh, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if m == nil {
		return nil, fmt.Errorf("raster: %w: nil mesh", shapes.ErrInvalidMesh)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background.A != 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if m.IsEmpty() {
		return img, nil
	}

	xf := fit(m.Bounds(), opts)
	r := vector.NewRasterizer(opts.Width, opts.Height)
	for _, t := range m.Triangles {
		a, b, c := xf.apply(m.Vertices[t[0]]), xf.apply(m.Vertices[t[1]]), xf.apply(m.Vertices[t[2]])
		r.Reset(opts.Width, opts.Height)
		r.MoveTo(a[0], a[1])
		r.LineTo(b[0], b[1])
		r.LineTo(c[0], c[1])
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(m.Colors[t[0]]), image.Point{})
	}

	shapes.Logger().Debug("raster: mesh drawn",
		slog.Int("triangles", m.TriangleCount()),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height))
	return img, nil
}

// transform maps mesh coordinates to pixel coordinates.
type transform struct {
	scale            float64
	cx, cy           float64 // mesh-space center
	originX, originY float64 // pixel-space center
}

func (t transform) apply(p shapes.Point) [2]float32 {
	return [2]float32{
		float32(t.originX + (p.X-t.cx)*t.scale),
		float32(t.originY - (p.Y-t.cy)*t.scale),
	}
}

// fit returns the transform placing bounds inside the padded canvas.
func fit(bounds shapes.Rect, opts Options) transform {
	availW := float64(opts.Width - 2*opts.Padding)
	availH := float64(opts.Height - 2*opts.Padding)
	if availW <= 0 || availH <= 0 {
		availW, availH = float64(opts.Width), float64(opts.Height)
	}

	scale := math.Inf(1)
	if w := bounds.Width(); w > 0 {
		scale = availW / w
	}
	if h := bounds.Height(); h > 0 {
		scale = math.Min(scale, availH/h)
	}
	if math.IsInf(scale, 1) {
		// A single point.
		scale = 1
	}

	c := bounds.Center()
	return transform{
		scale:   scale,
		cx:      c.X,
		cy:      c.Y,
		originX: float64(opts.Width) / 2,
		originY: float64(opts.Height) / 2,
	}
}

// Coverage returns the fraction of pixels in img whose alpha is non-zero.
// It is a cheap summary used by previews and tests.
func Coverage(img image.Image) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	covered := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				covered++
			}
		}
	}
	return float64(covered) / float64(b.Dx()*b.Dy())
}

// At is a convenience returning the non-premultiplied color of a pixel.
func At(img *image.RGBA, x, y int) shapes.Color {
	return shapes.FromColor(img.At(x, y))
}
