// Package scene reads YAML documents that describe a set of named shapes
// and builds their meshes.
//
// Example document:
//
//	pixels_per_unit: 128
//	shapes:
//	  - name: gauge
//	    kind: ring
//	    color: "#ff8800"
//	    ring: {start_deg: 0, end_deg: 270, sides: 36, radius: 1, mask_radius: 0.8}
//	  - name: track
//	    kind: line
//	    line: {from: [0, 0], to: [4, 0]}
//	    stroke: {half_thickness: 0.05, cap: round}
//
// Colors must be quoted, since an unquoted # starts a YAML comment.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shapes"
)

// DefaultPixelsPerUnit is used when a document does not set pixels_per_unit.
const DefaultPixelsPerUnit = 100

// Shape kinds.
const (
	KindRing      = "ring"
	KindEllipse   = "ellipse"
	KindRectangle = "rectangle"
	KindLine      = "line"
	KindSpline    = "spline"
	KindTrail     = "trail"
)

// ErrInvalidDocument is wrapped by every validation error of a document.
var ErrInvalidDocument = errors.New("scene: invalid document")

// Document is the root of a scene file.
type Document struct {
	PixelsPerUnit float64 `yaml:"pixels_per_unit,omitempty"`
	Shapes        []Shape `yaml:"shapes"`
}

// Shape is one named entry. Kind selects which of the parameter blocks
// is used; exactly that block must be present.
type Shape struct {
	Name  string        `yaml:"name"`
	Kind  string        `yaml:"kind"`
	Color *shapes.Color `yaml:"color,omitempty"`

	Ring      *Ring      `yaml:"ring,omitempty"`
	Ellipse   *Ellipse   `yaml:"ellipse,omitempty"`
	Rectangle *Rectangle `yaml:"rectangle,omitempty"`
	Line      *Line      `yaml:"line,omitempty"`
	Spline    *Spline    `yaml:"spline,omitempty"`
	Trail     *Trail     `yaml:"trail,omitempty"`

	// Stroke applies to line and spline shapes.
	Stroke *Stroke `yaml:"stroke,omitempty"`
}

// Ring parameters. Angles are in degrees.
type Ring struct {
	StartDeg   float64 `yaml:"start_deg"`
	EndDeg     float64 `yaml:"end_deg"`
	Sides      int     `yaml:"sides"`
	Radius     float64 `yaml:"radius"`
	MaskRadius float64 `yaml:"mask_radius,omitempty"`
}

// Ellipse parameters.
type Ellipse struct {
	RadiusX float64 `yaml:"radius_x"`
	RadiusY float64 `yaml:"radius_y"`
	MaskX   float64 `yaml:"mask_x,omitempty"`
	MaskY   float64 `yaml:"mask_y,omitempty"`
	Step    float64 `yaml:"step,omitempty"`
}

// Rectangle parameters.
type Rectangle struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MaskWidth  float64 `yaml:"mask_width,omitempty"`
	MaskHeight float64 `yaml:"mask_height,omitempty"`
}

// Line parameters.
type Line struct {
	From Vec `yaml:"from"`
	To   Vec `yaml:"to"`
}

// Spline parameters. See shapes.SplineSegment for the meaning of p0..p2.
type Spline struct {
	Segments []Segment `yaml:"segments"`
}

// Segment is one spline anchor with its outgoing control points.
type Segment struct {
	P0 Vec `yaml:"p0"`
	P1 Vec `yaml:"p1,omitempty"`
	P2 Vec `yaml:"p2,omitempty"`
}

// Trail parameters: the recorded points are replayed through a Trail.
type Trail struct {
	Points         []Vec   `yaml:"points"`
	Width          float64 `yaml:"width"`
	AppendDistance float64 `yaml:"append_distance,omitempty"`
}

// Stroke is the YAML form of shapes.Stroke. Unset fields keep the
// shapes.DefaultStroke values.
type Stroke struct {
	HalfThickness float64 `yaml:"half_thickness,omitempty"`
	Cap           string  `yaml:"cap,omitempty"`
	Join          string  `yaml:"join,omitempty"`
	MiterLimit    float64 `yaml:"miter_limit,omitempty"`
	Tolerance     float64 `yaml:"tolerance,omitempty"`
}

// Vec is a point written as a two-element sequence: [x, y].
type Vec struct {
	X, Y float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec) UnmarshalYAML(n *yaml.Node) error {
	var xy []float64
	if err := n.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point needs 2 coordinates, got %d", n.Line, len(xy))
	}
	v.X, v.Y = xy[0], xy[1]
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, c := range []float64{v.X, v.Y} {
		var item yaml.Node
		if err := item.Encode(c); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &item)
	}
	return n, nil
}

func (v Vec) point() shapes.Point { return shapes.Pt(v.X, v.Y) }

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading scene from %s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("scene: marshal: %w", err)
	}
	return data, nil
}

// SaveTo writes the document to path, creating parent directories.
func (d *Document) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}

// Validate checks the structure of the document: shape names are set,
// unique and usable as file names, and every shape has the parameter
// block its kind needs. Numeric ranges are checked when building.
func (d *Document) Validate() error {
	if d.PixelsPerUnit < 0 {
		return fmt.Errorf("%w: pixels_per_unit must not be negative", ErrInvalidDocument)
	}
	seen := make(map[string]bool, len(d.Shapes))
	for i, s := range d.Shapes {
		if s.Name == "" {
			return fmt.Errorf("%w: shape %d has no name", ErrInvalidDocument, i)
		}
		if s.Name != filepath.Base(s.Name) || s.Name == "." || s.Name == ".." {
			return fmt.Errorf("%w: shape %q: name must not contain path separators", ErrInvalidDocument, s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate shape name %q", ErrInvalidDocument, s.Name)
		}
		seen[s.Name] = true

		if err := s.checkBlock(); err != nil {
			return fmt.Errorf("%w: shape %q: %w", ErrInvalidDocument, s.Name, err)
		}
	}
	return nil
}

func (s *Shape) checkBlock() error {
	var present bool
	switch s.Kind {
	case KindRing:
		present = s.Ring != nil
	case KindEllipse:
		present = s.Ellipse != nil
	case KindRectangle:
		present = s.Rectangle != nil
	case KindLine:
		present = s.Line != nil
	case KindSpline:
		present = s.Spline != nil
	case KindTrail:
		present = s.Trail != nil
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	if !present {
		return fmt.Errorf("kind %s needs a %s block", s.Kind, s.Kind)
	}
	return nil
}

// ppu returns the effective pixels per unit.
func (d *Document) ppu() float64 {
	if d.PixelsPerUnit > 0 {
		return d.PixelsPerUnit
	}
	return DefaultPixelsPerUnit
}
