package fade

import "image/color"

type Type int

const (
	TypeNone Type = iota
	TypeLinear
	TypeRadial
	TypeBrush
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeLinear:
		return "linear"
	case TypeRadial:
		return "radial"
	case TypeBrush:
		return "brush"
	default:
		return "unknown"
	}
}

type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirTop
	DirBottom
	DirBothX
	DirBothY
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirBothX:
		return "both-x"
	case DirBothY:
		return "both-y"
	default:
		return "unknown"
	}
}

type Mode int

const (
	ModeTransparent Mode = iota
	ModeColor
)

func (m Mode) String() string {
	if m == ModeColor {
		return "color"
	}
	return "transparent"
}

type Shape int

const (
	ShapeRound Shape = iota
	ShapeSquare
)

func (s Shape) String() string {
	if s == ShapeSquare {
		return "square"
	}
	return "round"
}

// Config describes how a layer's edges are faded. Size and Softness are
// percentages; Size is relative to the layer's own width/height, or to its
// diagonal for radial fades.
type Config struct {
	Type      Type
	Direction Direction
	Mode      Mode
	Color     color.RGBA
	Size      float64
	Softness  float64

	BrushSize     float64 // radius in canvas pixels
	BrushStrength float64
	BrushShape    Shape
}

// MaxBrushSize bounds the brush radius in canvas pixels.
const MaxBrushSize = 1000

func DefaultConfig() Config {
	return Config{
		Type:          TypeLinear,
		Direction:     DirLeft,
		Mode:          ModeTransparent,
		Color:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Size:          40,
		Softness:      40,
		BrushSize:     40,
		BrushStrength: 60,
		BrushShape:    ShapeRound,
	}
}

// Normalize clamps every numeric field into its valid range and forces the
// color opaque.
func (c Config) Normalize() Config {
	c.Size = clamp(c.Size, 0, 100)
	c.Softness = clamp(c.Softness, 0, 100)
	c.BrushStrength = clamp(c.BrushStrength, 0, 100)
	c.BrushSize = clamp(c.BrushSize, 1, MaxBrushSize)
	if c.Type < TypeNone || c.Type > TypeBrush {
		c.Type = TypeNone
	}
	if c.Direction < DirLeft || c.Direction > DirBothY {
		c.Direction = DirLeft
	}
	c.Color.A = 255
	return c
}

// Active reports whether a gradient or brush effect applies at all.
func Active(c Config) bool {
	switch c.Type {
	case TypeLinear, TypeRadial:
		return c.Size > 0
	case TypeBrush:
		return true
	default:
		return false
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
