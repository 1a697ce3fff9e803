package layer

import (
	"image"

	"github.com/google/uuid"

	"fader/internal/brush"
	"fader/internal/fade"
)

// Rect is an axis-aligned rectangle in canvas space.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Layer is one placed image. Geometry is in canvas space; the brush mask
// lives in the image's natural space and is unaffected by transforms.
type Layer struct {
	ID    string
	Name  string
	Image image.Image

	NaturalWidth  int
	NaturalHeight int

	Rect
	Scale float64

	Fade fade.Config
	Mask *brush.Mask
}

// New creates a layer at natural size at the canvas origin.
func New(img image.Image, name string) *Layer {
	b := img.Bounds()
	l := &Layer{
		ID:            uuid.NewString(),
		Name:          name,
		Image:         img,
		NaturalWidth:  b.Dx(),
		NaturalHeight: b.Dy(),
		Fade:          fade.DefaultConfig(),
	}
	l.Width = float64(l.NaturalWidth)
	l.Height = float64(l.NaturalHeight)
	l.Scale = 1
	return l
}

// Ratio is the natural aspect ratio, width over height.
func (l *Layer) Ratio() float64 {
	if l.NaturalHeight == 0 {
		return 1
	}
	return float64(l.NaturalWidth) / float64(l.NaturalHeight)
}

// SyncScale re-derives Scale from the current width.
func (l *Layer) SyncScale() {
	if l.NaturalWidth > 0 {
		l.Scale = l.Width / float64(l.NaturalWidth)
	}
}

func (l *Layer) Placement() brush.Placement {
	return brush.Placement{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

// PaintBrush applies one brush stroke at a canvas point using the layer's
// brush settings, allocating the mask on first use.
func (l *Layer) PaintBrush(cx, cy float64, erase bool) bool {
	p := l.Placement()
	if _, _, ok := brush.ToLocal(p, cx, cy); !ok {
		return false
	}
	if l.Mask == nil {
		l.Mask = brush.NewMask(l.NaturalWidth, l.NaturalHeight)
	}
	return brush.Paint(l.Mask, p, cx, cy, brush.Stroke{
		Radius:   l.Fade.BrushSize,
		Strength: l.Fade.BrushStrength,
		Shape:    l.Fade.BrushShape,
		Erase:    erase,
	})
}

func (l *Layer) ClearBrush() {
	if l.Mask != nil {
		l.Mask.Clear()
	}
}

// HasBrushMask reports whether the mask holds any coverage.
func (l *Layer) HasBrushMask() bool {
	return l.Mask != nil && !l.Mask.Empty()
}

// Clone deep-copies geometry, fade settings and the brush mask. The decoded
// image is immutable and shared. The copy gets a fresh ID.
func (l *Layer) Clone() *Layer {
	c := *l
	c.ID = uuid.NewString()
	c.Name = l.Name + " copy"
	if l.Mask != nil {
		c.Mask = l.Mask.Clone()
	}
	return &c
}
