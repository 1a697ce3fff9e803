package transform

import (
	"math"

	"fader/internal/layer"
)

const (
	MinImageSize = 20.0
	MinScale     = 0.05
	HandleSize   = 12.0
	// StackOffset is the cascade step between successively added layers.
	StackOffset = 24.0
)

type Handle int

const (
	HandleNone Handle = iota
	HandleNW
	HandleNE
	HandleSW
	HandleSE
)

func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSW:
		return "sw"
	case HandleSE:
		return "se"
	default:
		return "none"
	}
}

type HandlePoint struct {
	Handle Handle
	X, Y   float64
}

// Handles lists the four corner grips of r.
func Handles(r layer.Rect) []HandlePoint {
	return []HandlePoint{
		{HandleNW, r.X, r.Y},
		{HandleNE, r.X + r.Width, r.Y},
		{HandleSW, r.X, r.Y + r.Height},
		{HandleSE, r.X + r.Width, r.Y + r.Height},
	}
}

// HandleAt returns the grip of l under the point, if any.
func HandleAt(l *layer.Layer, px, py, size float64) Handle {
	half := size / 2
	for _, h := range Handles(l.Rect) {
		if px >= h.X-half && px <= h.X+half && py >= h.Y-half && py <= h.Y+half {
			return h.Handle
		}
	}
	return HandleNone
}

// MoveTo places the layer's top-left corner. Layers may leave the canvas.
func MoveTo(l *layer.Layer, x, y float64) {
	l.X, l.Y = x, y
	l.SyncScale()
}

// MoveDrag keeps the pointer's offset into the layer fixed while dragging.
type MoveDrag struct {
	OffsetX, OffsetY float64
}

func BeginMove(l *layer.Layer, px, py float64) MoveDrag {
	return MoveDrag{OffsetX: px - l.X, OffsetY: py - l.Y}
}

func (d MoveDrag) Update(l *layer.Layer, px, py float64) {
	MoveTo(l, px-d.OffsetX, py-d.OffsetY)
}

// anchor returns the corner opposite h and the signs that turn pointer
// displacement from it into positive extents.
func anchor(r layer.Rect, h Handle) (ax, ay, sx, sy float64) {
	switch h {
	case HandleNW:
		return r.X + r.Width, r.Y + r.Height, -1, -1
	case HandleNE:
		return r.X, r.Y + r.Height, 1, -1
	case HandleSW:
		return r.X + r.Width, r.Y, -1, 1
	default:
		return r.X, r.Y, 1, 1
	}
}

// Resize drags handle h to the pointer while the opposite corner stays put.
// With lock the natural aspect ratio is kept by growing the short side.
func Resize(l *layer.Layer, h Handle, px, py float64, lock bool) {
	if h == HandleNone {
		return
	}
	ax, ay, sx, sy := anchor(l.Rect, h)
	w := math.Max(MinImageSize, (px-ax)*sx)
	ht := math.Max(MinImageSize, (py-ay)*sy)
	if lock {
		ratio := l.Ratio()
		if w/ht > ratio {
			ht = w / ratio
		} else {
			w = ht * ratio
		}
	}
	l.Width, l.Height = w, ht
	l.X, l.Y = ax, ay
	if sx < 0 {
		l.X = ax - w
	}
	if sy < 0 {
		l.Y = ay - ht
	}
	l.SyncScale()
}

// ScaleFromCenter sets the scale as a percentage of natural size and keeps
// the previous center fixed.
func ScaleFromCenter(l *layer.Layer, percent float64) {
	cx, cy := l.Center()
	scale := math.Max(MinScale, percent/100)
	l.Width = float64(l.NaturalWidth) * scale
	l.Height = float64(l.NaturalHeight) * scale
	l.X = cx - l.Width/2
	l.Y = cy - l.Height/2
	l.SyncScale()
}

// SetSize applies a typed width and/or height (nil leaves a side alone).
// With lock the other side follows the natural ratio. Sides are floored at
// one pixel and the top-left corner stays put.
func SetSize(l *layer.Layer, width, height *float64, lock bool) {
	ratio := l.Ratio()
	w, h := l.Width, l.Height
	switch {
	case width != nil && lock:
		w, h = *width, *width/ratio
	case height != nil && lock:
		w, h = *height*ratio, *height
	default:
		if width != nil {
			w = *width
		}
		if height != nil {
			h = *height
		}
	}
	l.Width = math.Max(1, w)
	l.Height = math.Max(1, h)
	l.SyncScale()
}

// Fit scales the layer to fit inside the canvas shrunk by inset pixels and
// centers it, then shifts it by half the inset so cascaded layers stay
// visible.
func Fit(l *layer.Layer, c layer.Canvas, inset float64) {
	availW := math.Max(1, float64(c.Width)-inset)
	availH := math.Max(1, float64(c.Height)-inset)
	scale := math.Min(availW/float64(l.NaturalWidth), availH/float64(l.NaturalHeight))
	scale = math.Max(MinScale, scale)
	l.Width = float64(l.NaturalWidth) * scale
	l.Height = float64(l.NaturalHeight) * scale
	Center(l, c)
	l.X += inset / 2
	l.Y += inset / 2
}

func Center(l *layer.Layer, c layer.Canvas) {
	l.X = (float64(c.Width) - l.Width) / 2
	l.Y = (float64(c.Height) - l.Height) / 2
	l.SyncScale()
}

// CascadeInset is the fit inset for the n-th added layer.
func CascadeInset(n int) float64 {
	return StackOffset * float64(n%8)
}
