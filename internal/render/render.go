package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"fader/internal/fade"
	"fader/internal/layer"
)

// Options controls one render pass. The zero value is an export pass for
// an alpha-capable format.
type Options struct {
	Format Format

	// Preview draws the interactive overlay for the active layer.
	Preview  bool
	ActiveID string
	Label    bool

	// Cursor is the pointer in canvas space, used for the brush outline.
	ShowCursor       bool
	CursorX, CursorY float64
}

// Render composites the layers bottom to top onto dc. Layer geometry is in
// canvas space and is scaled to the surface, so the same call serves the
// live view and exports at any resolution.
func Render(dc *gg.Context, c layer.Canvas, layers []*layer.Layer, opts Options) {
	dc.ResetClip()
	dc.Identity()
	dc.SetColor(color.Transparent)
	dc.Clear()
	if !c.Transparent || !opts.Format.HasAlpha() {
		dc.SetColor(c.Background)
		dc.Clear()
	}
	if c.Width <= 0 || c.Height <= 0 {
		return
	}
	sx := float64(dc.Width()) / float64(c.Width)
	sy := float64(dc.Height()) / float64(c.Height)

	var active *layer.Layer
	for _, l := range layers {
		if l == nil || l.Image == nil {
			continue
		}
		drawLayer(dc, l, surfaceRect(l.Rect, sx, sy))
		if l.ID == opts.ActiveID {
			active = l
		}
	}

	if opts.Preview && active != nil {
		drawOverlay(dc, active, sx, sy, opts)
	}
}

// RenderForExport renders the document onto a new surface of the canvas
// size times scale, without the interactive overlay.
func RenderForExport(c layer.Canvas, layers []*layer.Layer, format Format, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := max(1, int(math.Round(float64(c.Width)*scale)))
	h := max(1, int(math.Round(float64(c.Height)*scale)))
	dc := gg.NewContext(w, h)
	Render(dc, c, layers, Options{Format: format})
	return dc.Image().(*image.RGBA)
}

func surfaceRect(r layer.Rect, sx, sy float64) layer.Rect {
	return layer.Rect{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}

func drawLayer(dc *gg.Context, l *layer.Layer, r layer.Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	cfg := l.Fade
	switch {
	case cfg.Type == fade.TypeBrush:
		drawBrushLayer(dc, l, r)
	case fade.Active(cfg) && cfg.Mode == fade.ModeColor:
		drawImage(dc, l.Image, r)
		tint, ok := fade.BuildTint(cfg, r.Width, r.Height)
		if !ok {
			return
		}
		tint = tint.Translate(r.X, r.Y)
		dc.SetFillStyle(tint.Pattern(cfg.Color))
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.Fill()
	case fade.Active(cfg):
		win := window(dc, r)
		if win.Empty() {
			return
		}
		ramp, ok := fade.Build(cfg, r.Width, r.Height)
		if !ok {
			drawImage(dc, l.Image, r)
			return
		}
		local := localRect(r, win)
		off := gg.NewContext(win.Dx(), win.Dy())
		if err := off.SetMask(ramp.Translate(local.X, local.Y).Rasterize(win.Dx(), win.Dy())); err != nil {
			drawImage(dc, l.Image, r)
			return
		}
		drawImage(off, l.Image, local)
		composite(dc, off, win)
	default:
		drawImage(dc, l.Image, r)
	}
}

func drawBrushLayer(dc *gg.Context, l *layer.Layer, r layer.Rect) {
	if !l.HasBrushMask() {
		drawImage(dc, l.Image, r)
		return
	}
	win := window(dc, r)
	if win.Empty() {
		return
	}
	local := localRect(r, win)
	mask := l.Mask.Window(local.X, local.Y, local.Width, local.Height, win.Dx(), win.Dy())

	if l.Fade.Mode == fade.ModeColor {
		drawImage(dc, l.Image, r)
		tint := gg.NewContext(win.Dx(), win.Dy())
		if err := tint.SetMask(mask); err != nil {
			return
		}
		tint.SetColor(l.Fade.Color)
		tint.DrawRectangle(0, 0, float64(win.Dx()), float64(win.Dy()))
		tint.Fill()
		composite(dc, tint, win)
		return
	}

	off := gg.NewContext(win.Dx(), win.Dy())
	if err := off.SetMask(mask); err != nil {
		drawImage(dc, l.Image, r)
		return
	}
	off.InvertMask()
	drawImage(off, l.Image, local)
	composite(dc, off, win)
}

// window is the whole-pixel part of r that lands on the surface. Offscreen
// buffers never grow past it, however far a layer extends off-canvas.
func window(dc *gg.Context, r layer.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	).Intersect(image.Rect(0, 0, dc.Width(), dc.Height()))
}

// localRect is r relative to the window's origin.
func localRect(r layer.Rect, win image.Rectangle) layer.Rect {
	return layer.Rect{X: r.X - float64(win.Min.X), Y: r.Y - float64(win.Min.Y), Width: r.Width, Height: r.Height}
}

// drawImage draws img stretched over r. Any mask set on dc applies.
func drawImage(dc *gg.Context, img image.Image, r layer.Rect) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	dc.Push()
	dc.Translate(r.X, r.Y)
	dc.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	dc.Pop()
}

// composite draws an offscreen buffer at its window on the surface.
func composite(dc *gg.Context, off *gg.Context, win image.Rectangle) {
	dc.DrawImage(off.Image(), win.Min.X, win.Min.Y)
}
