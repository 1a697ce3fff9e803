package brush

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"fader/internal/fade"
)

// Mask is a paintable alpha raster in a layer's natural pixel space. A
// mask value of 255 means the pixel is fully affected by the brush effect
// (erased in transparent mode, tinted in color mode).
type Mask struct {
	alpha *image.Alpha
}

func NewMask(width, height int) *Mask {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Mask{alpha: image.NewAlpha(image.Rect(0, 0, width, height))}
}

func (m *Mask) Width() int  { return m.alpha.Rect.Dx() }
func (m *Mask) Height() int { return m.alpha.Rect.Dy() }

// Alpha exposes the raster for reading. Callers must not modify it.
func (m *Mask) Alpha() *image.Alpha { return m.alpha }

func (m *Mask) At(x, y int) uint8 { return m.alpha.AlphaAt(x, y).A }

func (m *Mask) Clone() *Mask {
	pix := make([]uint8, len(m.alpha.Pix))
	copy(pix, m.alpha.Pix)
	return &Mask{alpha: &image.Alpha{Pix: pix, Stride: m.alpha.Stride, Rect: m.alpha.Rect}}
}

func (m *Mask) Clear() {
	clear(m.alpha.Pix)
}

func (m *Mask) Empty() bool {
	for _, a := range m.alpha.Pix {
		if a != 0 {
			return false
		}
	}
	return true
}

// Scaled resamples the whole mask to w×h.
func (m *Mask) Scaled(w, h int) *image.Alpha {
	return m.Window(0, 0, float64(w), float64(h), w, h)
}

// Window resamples the mask as if stretched over the w×h rectangle at
// (x, y) and returns only the part inside (0,0)-(dw,dh). Layers much larger
// than the surface cost no more than the visible window.
func (m *Mask) Window(x, y, w, h float64, dw, dh int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, dw, dh))
	if w <= 0 || h <= 0 {
		return dst
	}
	kx, ky := w/float64(m.Width()), h/float64(m.Height())
	if x == 0 && y == 0 && kx == 1 && ky == 1 && dw == m.Width() && dh == m.Height() {
		copy(dst.Pix, m.alpha.Pix)
		return dst
	}
	s2d := f64.Aff3{kx, 0, x, 0, ky, y}
	xdraw.BiLinear.Transform(dst, s2d, m.alpha, m.alpha.Bounds(), xdraw.Src, nil)
	return dst
}

// Stamp paints one dab centered at (x, y) in mask pixels. strength is the
// dab opacity in [0,1]. Erasing removes coverage instead of adding it.
func (m *Mask) Stamp(x, y, radius float64, shape fade.Shape, strength float64, erase bool) {
	if radius <= 0 || strength <= 0 {
		return
	}
	if strength > 1 {
		strength = 1
	}
	// the dab is rasterized only where it overlaps the mask, so a huge
	// rescaled radius costs no more than the mask itself
	r := image.Rect(
		int(math.Floor(x-radius))-1, int(math.Floor(y-radius))-1,
		int(math.Ceil(x+radius))+2, int(math.Ceil(y+radius))+2,
	).Intersect(m.alpha.Rect)
	if r.Empty() {
		return
	}
	ox, oy := r.Min.X, r.Min.Y
	cx, cy := x-float64(ox), y-float64(oy)

	dc := gg.NewContext(r.Dx(), r.Dy())
	switch shape {
	case fade.ShapeSquare:
		dc.SetRGBA(0, 0, 0, strength)
		dc.DrawRectangle(cx-radius, cy-radius, 2*radius, 2*radius)
	default:
		g := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
		g.AddColorStop(0, gray(strength))
		g.AddColorStop(0.5, gray(strength))
		g.AddColorStop(1, gray(0))
		dc.SetFillStyle(g)
		dc.DrawCircle(cx, cy, radius)
	}
	dc.Fill()
	m.blend(dc.AsMask(), ox, oy, erase)
}

// blend merges a dab whose origin sits at (ox, oy). Adding is source-over
// of an opaque source; erasing is destination-out, which image/draw has no
// operator for.
func (m *Mask) blend(dab *image.Alpha, ox, oy int, erase bool) {
	r := dab.Rect.Add(image.Pt(ox, oy)).Intersect(m.alpha.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			d := uint32(dab.Pix[dab.PixOffset(x-ox, y-oy)])
			if d == 0 {
				continue
			}
			i := m.alpha.PixOffset(x, y)
			a := uint32(m.alpha.Pix[i])
			keep := (a*(255-d) + 127) / 255
			if erase {
				m.alpha.Pix[i] = uint8(keep)
			} else {
				m.alpha.Pix[i] = uint8(d + keep)
			}
		}
	}
}

func gray(a float64) color.NRGBA {
	return color.NRGBA{A: uint8(math.Round(a * 255))}
}
