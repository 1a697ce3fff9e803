package brush

import "fader/internal/fade"

// Placement is where a layer sits in canvas space.
type Placement struct {
	X, Y          float64
	Width, Height float64
}

// Stroke is one brush event. Radius is in canvas pixels and Strength is a
// percentage.
type Stroke struct {
	Radius   float64
	Strength float64
	Shape    fade.Shape
	Erase    bool
}

// ToLocal converts a canvas point to normalized layer coordinates. ok is
// false for points outside the layer or degenerate placements.
func ToLocal(p Placement, cx, cy float64) (u, v float64, ok bool) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, 0, false
	}
	u = (cx - p.X) / p.Width
	v = (cy - p.Y) / p.Height
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0, 0, false
	}
	return u, v, true
}

// ToMask converts normalized layer coordinates to mask pixels.
func (m *Mask) ToMask(u, v float64) (x, y float64) {
	return u * float64(m.Width()), v * float64(m.Height())
}

// RadiusToMask rescales a canvas-space radius into mask pixels so a stroke
// covers the same part of the image at any on-canvas scale.
func (m *Mask) RadiusToMask(p Placement, radius float64) float64 {
	if p.Width <= 0 {
		return 0
	}
	return radius * float64(m.Width()) / p.Width
}

// Paint applies one stroke at canvas point (cx, cy). It reports whether
// the mask was touched.
func Paint(m *Mask, p Placement, cx, cy float64, s Stroke) bool {
	if m == nil {
		return false
	}
	u, v, ok := ToLocal(p, cx, cy)
	if !ok {
		return false
	}
	x, y := m.ToMask(u, v)
	m.Stamp(x, y, m.RadiusToMask(p, s.Radius), s.Shape, s.Strength/100, s.Erase)
	return true
}
