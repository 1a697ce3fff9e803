package fade

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Stop is one control point of an alpha ramp. Pos runs from 0 at the start
// of the ramp's axis (or the center of a radial ramp) to 1 at its end.
type Stop struct {
	Pos   float64
	Alpha float64
}

var stopPositions = [...]float64{0, 0.2, 0.5, 0.8, 1}

// BuildStops returns the eased control stops for a softness in [0,1].
// Higher softness gives a flatter ramp near 0. The reverse variant is the
// pointwise complement of the forward one.
func BuildStops(softness float64, reverse bool) []Stop {
	curve := 1 + 2*clamp(softness, 0, 1)
	stops := make([]Stop, len(stopPositions))
	for i, pos := range stopPositions {
		eased := math.Pow(pos, curve)
		if reverse {
			eased = 1 - eased
		}
		stops[i] = Stop{Pos: pos, Alpha: eased}
	}
	return stops
}

type Kind int

const (
	KindLinear Kind = iota
	KindRadial
)

// Ramp is a resolution-free alpha gradient. Linear ramps run along the axis
// (X0,Y0)-(X1,Y1); radial ramps grow from (CX,CY) out to Radius. Outside
// the first and last stop the ramp holds that stop's alpha.
type Ramp struct {
	Kind   Kind
	X0, Y0 float64
	X1, Y1 float64
	CX, CY float64
	Radius float64
	Stops  []Stop
}

// AlphaAt evaluates the ramp at a point in the ramp's coordinate space.
func (r Ramp) AlphaAt(x, y float64) float64 {
	if len(r.Stops) == 0 {
		return 1
	}
	var t float64
	switch r.Kind {
	case KindRadial:
		if r.Radius <= 0 {
			return r.Stops[len(r.Stops)-1].Alpha
		}
		t = math.Hypot(x-r.CX, y-r.CY) / r.Radius
	default:
		dx, dy := r.X1-r.X0, r.Y1-r.Y0
		l2 := dx*dx + dy*dy
		if l2 == 0 {
			return r.Stops[len(r.Stops)-1].Alpha
		}
		t = ((x-r.X0)*dx + (y-r.Y0)*dy) / l2
	}
	return evalStops(r.Stops, t)
}

func evalStops(stops []Stop, t float64) float64 {
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.Pos {
		return first.Alpha
	}
	if t >= last.Pos {
		return last.Alpha
	}
	for i := 1; i < len(stops); i++ {
		if t < stops[i].Pos {
			a, b := stops[i-1], stops[i]
			f := (t - a.Pos) / (b.Pos - a.Pos)
			return a.Alpha + (b.Alpha-a.Alpha)*f
		}
	}
	return last.Alpha
}

// Translate returns the ramp shifted by (dx, dy).
func (r Ramp) Translate(dx, dy float64) Ramp {
	r.X0 += dx
	r.X1 += dx
	r.Y0 += dy
	r.Y1 += dy
	r.CX += dx
	r.CY += dy
	r.Stops = append([]Stop(nil), r.Stops...)
	return r
}

// Inverted returns the ramp with every stop alpha complemented.
func (r Ramp) Inverted() Ramp {
	stops := make([]Stop, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = Stop{Pos: s.Pos, Alpha: 1 - s.Alpha}
	}
	r.Stops = stops
	return r
}

// Rasterize samples the ramp at pixel centers into a w×h alpha mask whose
// origin is the ramp's origin.
func (r Ramp) Rasterize(w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < w; x++ {
			row[x] = alpha8(r.AlphaAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
	return mask
}

// Pattern returns a gg gradient painting c with the ramp's alpha, for use
// as a fill style in device coordinates.
func (r Ramp) Pattern(c color.Color) gg.Gradient {
	var g gg.Gradient
	if r.Kind == KindRadial {
		g = gg.NewRadialGradient(r.CX, r.CY, 0, r.CX, r.CY, r.Radius)
	} else {
		g = gg.NewLinearGradient(r.X0, r.Y0, r.X1, r.Y1)
	}
	base := color.NRGBAModel.Convert(c).(color.NRGBA)
	for _, s := range r.Stops {
		base.A = alpha8(s.Alpha)
		g.AddColorStop(s.Pos, base)
	}
	return g
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp(a, 0, 1) * 255))
}
