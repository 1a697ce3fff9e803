package fade

import "math"

type key struct {
	typ Type
	dir Direction
}

// builder lays out an erase ramp over a w×h box for a normalized fade
// size s in (0,1].
type builder func(w, h, s float64, fwd, rev []Stop) Ramp

var builders = map[key]builder{
	{TypeLinear, DirLeft}: func(w, h, s float64, fwd, _ []Stop) Ramp {
		return Ramp{Kind: KindLinear, X1: w * s, Stops: fwd}
	},
	{TypeLinear, DirRight}: func(w, h, s float64, _, rev []Stop) Ramp {
		return Ramp{Kind: KindLinear, X0: w - w*s, X1: w, Stops: rev}
	},
	{TypeLinear, DirTop}: func(w, h, s float64, fwd, _ []Stop) Ramp {
		return Ramp{Kind: KindLinear, Y1: h * s, Stops: fwd}
	},
	{TypeLinear, DirBottom}: func(w, h, s float64, _, rev []Stop) Ramp {
		return Ramp{Kind: KindLinear, Y0: h - h*s, Y1: h, Stops: rev}
	},
	{TypeLinear, DirBothX}: func(w, h, s float64, fwd, rev []Stop) Ramp {
		return Ramp{Kind: KindLinear, X1: w, Stops: twoSided(s, fwd, rev)}
	},
	{TypeLinear, DirBothY}: func(w, h, s float64, fwd, rev []Stop) Ramp {
		return Ramp{Kind: KindLinear, Y1: h, Stops: twoSided(s, fwd, rev)}
	},
	{TypeRadial, 0}: func(w, h, s float64, _, rev []Stop) Ramp {
		return Ramp{
			Kind:   KindRadial,
			CX:     w / 2,
			CY:     h / 2,
			Radius: math.Hypot(w, h) / 2 * s,
			Stops:  rev,
		}
	},
}

// twoSided packs the forward stops into [0,m] and the reverse stops into
// [1-m,1] so the ramp is opaque across the middle band.
func twoSided(s float64, fwd, rev []Stop) []Stop {
	m := math.Min(s, 0.5)
	stops := make([]Stop, 0, len(fwd)+len(rev))
	for _, st := range fwd {
		stops = append(stops, Stop{Pos: st.Pos * m, Alpha: st.Alpha})
	}
	for _, st := range rev {
		stops = append(stops, Stop{Pos: 1 - m + st.Pos*m, Alpha: st.Alpha})
	}
	return stops
}

func lookup(c Config) (builder, bool) {
	k := key{typ: c.Type}
	if c.Type == TypeLinear {
		k.dir = c.Direction
	}
	b, ok := builders[k]
	return b, ok
}

// Build returns the erase-mode ramp for a w×h layer in local coordinates.
// ok is false when the config produces no gradient effect.
func Build(c Config, w, h float64) (Ramp, bool) {
	if !Active(c) || w <= 0 || h <= 0 {
		return Ramp{}, false
	}
	b, ok := lookup(c)
	if !ok {
		return Ramp{}, false
	}
	s := clamp(c.Size/100, 0, 1)
	softness := clamp(c.Softness/100, 0, 1)
	return b(w, h, s, BuildStops(softness, false), BuildStops(softness, true)), true
}

// BuildTint returns the color-mode ramp: the erase ramp with its polarity
// flipped, so the tint is strongest at the faded edge.
func BuildTint(c Config, w, h float64) (Ramp, bool) {
	r, ok := Build(c, w, h)
	if !ok {
		return Ramp{}, false
	}
	return r.Inverted(), true
}
