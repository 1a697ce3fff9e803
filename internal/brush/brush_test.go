package brush

import (
	"runtime"
	"testing"

	"fader/internal/fade"
)

func TestToLocal(t *testing.T) {
	p := Placement{X: 100, Y: 50, Width: 200, Height: 100}
	tests := []struct {
		name   string
		cx, cy float64
		u, v   float64
		ok     bool
	}{
		{"origin", 100, 50, 0, 0, true},
		{"center", 200, 100, 0.5, 0.5, true},
		{"far corner", 300, 150, 1, 1, true},
		{"left of layer", 99, 100, 0, 0, false},
		{"below layer", 200, 151, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v, ok := ToLocal(p, tt.cx, tt.cy)
			if ok != tt.ok || u != tt.u || v != tt.v {
				t.Errorf("ToLocal(%v,%v) = %v,%v,%v want %v,%v,%v", tt.cx, tt.cy, u, v, ok, tt.u, tt.v, tt.ok)
			}
		})
	}
	if _, _, ok := ToLocal(Placement{Width: 0, Height: 10}, 0, 0); ok {
		t.Error("zero-width placement accepted")
	}
}

func TestPaintAddsCoverage(t *testing.T) {
	m := NewMask(100, 100)
	p := Placement{X: 0, Y: 0, Width: 200, Height: 200}
	s := Stroke{Radius: 20, Strength: 100, Shape: fade.ShapeRound}
	if !Paint(m, p, 100, 100, s) {
		t.Fatal("stroke inside the layer was rejected")
	}
	if got := m.At(50, 50); got != 255 {
		t.Errorf("center coverage = %d, want 255", got)
	}
	// radius 20 canvas px at scale 2 is 10 mask px
	if got := m.At(50, 62); got != 0 {
		t.Errorf("coverage outside the rescaled radius = %d, want 0", got)
	}
	if got := m.At(50, 57); got == 0 {
		t.Error("no coverage inside the rescaled radius")
	}
	if m.Empty() {
		t.Error("mask reports empty after a stroke")
	}
}

func TestPaintOutsideIsNoOp(t *testing.T) {
	m := NewMask(10, 10)
	p := Placement{X: 0, Y: 0, Width: 10, Height: 10}
	if Paint(m, p, 20, 5, Stroke{Radius: 3, Strength: 100}) {
		t.Error("stroke outside the layer was accepted")
	}
	if !m.Empty() {
		t.Error("rejected stroke modified the mask")
	}
	if Paint(nil, p, 5, 5, Stroke{Radius: 3, Strength: 100}) {
		t.Error("nil mask accepted a stroke")
	}
}

func TestStrengthAndErase(t *testing.T) {
	m := NewMask(40, 40)
	m.Stamp(20, 20, 8, fade.ShapeSquare, 0.5, false)
	first := m.At(20, 20)
	if first < 126 || first > 129 {
		t.Fatalf("half strength coverage = %d, want ~128", first)
	}
	m.Stamp(20, 20, 8, fade.ShapeSquare, 0.5, false)
	if second := m.At(20, 20); second <= first {
		t.Errorf("second additive stroke did not accumulate: %d -> %d", first, second)
	}
	m.Stamp(20, 20, 8, fade.ShapeSquare, 1, true)
	if got := m.At(20, 20); got != 0 {
		t.Errorf("full eraser left %d", got)
	}
	// pixels outside the dab keep their value
	m.Stamp(5, 5, 2, fade.ShapeSquare, 1, false)
	m.Stamp(30, 30, 2, fade.ShapeSquare, 1, true)
	if got := m.At(5, 5); got != 255 {
		t.Errorf("erasing elsewhere changed an unrelated pixel to %d", got)
	}
}

func TestSquareIsHardEdged(t *testing.T) {
	m := NewMask(40, 40)
	m.Stamp(20, 20, 6, fade.ShapeSquare, 1, false)
	for _, pt := range [][2]int{{15, 15}, {24, 15}, {15, 24}, {24, 24}} {
		if got := m.At(pt[0], pt[1]); got != 255 {
			t.Errorf("square corner %v coverage = %d, want 255", pt, got)
		}
	}
	if got := m.At(27, 20); got != 0 {
		t.Errorf("outside square coverage = %d, want 0", got)
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	m := NewMask(10, 10)
	m.Stamp(0, 0, 4, fade.ShapeRound, 1, false)
	m.Stamp(10, 10, 4, fade.ShapeSquare, 1, false)
	if m.At(0, 0) == 0 || m.At(9, 9) == 0 {
		t.Error("edge stamps did not land")
	}
}

func TestLargeRadiusStaysWithinMask(t *testing.T) {
	// a big image shown tiny turns a 40px brush into a 4000px dab
	m := NewMask(2000, 1500)
	p := Placement{Width: 20, Height: 15}
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	if !Paint(m, p, 10, 7.5, Stroke{Radius: 40, Strength: 100}) {
		t.Fatal("stroke inside the layer was rejected")
	}
	runtime.ReadMemStats(&after)

	for _, pt := range [][2]int{{0, 0}, {1999, 0}, {0, 1499}, {1999, 1499}, {1000, 750}} {
		if got := m.At(pt[0], pt[1]); got != 255 {
			t.Errorf("coverage at %v = %d, want 255", pt, got)
		}
	}
	// the dab raster is bounded by the mask, a few RGBA copies at most
	if got := after.TotalAlloc - before.TotalAlloc; got > 64<<20 {
		t.Errorf("stamp allocated %d MB", got>>20)
	}
}

func TestClearAndClone(t *testing.T) {
	m := NewMask(20, 20)
	m.Stamp(10, 10, 5, fade.ShapeRound, 1, false)
	c := m.Clone()
	c.Stamp(2, 2, 2, fade.ShapeSquare, 1, false)
	if m.At(2, 2) != 0 {
		t.Error("painting a clone changed the original")
	}
	m.Clear()
	if !m.Empty() {
		t.Error("Clear left coverage")
	}
	m.Clear()
	if !m.Empty() {
		t.Error("second Clear is not idempotent")
	}
	if c.At(10, 10) == 0 {
		t.Error("clearing the original cleared the clone")
	}
}

func TestScaled(t *testing.T) {
	m := NewMask(10, 10)
	m.Stamp(5, 5, 10, fade.ShapeSquare, 1, false)
	s := m.Scaled(40, 20)
	if s.Bounds().Dx() != 40 || s.Bounds().Dy() != 20 {
		t.Fatalf("scaled bounds = %v", s.Bounds())
	}
	if s.AlphaAt(20, 10).A != 255 {
		t.Errorf("scaled center = %d, want 255", s.AlphaAt(20, 10).A)
	}
	same := m.Scaled(10, 10)
	same.Pix[0] = 0
	if m.At(0, 0) != 255 {
		t.Error("Scaled at natural size aliases the mask")
	}
}
