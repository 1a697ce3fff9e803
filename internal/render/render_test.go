package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/fogleman/gg"

	"fader/internal/brush"
	"fader/internal/fade"
	"fader/internal/layer"
)

func solid(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func plainLayer(img image.Image) *layer.Layer {
	l := layer.New(img, "l")
	l.Fade.Type = fade.TypeNone
	return l
}

func canvas(w, h int) layer.Canvas {
	return layer.Canvas{Width: w, Height: h, Transparent: true, Background: color.RGBA{255, 255, 255, 255}}
}

func render(c layer.Canvas, layers ...*layer.Layer) *image.RGBA {
	return RenderForExport(c, layers, FormatPNG, 1)
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestNoFadeMatchesRawDraw(t *testing.T) {
	img := solid(40, 20, color.RGBA{200, 30, 10, 255})
	c := canvas(60, 40)

	none := plainLayer(img)
	none.X, none.Y = 10, 10

	zero := plainLayer(img)
	zero.X, zero.Y = 10, 10
	zero.Fade.Type = fade.TypeLinear
	zero.Fade.Size = 0

	dc := gg.NewContext(60, 40)
	dc.DrawImage(img, 10, 10)
	raw := dc.Image().(*image.RGBA)

	for name, l := range map[string]*layer.Layer{"none": none, "size 0": zero} {
		got := render(c, l)
		if !bytes.Equal(got.Pix, raw.Pix) {
			t.Errorf("%s: composite differs from drawing the raw image", name)
		}
	}
}

func TestLinearTransparentFade(t *testing.T) {
	l := plainLayer(solid(200, 10, color.RGBA{255, 0, 0, 255}))
	l.Fade = fade.Config{Type: fade.TypeLinear, Direction: fade.DirLeft, Size: 50, Softness: 0}
	out := render(canvas(200, 10), l)

	tests := []struct {
		x    int
		want uint8
		tol  int
	}{
		{0, 1, 3},
		{50, 129, 4},
		{120, 255, 0},
		{199, 255, 0},
	}
	for _, tt := range tests {
		if a := out.RGBAAt(tt.x, 5).A; !near(a, tt.want, tt.tol) {
			t.Errorf("alpha at x=%d = %d, want %d±%d", tt.x, a, tt.want, tt.tol)
		}
	}
}

func TestColorModeTintsTowardColor(t *testing.T) {
	l := plainLayer(solid(100, 10, color.RGBA{0, 0, 0, 255}))
	l.Fade = fade.Config{
		Type:      fade.TypeLinear,
		Direction: fade.DirLeft,
		Mode:      fade.ModeColor,
		Color:     color.RGBA{255, 255, 255, 255},
		Size:      100,
		Softness:  0,
	}
	out := render(canvas(100, 10), l)
	if p := out.RGBAAt(0, 5); p.R < 240 || p.A != 255 {
		t.Errorf("leading edge = %v, want near white and opaque", p)
	}
	if p := out.RGBAAt(97, 5); p.R > 30 || p.A != 255 {
		t.Errorf("trailing edge = %v, want near black and opaque", p)
	}
}

func TestBrushClearMatchesUnpainted(t *testing.T) {
	img := solid(20, 20, color.RGBA{0, 120, 240, 255})
	c := canvas(20, 20)

	l := plainLayer(img)
	l.Fade.Type = fade.TypeBrush
	l.Fade.BrushSize = 3
	l.Fade.BrushStrength = 100
	clean := render(c, l)

	if !l.PaintBrush(10, 10, false) {
		t.Fatal("stroke rejected")
	}
	painted := render(c, l)
	if a := painted.RGBAAt(10, 10).A; a > 5 {
		t.Errorf("painted pixel alpha = %d, want erased", a)
	}
	if a := painted.RGBAAt(1, 1).A; a != 255 {
		t.Errorf("unpainted pixel alpha = %d, want 255", a)
	}

	l.ClearBrush()
	if got := render(c, l); !bytes.Equal(got.Pix, clean.Pix) {
		t.Error("clearing the brush did not restore the unpainted composite")
	}
}

func TestBrushColorMode(t *testing.T) {
	l := plainLayer(solid(20, 20, color.RGBA{0, 0, 0, 255}))
	l.Fade.Type = fade.TypeBrush
	l.Fade.Mode = fade.ModeColor
	l.Fade.Color = color.RGBA{255, 255, 255, 255}
	l.Fade.BrushSize = 3
	l.Fade.BrushStrength = 100
	l.PaintBrush(10, 10, false)

	out := render(canvas(20, 20), l)
	if p := out.RGBAAt(10, 10); p.R < 240 || p.A != 255 {
		t.Errorf("painted pixel = %v, want tinted white", p)
	}
	if p := out.RGBAAt(1, 1); p.R != 0 || p.A != 255 {
		t.Errorf("unpainted pixel = %v, want black", p)
	}
}

func TestBackgroundFill(t *testing.T) {
	c := canvas(8, 8)
	c.Background = color.RGBA{10, 20, 30, 255}

	if p := RenderForExport(c, nil, FormatPNG, 1).RGBAAt(4, 4); p.A != 0 {
		t.Errorf("transparent PNG pixel = %v, want clear", p)
	}
	if p := RenderForExport(c, nil, FormatJPEG, 1).RGBAAt(4, 4); p != c.Background {
		t.Errorf("JPEG pixel = %v, want background %v", p, c.Background)
	}
	c.Transparent = false
	if p := RenderForExport(c, nil, FormatPDF, 1).RGBAAt(4, 4); p != c.Background {
		t.Errorf("opaque canvas pixel = %v, want background", p)
	}
}

func TestExportScale(t *testing.T) {
	l := plainLayer(solid(10, 10, color.RGBA{255, 0, 0, 255}))
	l.X, l.Y = 10, 0
	out := RenderForExport(canvas(20, 10), []*layer.Layer{l}, FormatPNG, 2)
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("export size %v, want 40x20", b)
	}
	if out.RGBAAt(5, 10).A != 0 {
		t.Error("layer bled into the left half")
	}
	if p := out.RGBAAt(30, 10); p.R != 255 || p.A != 255 {
		t.Errorf("scaled layer pixel = %v, want red", p)
	}
}

func TestLayerFarLargerThanSurface(t *testing.T) {
	// at 100000 px wide a full-size offscreen buffer would not fit in memory
	huge := layer.Rect{X: -25000, Y: -25000, Width: 100000, Height: 75000}

	l := plainLayer(solid(40, 30, color.RGBA{255, 0, 0, 255}))
	l.Rect = huge
	l.Fade = fade.Config{Type: fade.TypeLinear, Direction: fade.DirLeft, Size: 50, Softness: 0}
	out := render(canvas(40, 30), l)
	// the canvas sits a quarter of the way along the ramp
	if a := out.RGBAAt(20, 15).A; !near(a, 129, 4) {
		t.Errorf("alpha = %d, want ~129", a)
	}

	b := plainLayer(solid(40, 30, color.RGBA{0, 255, 0, 255}))
	b.Rect = huge
	b.Fade.Type = fade.TypeBrush
	b.Mask = brush.NewMask(40, 30)
	b.Mask.Stamp(20, 15, 100, fade.ShapeSquare, 1, false)
	if a := render(canvas(40, 30), b).RGBAAt(20, 15).A; a != 0 {
		t.Errorf("erased alpha = %d, want 0", a)
	}

	b.Fade.Mode = fade.ModeColor
	b.Fade.Color = color.RGBA{0, 0, 255, 255}
	if p := render(canvas(40, 30), b).RGBAAt(20, 15); p.B < 250 || p.A != 255 {
		t.Errorf("tinted pixel = %v, want blue", p)
	}
}

func TestLayerOrder(t *testing.T) {
	bottom := plainLayer(solid(10, 10, color.RGBA{255, 0, 0, 255}))
	top := plainLayer(solid(10, 10, color.RGBA{0, 0, 255, 255}))
	if p := render(canvas(10, 10), bottom, top).RGBAAt(5, 5); p.B != 255 || p.R != 0 {
		t.Errorf("top layer not drawn last: %v", p)
	}
}

func TestPreviewOverlay(t *testing.T) {
	l := plainLayer(solid(40, 40, color.RGBA{0, 0, 0, 255}))
	l.X, l.Y = 20, 20
	c := canvas(80, 80)

	dc := gg.NewContext(80, 80)
	Render(dc, c, []*layer.Layer{l}, Options{Preview: true, ActiveID: l.ID})
	withOverlay := dc.Image().(*image.RGBA)
	plain := render(c, l)

	if bytes.Equal(withOverlay.Pix, plain.Pix) {
		t.Fatal("preview overlay drew nothing")
	}
	// corner grip centered on the layer's top-left
	if p := withOverlay.RGBAAt(18, 18); p != handleFill {
		t.Errorf("handle pixel = %v, want %v", p, handleFill)
	}

	Render(dc, c, []*layer.Layer{l}, Options{Preview: true, ActiveID: "other"})
	if !bytes.Equal(dc.Image().(*image.RGBA).Pix, plain.Pix) {
		t.Error("overlay drawn for an inactive layer")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"png", FormatPNG, false},
		{".JPEG", FormatJPEG, false},
		{"jpg", FormatJPEG, false},
		{"pdf", FormatPDF, false},
		{"gif", FormatPNG, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
	if FormatJPEG.HasAlpha() || !FormatPNG.HasAlpha() || !FormatPDF.HasAlpha() {
		t.Error("HasAlpha wrong")
	}
}
