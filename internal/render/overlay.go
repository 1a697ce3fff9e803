package render

import (
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"fader/internal/fade"
	"fader/internal/layer"
	"fader/internal/transform"
)

var (
	handleFill   = color.RGBA{0xe2, 0x7d, 0x39, 0xff}
	handleStroke = color.RGBA{0x1b, 0x17, 0x14, 0xff}
	outline      = color.RGBA{0xe2, 0x7d, 0x39, 0xc0}
)

const labelSize = 12.0

var (
	labelOnce sync.Once
	labelFace font.Face
)

func loadLabelFace() font.Face {
	labelOnce.Do(func() {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return
		}
		labelFace = truetype.NewFace(ttf, &truetype.Options{
			Size:    labelSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return labelFace
}

// drawOverlay draws the selection frame, resize handles, name label and
// brush cursor for l. Sizes are in canvas units so they track the grips
// used for hit testing.
func drawOverlay(dc *gg.Context, l *layer.Layer, sx, sy float64, opts Options) {
	r := surfaceRect(l.Rect, sx, sy)

	dc.SetLineWidth(1)
	dc.SetColor(outline)
	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.Stroke()

	size := math.Max(3, transform.HandleSize*sx)
	for _, h := range transform.Handles(r) {
		dc.DrawRectangle(h.X-size/2, h.Y-size/2, size, size)
		dc.SetColor(handleFill)
		dc.FillPreserve()
		dc.SetColor(handleStroke)
		dc.SetLineWidth(math.Max(1, 2*sx))
		dc.Stroke()
	}

	if opts.Label {
		if face := loadLabelFace(); face != nil {
			dc.SetFontFace(face)
			dc.SetColor(handleStroke)
			dc.DrawString(l.Name, r.X+size, r.Y-size/2-2)
		}
	}

	if opts.ShowCursor && l.Fade.Type == fade.TypeBrush {
		rad := math.Max(1, l.Fade.BrushSize*sx)
		cx, cy := opts.CursorX*sx, opts.CursorY*sy
		dc.SetLineWidth(1)
		dc.SetColor(handleStroke)
		if l.Fade.BrushShape == fade.ShapeSquare {
			dc.DrawRectangle(cx-rad, cy-rad, 2*rad, 2*rad)
		} else {
			dc.DrawCircle(cx, cy, rad)
		}
		dc.Stroke()
	}
}
