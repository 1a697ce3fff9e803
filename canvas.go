package main

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"

	"fader/internal/layer"
	"fader/internal/render"
)

// viewport maps a block of terminal cells onto the document canvas. Each
// cell shows two pixels stacked vertically with a half block.
type viewport struct {
	cols, rows    int
	width, height int // preview surface in pixels
	offX, offY    int // cells of margin around the surface
	scaleX        float64
	scaleY        float64
}

func newViewport(cols, rows int, c layer.Canvas) viewport {
	cols = max(1, cols)
	rows = max(1, rows)
	cw, ch := float64(max(1, c.Width)), float64(max(1, c.Height))
	s := math.Min(float64(cols)/cw, float64(rows*2)/ch)

	v := viewport{cols: cols, rows: rows}
	v.width = max(1, int(cw*s))
	v.height = max(1, int(ch*s))
	v.scaleX = float64(v.width) / cw
	v.scaleY = float64(v.height) / ch
	v.offX = (cols - v.width) / 2
	v.offY = (rows - (v.height+1)/2) / 2
	return v
}

// toCanvas converts a cell position to canvas coordinates. ok reports
// whether the cell lies on the preview surface.
func (v viewport) toCanvas(col, row int) (x, y float64, ok bool) {
	px := float64(col-v.offX) + 0.5
	py := float64(row-v.offY)*2 + 1
	ok = px >= 0 && py >= 0 && px <= float64(v.width) && py <= float64(v.height)
	return px / v.scaleX, py / v.scaleY, ok
}

// cellsToCanvas converts a horizontal and vertical distance in cells.
func (v viewport) cellsToCanvas(dx, dy int) (float64, float64) {
	return float64(dx) / v.scaleX, float64(dy*2) / v.scaleY
}

func (m *model) renderPreview() string {
	if m.view.width <= 0 || m.view.height <= 0 {
		return ""
	}
	dc := gg.NewContext(m.view.width, m.view.height)
	render.Render(dc, m.doc.Canvas, m.doc.Layers(), render.Options{
		Format:     render.FormatPNG,
		Preview:    true,
		ActiveID:   m.doc.Stack.ActiveID(),
		Label:      m.view.width >= 240,
		ShowCursor: m.cursorOK && m.doc.BrushTool,
		CursorX:    m.cursorX,
		CursorY:    m.cursorY,
	})
	return m.view.cells(dc.Image().(*image.RGBA))
}

var (
	checkLight = color.RGBA{0xd8, 0xd2, 0xca, 0xff}
	checkDark  = color.RGBA{0xa8, 0xa0, 0x96, 0xff}
)

// cells paints the surface as rows of half blocks. Transparent pixels
// show a checkerboard.
func (v viewport) cells(img *image.RGBA) string {
	cache := make(map[[2]color.RGBA]string)
	var out strings.Builder
	rows := (v.height + 1) / 2
	pad := strings.Repeat(" ", max(0, v.offX))

	for i := 0; i < max(0, v.offY); i++ {
		out.WriteString("\n")
	}
	for r := 0; r < rows; r++ {
		out.WriteString(pad)
		for x := 0; x < v.width; x++ {
			top := flatten(img, x, 2*r)
			bottom := flatten(img, x, 2*r+1)
			if 2*r+1 >= v.height {
				bottom = color.RGBA{}
			}
			key := [2]color.RGBA{top, bottom}
			cell, ok := cache[key]
			if !ok {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(layer.HexColor(top)))
				if bottom.A != 0 {
					style = style.Background(lipgloss.Color(layer.HexColor(bottom)))
				}
				cell = style.Render("▀")
				cache[key] = cell
			}
			out.WriteString(cell)
		}
		if r < rows-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// flatten composes a pixel over the checkerboard.
func flatten(img *image.RGBA, x, y int) color.RGBA {
	p := img.RGBAAt(x, y)
	if p.A == 255 {
		return p
	}
	bg := checkLight
	if (x/4+y/4)%2 == 1 {
		bg = checkDark
	}
	a := uint32(p.A)
	mix := func(s, d uint8) uint8 {
		// s is premultiplied
		return uint8(uint32(s) + uint32(d)*(255-a)/255)
	}
	return color.RGBA{mix(p.R, bg.R), mix(p.G, bg.G), mix(p.B, bg.B), 255}
}
