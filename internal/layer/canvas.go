package layer

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Canvas is the document's output configuration. It is never derived from
// the layers.
type Canvas struct {
	Width       int
	Height      int
	Transparent bool
	Background  color.RGBA
}

func DefaultCanvas() Canvas {
	return Canvas{
		Width:       1080,
		Height:      1080,
		Transparent: true,
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Resize sets the canvas size, clamping to at least 1×1.
func (c *Canvas) Resize(width, height int) {
	c.Width = max(1, width)
	c.Height = max(1, height)
}

type Preset struct {
	Name          string
	Width, Height int
}

var Presets = []Preset{
	{"square", 1080, 1080},
	{"portrait", 1080, 1350},
	{"story", 1080, 1920},
	{"landscape", 1920, 1080},
	{"a4", 2480, 3508},
}

func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// ParseHexColor accepts "#rgb", "#rrggbb" or the same without the hash.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
