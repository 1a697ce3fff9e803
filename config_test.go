package main

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fader/internal/layer"
	"fader/internal/render"
)

func TestParseConfig(t *testing.T) {
	home := t.TempDir()
	rc := `
# fader settings
savedirectory = ~/exports
canvaswidth = 1920
canvasheight=1080
background = #1b1714
transparent = false
lockratio = FALSE
exportformat = jpg
exportscale = 2
fps = 60
logfile = ~/fader.log
copypath = true
unknown = ignored
not a pair
`
	got := parseConfig(strings.NewReader(rc), home)
	want := &Config{
		SaveDirectory: filepath.Join(home, "exports"),
		Canvas: layer.Canvas{
			Width:       1920,
			Height:      1080,
			Transparent: false,
			Background:  color.RGBA{0x1b, 0x17, 0x14, 0xff},
		},
		LockRatio:    false,
		ExportFormat: render.FormatJPEG,
		ExportScale:  2,
		FPS:          60,
		LogFile:      filepath.Join(home, "fader.log"),
		CopyPath:     true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigBadValuesKeepDefaults(t *testing.T) {
	rc := `
canvaswidth = -3
canvasheight = tall
background = #12
exportformat = gif
exportscale = 0
fps = 1000
`
	got := parseConfig(strings.NewReader(rc), t.TempDir())
	if diff := cmp.Diff(defaultConfig(), got); diff != "" {
		t.Errorf("bad values changed defaults (-want +got):\n%s", diff)
	}
}

func TestParseConfigPreset(t *testing.T) {
	got := parseConfig(strings.NewReader("canvas = story\n"), t.TempDir())
	if got.Canvas.Width != 1080 || got.Canvas.Height != 1920 {
		t.Errorf("preset gave %dx%d", got.Canvas.Width, got.Canvas.Height)
	}
}
