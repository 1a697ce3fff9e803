package main

import (
	"image"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"fader/internal/document"
	"fader/internal/fade"
	"fader/internal/layer"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	config := defaultConfig()
	config.Canvas = layer.Canvas{Width: 800, Height: 600, Transparent: true}
	m := initialModel(config, nil)
	m.width, m.height = 50, 41
	m.layout()
	src, err := document.SourceFromImage(image.NewRGBA(image.Rect(0, 0, 400, 300)), "photo")
	if err != nil {
		t.Fatal(err)
	}
	m.doc.AddLayer(src)
	return &m
}

func TestViewportMapping(t *testing.T) {
	v := newViewport(100, 40, layer.Canvas{Width: 800, Height: 600})
	// 100 cols by 80 half-block rows; the narrower side wins
	if v.width != 100 || v.height != 75 {
		t.Fatalf("surface %dx%d, want 100x75", v.width, v.height)
	}
	if v.offX != 0 || v.offY != 1 {
		t.Errorf("offset (%d,%d), want (0,1)", v.offX, v.offY)
	}
	x, y, ok := v.toCanvas(50, 20)
	if !ok {
		t.Fatal("center cell reported off-surface")
	}
	if math.Abs(x-404) > 1e-9 || math.Abs(y-312) > 1e-9 {
		t.Errorf("toCanvas(50,20) = (%v,%v), want (404,312)", x, y)
	}
	if _, _, ok := v.toCanvas(50, 0); ok {
		t.Error("margin row reported on-surface")
	}
	if dx, dy := v.cellsToCanvas(1, 1); dx != 8 || dy != 16 {
		t.Errorf("cellsToCanvas(1,1) = (%v,%v), want (8,16)", dx, dy)
	}
}

func TestSameFrameKeysAllApply(t *testing.T) {
	m := newTestModel(t)
	l := m.doc.Active()

	_, cmd := m.handleNormalKey("t")
	if cmd == nil {
		t.Fatal("first key of a frame scheduled no frame")
	}
	for i := 0; i < 3; i++ {
		if _, cmd := m.handleNormalKey("]"); cmd != nil {
			t.Error("later key in the same frame scheduled another frame")
		}
	}
	m.queue.Drain(m.doc)
	if l.Fade.Type != fade.TypeRadial || l.Fade.Size != 55 {
		t.Errorf("fade = %v size %v, want radial size 55", l.Fade.Type, l.Fade.Size)
	}

	// 50 cols over 800 canvas pixels: one cell is 16 pixels wide
	x0 := l.X
	m.handleNormalKey("right")
	m.handleNormalKey("right")
	m.queue.Drain(m.doc)
	if math.Abs(l.X-(x0+32)) > 1e-9 {
		t.Errorf("x after two nudges = %v, want %v", l.X, x0+32)
	}

	s0 := l.Scale
	m.handleNormalKey("+")
	m.handleMouse(tea.MouseMsg{X: 25, Y: 20, Type: tea.MouseWheelUp})
	m.queue.Drain(m.doc)
	if math.Abs(l.Scale-(s0+0.1)) > 1e-9 {
		t.Errorf("scale = %v, want %v", l.Scale, s0+0.1)
	}

	m.handleNormalKey("e")
	m.handleNormalKey("e")
	m.handleNormalKey("l")
	next, _ := m.Update(frameMsg{})
	if m.doc.Eraser || m.doc.LockRatio {
		t.Errorf("eraser %v lock %v, want both off", m.doc.Eraser, m.doc.LockRatio)
	}
	if got := next.(model).successMessage; got != "Lock ratio off" {
		t.Errorf("status = %q, want the state after the frame", got)
	}
}

func TestInputCommands(t *testing.T) {
	m := newTestModel(t)
	l := m.doc.Active()

	m.beginInput(InputScale, "50")
	m.handleInputKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.queue.Drain(m.doc)
	if l.Scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", l.Scale)
	}

	m.beginInput(InputCanvasSize, "story")
	m.handleInputKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.queue.Drain(m.doc)
	if m.doc.Canvas.Width != 1080 || m.doc.Canvas.Height != 1920 {
		t.Errorf("canvas %dx%d, want 1080x1920", m.doc.Canvas.Width, m.doc.Canvas.Height)
	}

	m.beginInput(InputFadeColor, "")
	m.handleInputKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("#e27")})
	m.handleInputKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.queue.Drain(m.doc)
	if got := layer.HexColor(l.Fade.Color); got != "#ee2277" {
		t.Errorf("fade color = %s, want #ee2277", got)
	}

	m.beginInput(InputWidth, "wide")
	m.handleInputKey(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeInput || m.errorMessage == "" {
		t.Error("bad number accepted")
	}
}

func TestMouseDragMovesLayer(t *testing.T) {
	m := newTestModel(t)
	l := m.doc.Active()
	x0, y0 := l.X, l.Y

	// 50 cols over 800 canvas pixels: one cell is 16 pixels wide
	m.handleMouse(tea.MouseMsg{X: 25, Y: 20, Type: tea.MouseLeft})
	m.handleMouse(tea.MouseMsg{X: 30, Y: 20, Type: tea.MouseMotion})
	m.handleMouse(tea.MouseMsg{X: 30, Y: 20, Type: tea.MouseRelease})
	m.queue.Drain(m.doc)

	if math.Abs(l.X-(x0+80)) > 1e-9 || l.Y != y0 {
		t.Errorf("layer at (%v,%v), want (%v,%v)", l.X, l.Y, x0+80, y0)
	}
	if m.doc.Dragging() {
		t.Error("drag still active after release")
	}
}

func TestEraserWording(t *testing.T) {
	m := newTestModel(t)
	m.doc.BrushTool = true
	if got := m.modeString(); got != "BRUSH" {
		t.Errorf("mode = %q, want BRUSH", got)
	}
	m.doc.Eraser = true
	if got := m.modeString(); got != "RESTORE" {
		t.Errorf("eraser mode = %q, want RESTORE", got)
	}
	var found bool
	for _, line := range helpLines {
		if strings.Contains(line, "Toggle eraser") && strings.Contains(line, "restore") {
			found = true
		}
	}
	if !found {
		t.Error("help does not say the eraser restores the image")
	}
}

