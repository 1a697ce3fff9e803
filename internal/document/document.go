// Package document holds the editable state of one composition and the
// commands that change it. All methods run on the caller's goroutine.
package document

import (
	"errors"
	"image"
	"image/color"
	"math"

	"fader/internal/fade"
	"fader/internal/layer"
	"fader/internal/transform"
)

var ErrEmptyImage = errors.New("document: image has no pixels")

// Source is a decoded image ready to become a layer.
type Source struct {
	Image image.Image
	Name  string
}

func SourceFromImage(img image.Image, name string) (Source, error) {
	if img == nil || img.Bounds().Empty() {
		return Source{}, ErrEmptyImage
	}
	return Source{Image: img, Name: name}, nil
}

type Document struct {
	Canvas layer.Canvas
	Stack  *layer.Stack

	LockRatio bool
	BrushTool bool
	Eraser    bool

	drag drag
}

func New(c layer.Canvas) *Document {
	return &Document{Canvas: c, Stack: layer.NewStack(), LockRatio: true}
}

// Layers returns the stack bottom to top.
func (d *Document) Layers() []*layer.Layer { return d.Stack.Layers() }

func (d *Document) Active() *layer.Layer { return d.Stack.Active() }

// find looks up a layer, logging misses.
func (d *Document) find(op, id string) *layer.Layer {
	l := d.Stack.Get(id)
	if l == nil {
		Logger().Debug("ignored", "op", op, "layer", id)
	}
	return l
}

// AddLayer places a new layer on top, fitted to the canvas with a cascade
// inset so consecutive adds stay distinguishable, and selects it.
func (d *Document) AddLayer(src Source) *layer.Layer {
	if src.Image == nil || src.Image.Bounds().Empty() {
		Logger().Debug("ignored", "op", "add", "reason", ErrEmptyImage)
		return nil
	}
	l := layer.New(src.Image, src.Name)
	transform.Fit(l, d.Canvas, transform.CascadeInset(d.Stack.Len()))
	d.Stack.Add(l)
	Logger().Info("layer added", "layer", l.ID, "name", l.Name,
		"width", l.NaturalWidth, "height", l.NaturalHeight)
	return l
}

func (d *Document) MoveLayer(id string, x, y float64) bool {
	l := d.find("move", id)
	if l == nil {
		return false
	}
	transform.MoveTo(l, x, y)
	return true
}

// ResizeLayer drags handle h of the layer to the pointer, keeping the
// natural ratio when LockRatio is set.
func (d *Document) ResizeLayer(id string, h transform.Handle, px, py float64) bool {
	l := d.find("resize", id)
	if l == nil || h == transform.HandleNone {
		return false
	}
	transform.Resize(l, h, px, py, d.LockRatio)
	return true
}

// NudgeLayer moves the layer by an offset from wherever it is when the
// command runs.
func (d *Document) NudgeLayer(id string, dx, dy float64) bool {
	l := d.find("nudge", id)
	if l == nil || (dx == 0 && dy == 0) {
		return false
	}
	transform.MoveTo(l, l.X+dx, l.Y+dy)
	return true
}

// ScaleLayerBy adds delta percentage points to the layer's current scale.
func (d *Document) ScaleLayerBy(id string, delta float64) bool {
	l := d.find("scale", id)
	if l == nil {
		return false
	}
	transform.ScaleFromCenter(l, l.Scale*100+delta)
	return true
}

func (d *Document) ScaleLayer(id string, percent float64) bool {
	l := d.find("scale", id)
	if l == nil {
		return false
	}
	transform.ScaleFromCenter(l, percent)
	return true
}

// SetFade replaces the layer's fade settings after clamping them. The
// brush mask survives type changes.
func (d *Document) SetFade(id string, cfg fade.Config) bool {
	l := d.find("fade", id)
	if l == nil {
		return false
	}
	l.Fade = cfg.Normalize()
	return true
}

// PaintBrush stamps the layer's brush at a canvas point. Only layers using
// the brush fade accept strokes. Eraser restores opacity.
// AdjustFade edits the layer's current fade settings in place and clamps
// the result. It reports whether anything changed.
func (d *Document) AdjustFade(id string, adjust func(*fade.Config)) bool {
	l := d.find("fade", id)
	if l == nil || adjust == nil {
		return false
	}
	cfg := l.Fade
	adjust(&cfg)
	cfg = cfg.Normalize()
	if cfg == l.Fade {
		return false
	}
	l.Fade = cfg
	return true
}

func (d *Document) PaintBrush(id string, cx, cy float64) bool {
	l := d.find("paint", id)
	if l == nil {
		return false
	}
	if l.Fade.Type != fade.TypeBrush {
		Logger().Debug("ignored", "op", "paint", "layer", id, "fade", l.Fade.Type)
		return false
	}
	return l.PaintBrush(cx, cy, d.Eraser)
}

func (d *Document) ClearBrush(id string) bool {
	l := d.find("clear brush", id)
	if l == nil {
		return false
	}
	l.ClearBrush()
	return true
}

func (d *Document) Reorder(id string, op layer.Order) bool {
	if d.find("reorder", id) == nil {
		return false
	}
	return d.Stack.Reorder(id, op)
}

func (d *Document) RemoveLayer(id string) bool {
	if !d.Stack.Remove(id) {
		Logger().Debug("ignored", "op", "remove", "layer", id)
		return false
	}
	if d.drag.id == id {
		d.drag = drag{}
	}
	Logger().Info("layer removed", "layer", id)
	return true
}

func (d *Document) DuplicateLayer(id string) *layer.Layer {
	dup := d.Stack.Duplicate(id)
	if dup == nil {
		Logger().Debug("ignored", "op", "duplicate", "layer", id)
		return nil
	}
	Logger().Info("layer duplicated", "from", id, "layer", dup.ID)
	return dup
}

// SelectLayer makes id active. An empty id clears the selection.
func (d *Document) SelectLayer(id string) bool {
	if id != "" && d.find("select", id) == nil {
		return false
	}
	return d.Stack.SetActive(id)
}

// CycleSelection selects the next layer down the stack, or up when forward
// is false, wrapping at the ends. Without a selection it starts at the top
// or the bottom.
func (d *Document) CycleSelection(forward bool) bool {
	layers := d.Layers()
	if len(layers) == 0 {
		return false
	}
	i := d.Stack.Index(d.Stack.ActiveID())
	switch {
	case i < 0 && forward:
		i = len(layers) - 1
	case i < 0:
		i = 0
	case forward:
		i = (i - 1 + len(layers)) % len(layers)
	default:
		i = (i + 1) % len(layers)
	}
	return d.Stack.SetActive(layers[i].ID)
}

func (d *Document) FitLayer(id string) bool {
	l := d.find("fit", id)
	if l == nil {
		return false
	}
	transform.Fit(l, d.Canvas, 0)
	return true
}

func (d *Document) CenterLayer(id string) bool {
	l := d.find("center", id)
	if l == nil {
		return false
	}
	transform.Center(l, d.Canvas)
	return true
}

// SetLayerSize applies a typed size. A nil side is left to the ratio lock
// or unchanged.
func (d *Document) SetLayerSize(id string, width, height *float64) bool {
	l := d.find("size", id)
	if l == nil || (width == nil && height == nil) {
		return false
	}
	transform.SetSize(l, width, height, d.LockRatio)
	return true
}

func (d *Document) SetCanvasSize(width, height int) bool {
	old := d.Canvas
	d.Canvas.Resize(width, height)
	return d.Canvas != old
}

func (d *Document) SetBackground(c color.RGBA) bool {
	c.A = 255
	if d.Canvas.Background == c {
		return false
	}
	d.Canvas.Background = c
	return true
}

func (d *Document) SetTransparent(on bool) bool {
	if d.Canvas.Transparent == on {
		return false
	}
	d.Canvas.Transparent = on
	return true
}

func (d *Document) SetLockRatio(on bool) bool {
	if d.LockRatio == on {
		return false
	}
	d.LockRatio = on
	return true
}

func (d *Document) SetBrushTool(on bool) bool {
	if d.BrushTool == on {
		return false
	}
	d.BrushTool = on
	return true
}

func (d *Document) SetEraser(on bool) bool {
	if d.Eraser == on {
		return false
	}
	d.Eraser = on
	return true
}

// Setting names a document-wide switch.
type Setting int

const (
	SettingTransparent Setting = iota
	SettingLockRatio
	SettingBrushTool
	SettingEraser
)

// Toggle flips a setting. Turning the brush tool on also puts the active
// layer into brush mode so the next press paints.
func (d *Document) Toggle(s Setting) bool {
	switch s {
	case SettingTransparent:
		return d.SetTransparent(!d.Canvas.Transparent)
	case SettingLockRatio:
		return d.SetLockRatio(!d.LockRatio)
	case SettingEraser:
		return d.SetEraser(!d.Eraser)
	case SettingBrushTool:
		d.SetBrushTool(!d.BrushTool)
		if l := d.Active(); d.BrushTool && l != nil {
			d.AdjustFade(l.ID, func(c *fade.Config) { c.Type = fade.TypeBrush })
		}
		return true
	}
	return false
}

// ScalePercent reports the active layer's scale as a rounded percentage,
// or 0 without a selection.
func (d *Document) ScalePercent() int {
	l := d.Active()
	if l == nil {
		return 0
	}
	return int(math.Round(l.Scale * 100))
}
