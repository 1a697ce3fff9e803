package document

import (
	"image/color"

	"fader/internal/fade"
	"fader/internal/layer"
	"fader/internal/transform"
)

// Command is one queued edit. Apply reports whether the document changed.
type Command interface {
	Apply(d *Document) bool
}

type AddLayerCmd struct{ Source Source }

func (c AddLayerCmd) Apply(d *Document) bool { return d.AddLayer(c.Source) != nil }

type MoveLayerCmd struct {
	ID   string
	X, Y float64
}

func (c MoveLayerCmd) Apply(d *Document) bool { return d.MoveLayer(c.ID, c.X, c.Y) }

// NudgeLayerCmd moves by an offset, so several in one frame add up.
type NudgeLayerCmd struct {
	ID     string
	DX, DY float64
}

func (c NudgeLayerCmd) Apply(d *Document) bool { return d.NudgeLayer(c.ID, c.DX, c.DY) }

type ResizeLayerCmd struct {
	ID     string
	Handle transform.Handle
	X, Y   float64
}

func (c ResizeLayerCmd) Apply(d *Document) bool { return d.ResizeLayer(c.ID, c.Handle, c.X, c.Y) }

type ScaleLayerCmd struct {
	ID      string
	Percent float64
}

func (c ScaleLayerCmd) Apply(d *Document) bool { return d.ScaleLayer(c.ID, c.Percent) }

type ScaleLayerByCmd struct {
	ID    string
	Delta float64
}

func (c ScaleLayerByCmd) Apply(d *Document) bool { return d.ScaleLayerBy(c.ID, c.Delta) }

type SetFadeCmd struct {
	ID     string
	Config fade.Config
}

func (c SetFadeCmd) Apply(d *Document) bool { return d.SetFade(c.ID, c.Config) }

// AdjustFadeCmd edits the fade settings as they are when it runs.
type AdjustFadeCmd struct {
	ID     string
	Adjust func(*fade.Config)
}

func (c AdjustFadeCmd) Apply(d *Document) bool { return d.AdjustFade(c.ID, c.Adjust) }

type PaintBrushCmd struct {
	ID   string
	X, Y float64
}

func (c PaintBrushCmd) Apply(d *Document) bool { return d.PaintBrush(c.ID, c.X, c.Y) }

type ClearBrushCmd struct{ ID string }

func (c ClearBrushCmd) Apply(d *Document) bool { return d.ClearBrush(c.ID) }

type ReorderCmd struct {
	ID string
	Op layer.Order
}

func (c ReorderCmd) Apply(d *Document) bool { return d.Reorder(c.ID, c.Op) }

type RemoveLayerCmd struct{ ID string }

func (c RemoveLayerCmd) Apply(d *Document) bool { return d.RemoveLayer(c.ID) }

type DuplicateLayerCmd struct{ ID string }

func (c DuplicateLayerCmd) Apply(d *Document) bool { return d.DuplicateLayer(c.ID) != nil }

type SelectLayerCmd struct{ ID string }

func (c SelectLayerCmd) Apply(d *Document) bool { return d.SelectLayer(c.ID) }

type CycleSelectionCmd struct{ Forward bool }

func (c CycleSelectionCmd) Apply(d *Document) bool { return d.CycleSelection(c.Forward) }

type FitLayerCmd struct{ ID string }

func (c FitLayerCmd) Apply(d *Document) bool { return d.FitLayer(c.ID) }

type CenterLayerCmd struct{ ID string }

func (c CenterLayerCmd) Apply(d *Document) bool { return d.CenterLayer(c.ID) }

// SetLayerSizeCmd leaves a side alone when it is nil.
type SetLayerSizeCmd struct {
	ID            string
	Width, Height *float64
}

func (c SetLayerSizeCmd) Apply(d *Document) bool { return d.SetLayerSize(c.ID, c.Width, c.Height) }

type SetCanvasSizeCmd struct{ Width, Height int }

func (c SetCanvasSizeCmd) Apply(d *Document) bool { return d.SetCanvasSize(c.Width, c.Height) }

type SetBackgroundCmd struct{ Color color.RGBA }

func (c SetBackgroundCmd) Apply(d *Document) bool { return d.SetBackground(c.Color) }

type SetTransparentCmd struct{ On bool }

func (c SetTransparentCmd) Apply(d *Document) bool { return d.SetTransparent(c.On) }

type SetLockRatioCmd struct{ On bool }

func (c SetLockRatioCmd) Apply(d *Document) bool { return d.SetLockRatio(c.On) }

type SetBrushToolCmd struct{ On bool }

func (c SetBrushToolCmd) Apply(d *Document) bool { return d.SetBrushTool(c.On) }

type SetEraserCmd struct{ On bool }

func (c SetEraserCmd) Apply(d *Document) bool { return d.SetEraser(c.On) }

type ToggleCmd struct{ Setting Setting }

func (c ToggleCmd) Apply(d *Document) bool { return d.Toggle(c.Setting) }

type PointerDownCmd struct{ X, Y float64 }

func (c PointerDownCmd) Apply(d *Document) bool { return d.PointerDown(c.X, c.Y) }

type PointerMoveCmd struct{ X, Y float64 }

func (c PointerMoveCmd) Apply(d *Document) bool { return d.PointerMove(c.X, c.Y) }

type PointerUpCmd struct{}

func (PointerUpCmd) Apply(d *Document) bool { return d.PointerUp() }
