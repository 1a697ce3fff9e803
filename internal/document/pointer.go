package document

import (
	"fader/internal/fade"
	"fader/internal/transform"
)

type dragKind int

const (
	dragNone dragKind = iota
	dragMove
	dragResize
	dragPaint
)

type drag struct {
	kind   dragKind
	id     string
	handle transform.Handle
	move   transform.MoveDrag
}

// Dragging reports whether a pointer session is in progress.
func (d *Document) Dragging() bool { return d.drag.kind != dragNone }

// PointerDown starts a pointer session at a canvas point:
//   - on a handle of the active layer it starts a resize without reordering
//   - with the brush tool on the active brush layer it paints
//   - on any layer body it selects that layer, brings it to front and
//     starts a move
//   - on empty canvas it clears the selection
func (d *Document) PointerDown(x, y float64) bool {
	d.drag = drag{}
	active := d.Stack.Active()

	if active != nil {
		if h := transform.HandleAt(active, x, y, transform.HandleSize); h != transform.HandleNone {
			d.drag = drag{kind: dragResize, id: active.ID, handle: h}
			return true
		}
		if d.BrushTool && active.Fade.Type == fade.TypeBrush && active.Contains(x, y) {
			d.drag = drag{kind: dragPaint, id: active.ID}
			return d.PaintBrush(active.ID, x, y)
		}
	}

	hit := d.Stack.HitTest(x, y)
	if hit == nil {
		had := d.Stack.ActiveID() != ""
		d.Stack.SetActive("")
		return had
	}
	d.Stack.SetActive(hit.ID)
	d.Stack.BringToFront(hit.ID)
	d.drag = drag{kind: dragMove, id: hit.ID, move: transform.BeginMove(hit, x, y)}
	return true
}

// PointerMove continues the current session. Without one it does nothing.
func (d *Document) PointerMove(x, y float64) bool {
	switch d.drag.kind {
	case dragMove:
		l := d.find("drag", d.drag.id)
		if l == nil {
			return false
		}
		d.drag.move.Update(l, x, y)
		return true
	case dragResize:
		return d.ResizeLayer(d.drag.id, d.drag.handle, x, y)
	case dragPaint:
		return d.PaintBrush(d.drag.id, x, y)
	}
	return false
}

func (d *Document) PointerUp() bool {
	was := d.Dragging()
	d.drag = drag{}
	return was
}
