package engine

import (
	"slices"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/geometry"
)

// PointerDown starts a gesture at p (canvas coordinates).
func (e *Engine) PointerDown(p document.Point) {
	if e.state == StateEditingText {
		e.endTextEdit()
	}
	e.gesture = gesture{origin: p, last: p, boxStart: p, boxEnd: p, anchor: geometry.NoAnchor}

	if kind, ok := e.tool.ElementType(); ok {
		e.beginDrawing(kind, p)
		e.render()
		return
	}

	if sel := e.doc.SingleSelected(); sel != nil {
		if geometry.HitRotationHandle(sel, p) {
			e.pushGesture()
			e.gesture.elementID = sel.ID
			e.gesture.startRotation = geometry.Angle(sel)
			e.enter(StateRotating)
			e.render()
			return
		}
		if anchor := geometry.HitAnchor(sel, p); anchor != geometry.NoAnchor {
			e.pushGesture()
			e.gesture.elementID = sel.ID
			e.gesture.anchor = anchor
			e.gesture.orig = sel.Clone()
			e.enter(StateResizing)
			e.render()
			return
		}
	}

	if hit := geometry.HitTest(e.doc.Elements(), p); hit != nil {
		if !(e.doc.IsSelected(hit.ID) && e.doc.SelectionLen() > 1) {
			e.doc.Select(hit.ID)
		}
		e.pushGesture()
		e.gesture.elementID = hit.ID
		e.enter(StateDragging)
		e.render()
		return
	}

	e.doc.ClearSelection()
	e.enter(StateBoxSelecting)
	e.render()
}

// pushGesture snapshots the document before a transform gesture so the
// step can be dropped again if the gesture changes nothing.
func (e *Engine) pushGesture() {
	e.history.Push(e.doc)
	e.gesture.undoDepth, _ = e.history.Depth()
}

func (e *Engine) beginDrawing(kind document.ElementType, p document.Point) {
	id := e.newID()
	if id == "" || e.doc.Get(id) != nil {
		return
	}
	e.history.Push(e.doc)
	el := e.doc.Add(document.NewElement(id, kind, p, e.color, e.strokeWidth))
	if kind == document.ElementFreehand {
		e.doc.ClearSelection()
	} else {
		e.doc.Select(el.ID)
	}
	e.gesture.elementID = el.ID
	e.enter(StateDrawing)
}

// PointerMove advances the active gesture to p. Outside a gesture it does nothing.
func (e *Engine) PointerMove(p document.Point) {
	switch e.state {
	case StateRotating:
		el := e.doc.Get(e.gesture.elementID)
		if el == nil {
			return
		}
		angle, ok := geometry.RotationAngle(geometry.Center(el), e.gesture.origin, p, e.gesture.startRotation)
		if !ok || angle == el.Rotation {
			return
		}
		el.Rotation = angle
		e.gesture.mutated = true

	case StateResizing:
		el := e.doc.Get(e.gesture.elementID)
		if el == nil {
			return
		}
		points, ok := geometry.Resize(&e.gesture.orig, e.gesture.anchor, p)
		if !ok || slices.Equal(points, el.Points) {
			return
		}
		e.doc.Update(e.gesture.elementID, document.Patch{Points: points})
		e.gesture.mutated = true

	case StateDragging:
		dx, dy := p.X-e.gesture.last.X, p.Y-e.gesture.last.Y
		e.gesture.last = p
		if dx == 0 && dy == 0 {
			return
		}
		for _, id := range e.doc.Selection() {
			if el := e.doc.Get(id); el != nil {
				el.Translate(dx, dy)
				e.gesture.mutated = true
			}
		}

	case StateBoxSelecting:
		e.gesture.boxEnd = p
		e.doc.Select(geometry.BoxSelect(e.doc.Elements(), e.gesture.boxStart, p)...)

	case StateDrawing:
		el := e.doc.Get(e.gesture.elementID)
		if el == nil {
			return
		}
		if el.Type == document.ElementFreehand {
			el.Points = append(el.Points, p)
		} else {
			el.Points = []document.Point{el.Points[0], p}
		}

	default:
		return
	}
	e.render()
}

// PointerUp finishes the active gesture.
func (e *Engine) PointerUp(p document.Point) {
	switch e.state {
	case StateBoxSelecting:
		e.doc.Select(geometry.BoxSelect(e.doc.Elements(), e.gesture.boxStart, e.gesture.boxEnd)...)

	case StateDrawing:
		if e.tool != ToolFreehand {
			e.tool = ToolSelect
		}
		el := e.doc.Get(e.gesture.elementID)
		if el != nil && el.Type == document.ElementText {
			e.gesture = gesture{}
			e.beginTextEdit(el, true)
			e.render()
			return
		}

	case StateDragging, StateResizing, StateRotating:
		if !e.gesture.mutated && e.history.Discard(e.gesture.undoDepth) {
			e.log.Debug("gesture changed nothing, snapshot dropped", "state", e.state)
		}

	default:
		return
	}
	e.log.Debug("gesture end", "state", e.state, "x", p.X, "y", p.Y)
	e.gesture = gesture{}
	e.enter(StateIdle)
	e.render()
}

// DoubleClick opens the text editor on a text element under p.
func (e *Engine) DoubleClick(p document.Point) {
	if e.state != StateIdle || e.tool != ToolSelect {
		return
	}
	hit := geometry.HitTest(e.doc.Elements(), p)
	if hit == nil || hit.Type != document.ElementText {
		return
	}
	e.doc.Select(hit.ID)
	e.beginTextEdit(hit, false)
	e.render()
}

func (e *Engine) enter(s State) {
	if e.state == s {
		return
	}
	e.log.Debug("state change", "from", e.state, "to", s, "element", e.gesture.elementID)
	e.state = s
}
