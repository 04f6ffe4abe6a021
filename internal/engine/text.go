package engine

import (
	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/geometry"
)

// TextOverlay describes where the text-entry surface should appear.
type TextOverlay struct {
	ElementID string  `json:"elementId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Rotation  float64 `json:"rotation"`
	Color     string  `json:"color"`
	Text      string  `json:"text"`
}

// EditingText returns the overlay for the element being edited, if any.
func (e *Engine) EditingText() (TextOverlay, bool) {
	if e.state != StateEditingText {
		return TextOverlay{}, false
	}
	el := e.doc.Get(e.editingID)
	if el == nil {
		return TextOverlay{}, false
	}
	return overlayFor(el), true
}

func overlayFor(el *document.Element) TextOverlay {
	b := geometry.Bounds(el)
	return TextOverlay{
		ElementID: el.ID,
		X:         b.X,
		Y:         b.Y,
		Width:     b.Width,
		Height:    b.Height,
		Rotation:  geometry.Angle(el),
		Color:     el.Color,
		Text:      el.Text,
	}
}

func (e *Engine) beginTextEdit(el *document.Element, fresh bool) {
	e.editingID = el.ID
	e.editingFresh = fresh
	e.enter(StateEditingText)
	if e.editor != nil {
		e.editor.OpenText(overlayFor(el))
	}
}

// CommitText stores the overlay's final string on the edited element and
// leaves text editing. An empty string removes the element.
func (e *Engine) CommitText(text string) {
	if e.state != StateEditingText {
		return
	}
	id := e.editingID
	if el := e.doc.Get(id); el != nil && el.Text != text {
		if !e.editingFresh {
			e.history.Push(e.doc)
		}
		if text == "" {
			e.doc.Delete(id)
		} else {
			e.doc.Update(id, document.Patch{Text: &text})
		}
	}
	e.endTextEdit()
	e.render()
}

// CancelText leaves text editing without changing the element.
func (e *Engine) CancelText() {
	if e.state != StateEditingText {
		return
	}
	e.endTextEdit()
	e.render()
}

// endTextEdit closes the overlay. A text element left empty is removed; when
// it was just drawn, the drawing gesture's undo step already covers it.
func (e *Engine) endTextEdit() {
	if e.state != StateEditingText {
		return
	}
	id := e.editingID
	if el := e.doc.Get(id); el != nil && el.Text == "" {
		if !e.editingFresh {
			e.history.Push(e.doc)
		}
		e.doc.Delete(id)
	}
	e.editingID = ""
	e.editingFresh = false
	e.enter(StateIdle)
	if e.editor != nil {
		e.editor.CloseText(id)
	}
}
