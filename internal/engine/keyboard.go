package engine

import "strings"

// KeyEvent is a key press as reported by the input collaborator.
type KeyEvent struct {
	Key   string `json:"key"`
	Ctrl  bool   `json:"ctrl,omitempty"`
	Meta  bool   `json:"meta,omitempty"`
	Shift bool   `json:"shift,omitempty"`
	Alt   bool   `json:"alt,omitempty"`
}

// KeyDown handles deletion, undo/redo chords, select-all and escape.
// While a text element is edited only Escape is handled; every other key
// belongs to the text overlay.
func (e *Engine) KeyDown(k KeyEvent) {
	key := strings.ToLower(k.Key)

	if e.state == StateEditingText {
		if key == "escape" {
			e.CancelText()
		}
		return
	}

	mod := k.Ctrl || k.Meta
	switch {
	case key == "delete" || key == "backspace":
		e.DeleteSelection()
	case mod && key == "z" && k.Shift:
		e.Redo()
	case mod && key == "z":
		e.Undo()
	case mod && key == "y":
		e.Redo()
	case mod && key == "a":
		e.SelectAll()
	case key == "escape":
		if e.state == StateIdle && e.doc.SelectionLen() > 0 {
			e.doc.ClearSelection()
			e.render()
		}
	}
}
