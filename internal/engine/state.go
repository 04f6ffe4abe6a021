package engine

import "github.com/inamate/sketchpad/internal/document"

// State is the interaction state of the canvas.
type State string

const (
	StateIdle         State = "idle"
	StateDrawing      State = "drawing"
	StateDragging     State = "dragging"
	StateResizing     State = "resizing"
	StateRotating     State = "rotating"
	StateBoxSelecting State = "boxSelecting"
	StateEditingText  State = "editingText"
)

// Tool is the active drawing tool, owned by the toolbar collaborator.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolRectangle Tool = "rectangle"
	ToolEllipse   Tool = "ellipse"
	ToolDiamond   Tool = "diamond"
	ToolLine      Tool = "line"
	ToolFreehand  Tool = "freehand"
	ToolText      Tool = "text"
)

// ElementType returns the element kind a drawing tool creates.
// ok is false for the select tool and unknown tools.
func (t Tool) ElementType() (document.ElementType, bool) {
	switch t {
	case ToolRectangle:
		return document.ElementRectangle, true
	case ToolEllipse:
		return document.ElementEllipse, true
	case ToolDiamond:
		return document.ElementDiamond, true
	case ToolLine:
		return document.ElementLine, true
	case ToolFreehand:
		return document.ElementFreehand, true
	case ToolText:
		return document.ElementText, true
	}
	return "", false
}

// Valid reports whether t is a known tool.
func (t Tool) Valid() bool {
	if t == ToolSelect {
		return true
	}
	_, ok := t.ElementType()
	return ok
}

// gesture holds the bookkeeping of one pointer-down to pointer-up interaction.
type gesture struct {
	elementID     string
	anchor        int
	origin        document.Point // pointer position at gesture start
	last          document.Point // pointer position at the previous move
	orig          document.Element
	startRotation float64
	boxStart      document.Point
	boxEnd        document.Point
	undoDepth     int  // history depth right after the gesture's snapshot
	mutated       bool // the gesture changed at least one element
}
