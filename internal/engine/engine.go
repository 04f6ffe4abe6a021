package engine

import (
	"log/slog"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/geometry"
	"github.com/inamate/sketchpad/internal/history"
	"github.com/inamate/sketchpad/internal/typeid"
)

// Surface receives the draw command buffer after every change.
type Surface interface {
	Draw(commands []DrawCommand)
}

// TextEditor is the text-entry overlay shown while a text element is edited.
// The engine opens it and closes it; the overlay reports the final string
// back through Engine.CommitText.
type TextEditor interface {
	OpenText(overlay TextOverlay)
	CloseText(elementID string)
}

const (
	defaultColor       = "#1e1e1e"
	defaultStrokeWidth = 2
)

// Engine is the interaction state machine. It owns the document, the
// selection and the undo history, and is their only writer. All methods are
// meant to be called from a single goroutine, one event at a time.
type Engine struct {
	doc     *document.Document
	history *history.Manager
	log     *slog.Logger

	surface Surface
	editor  TextEditor
	newID   func() string

	// Tool/style state (written by the toolbar collaborator)
	tool        Tool
	color       string
	strokeWidth float64

	state   State
	gesture gesture

	// Text editing
	editingID    string
	editingFresh bool // element was created by the gesture that opened the editor
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for gesture tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithSurface sets the render surface notified after each change.
func WithSurface(s Surface) Option {
	return func(e *Engine) { e.surface = s }
}

// WithTextEditor sets the text-entry overlay collaborator.
func WithTextEditor(t TextEditor) Option {
	return func(e *Engine) { e.editor = t }
}

// WithIDGenerator overrides the element id generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// WithHistoryLimit caps the number of undo steps kept.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) { e.history = history.NewManager(n) }
}

// WithDocument starts the engine from an existing document.
func WithDocument(doc *document.Document) Option {
	return func(e *Engine) {
		if doc != nil {
			e.doc = doc
		}
	}
}

// New creates a new engine instance.
func New(opts ...Option) *Engine {
	e := &Engine{
		doc:         document.New(),
		history:     history.NewManager(history.DefaultLimit),
		log:         slog.Default(),
		newID:       typeid.NewElementID,
		tool:        ToolSelect,
		color:       defaultColor,
		strokeWidth: defaultStrokeWidth,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// --- Tool / style state ---

// SetTool changes the active tool. Unknown tools are ignored.
func (e *Engine) SetTool(t Tool) {
	if !t.Valid() {
		return
	}
	e.tool = t
}

// SetColor sets the color used for new elements.
func (e *Engine) SetColor(color string) {
	e.color = color
}

// SetStrokeWidth sets the stroke width used for new elements.
// Non-positive widths are ignored.
func (e *Engine) SetStrokeWidth(w float64) {
	if w <= 0 {
		return
	}
	e.strokeWidth = w
}

// SetSelectionColor sets the current color and applies it to every selected
// element as one undo step.
func (e *Engine) SetSelectionColor(color string) {
	e.SetColor(color)
	if e.state != StateIdle || e.doc.SelectionLen() == 0 {
		return
	}
	e.history.Push(e.doc)
	for _, id := range e.doc.Selection() {
		e.doc.Update(id, document.Patch{Color: &color})
	}
	e.render()
}

// SetSelectionStrokeWidth sets the current stroke width and applies it to
// every selected element as one undo step.
func (e *Engine) SetSelectionStrokeWidth(w float64) {
	if w <= 0 {
		return
	}
	e.SetStrokeWidth(w)
	if e.state != StateIdle || e.doc.SelectionLen() == 0 {
		return
	}
	e.history.Push(e.doc)
	for _, id := range e.doc.Selection() {
		e.doc.Update(id, document.Patch{StrokeWidth: &w})
	}
	e.render()
}

// --- Document-level commands ---

// LoadElements replaces the whole canvas and drops selection and history.
func (e *Engine) LoadElements(elements []document.Element) {
	e.endTextEdit()
	e.doc.Restore(elements)
	e.doc.ClearSelection()
	e.history.Reset()
	e.state = StateIdle
	e.gesture = gesture{}
	e.render()
}

// Clear empties the canvas and the selection as one undo step.
func (e *Engine) Clear() {
	e.endTextEdit()
	if e.doc.Len() == 0 {
		return
	}
	e.history.Push(e.doc)
	e.doc.Clear()
	e.state = StateIdle
	e.render()
}

// Undo reverts the last gesture. Ignored while a text element is edited.
func (e *Engine) Undo() {
	if e.state == StateEditingText {
		return
	}
	if e.history.Undo(e.doc) {
		e.log.Debug("undo", "elements", e.doc.Len())
		e.render()
	}
}

// Redo re-applies the last undone gesture. Ignored while a text element is edited.
func (e *Engine) Redo() {
	if e.state == StateEditingText {
		return
	}
	if e.history.Redo(e.doc) {
		e.log.Debug("redo", "elements", e.doc.Len())
		e.render()
	}
}

// DeleteSelection removes every selected element as one undo step.
func (e *Engine) DeleteSelection() {
	if e.state == StateEditingText || e.doc.SelectionLen() == 0 {
		return
	}
	e.history.Push(e.doc)
	for _, id := range e.doc.Selection() {
		e.doc.Delete(id)
	}
	e.doc.ClearSelection()
	e.render()
}

// SelectAll selects every element on the canvas.
func (e *Engine) SelectAll() {
	if e.state != StateIdle {
		return
	}
	ids := make([]string, 0, e.doc.Len())
	for _, el := range e.doc.Elements() {
		ids = append(ids, el.ID)
	}
	e.doc.Select(ids...)
	e.render()
}

// SetSelection replaces the selection. Unknown ids are skipped.
func (e *Engine) SetSelection(ids []string) {
	if e.state != StateIdle {
		return
	}
	e.doc.Select(ids...)
	e.render()
}

// --- Queries ---

// State returns the current interaction state.
func (e *Engine) State() State { return e.state }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// Color returns the color used for new elements.
func (e *Engine) Color() string { return e.color }

// StrokeWidth returns the stroke width used for new elements.
func (e *Engine) StrokeWidth() float64 { return e.strokeWidth }

// Elements returns deep copies of all elements in z-order.
func (e *Engine) Elements() []document.Element {
	return e.doc.Snapshot()
}

// Element returns a copy of the element with the given id.
func (e *Engine) Element(id string) (document.Element, bool) {
	el := e.doc.Get(id)
	if el == nil {
		return document.Element{}, false
	}
	return el.Clone(), true
}

// Selection returns the selected ids in z-order.
func (e *Engine) Selection() []string {
	return e.doc.Selection()
}

// HitTest returns the id of the topmost element under (x, y), or "".
func (e *Engine) HitTest(x, y float64) string {
	if hit := geometry.HitTest(e.doc.Elements(), document.Point{X: x, Y: y}); hit != nil {
		return hit.ID
	}
	return ""
}

// SelectionBounds returns the unrotated bounding box around the selection.
func (e *Engine) SelectionBounds() geometry.Rect {
	selected := make([]*document.Element, 0, e.doc.SelectionLen())
	for _, id := range e.doc.Selection() {
		selected = append(selected, e.doc.Get(id))
	}
	return geometry.SelectionBounds(selected)
}

// CanUndo reports whether there is a gesture to undo.
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether there is a gesture to redo.
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// Render compiles the current canvas into draw commands.
func (e *Engine) Render() []DrawCommand {
	var marquee *geometry.Rect
	if e.state == StateBoxSelecting {
		r := geometry.RectFromCorners(e.gesture.boxStart, e.gesture.boxEnd)
		marquee = &r
	}
	editing := ""
	if e.state == StateEditingText {
		editing = e.editingID
	}
	return CompileDrawCommands(e.doc, editing, marquee)
}

func (e *Engine) render() {
	if e.surface == nil {
		return
	}
	e.surface.Draw(e.Render())
}
