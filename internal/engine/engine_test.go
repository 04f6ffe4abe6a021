package engine

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/geometry"
)

const eps = 1e-9

func pt(x, y float64) document.Point { return document.Point{X: x, Y: y} }

type recordingSurface struct {
	draws int
	last  []DrawCommand
}

func (s *recordingSurface) Draw(commands []DrawCommand) {
	s.draws++
	s.last = commands
}

type recordingEditor struct {
	opened []TextOverlay
	closed []string
}

func (r *recordingEditor) OpenText(o TextOverlay)  { r.opened = append(r.opened, o) }
func (r *recordingEditor) CloseText(id string)     { r.closed = append(r.closed, id) }
func (r *recordingEditor) isOpen() bool            { return len(r.opened) > len(r.closed) }
func (r *recordingEditor) lastOpened() TextOverlay { return r.opened[len(r.opened)-1] }

type fixture struct {
	eng     *Engine
	surface *recordingSurface
	editor  *recordingEditor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	n := 0
	f := &fixture{surface: &recordingSurface{}, editor: &recordingEditor{}}
	f.eng = New(
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithSurface(f.surface),
		WithTextEditor(f.editor),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("el%d", n)
		}),
	)
	return f
}

// draw authors a shape with the given tool from a to b and returns its id.
func (f *fixture) draw(tool Tool, a, b document.Point) string {
	f.eng.SetTool(tool)
	f.eng.PointerDown(a)
	f.eng.PointerMove(b)
	f.eng.PointerUp(b)
	id := f.eng.doc.Elements()[f.eng.doc.Len()-1].ID
	if f.eng.State() == StateEditingText {
		f.eng.CommitText("text")
	}
	return id
}

func (f *fixture) drag(from, to document.Point) {
	f.eng.PointerDown(from)
	f.eng.PointerMove(to)
	f.eng.PointerUp(to)
}

func (f *fixture) element(t *testing.T, id string) document.Element {
	t.Helper()
	el, ok := f.eng.Element(id)
	if !ok {
		t.Fatalf("element %s missing", id)
	}
	return el
}

func TestDrawRectangle(t *testing.T) {
	f := newFixture(t)
	f.eng.SetColor("#ff0000")
	f.eng.SetStrokeWidth(3)
	f.eng.SetTool(ToolRectangle)

	f.eng.PointerDown(pt(10, 10))
	if f.eng.State() != StateDrawing {
		t.Fatalf("State() = %s, want drawing", f.eng.State())
	}
	f.eng.PointerMove(pt(50, 40))
	f.eng.PointerMove(pt(100, 80))
	f.eng.PointerUp(pt(100, 80))

	els := f.eng.Elements()
	if len(els) != 1 {
		t.Fatalf("len(Elements()) = %d, want 1", len(els))
	}
	el := els[0]
	if el.Type != document.ElementRectangle || el.Color != "#ff0000" || el.StrokeWidth != 3 || el.Rotation != 0 {
		t.Errorf("unexpected element %+v", el)
	}
	if len(el.Points) != 2 || el.Points[0] != pt(10, 10) || el.Points[1] != pt(100, 80) {
		t.Errorf("Points = %v, want [(10,10) (100,80)]", el.Points)
	}
	if sel := f.eng.Selection(); len(sel) != 1 || sel[0] != el.ID {
		t.Errorf("Selection() = %v, want [%s]", sel, el.ID)
	}
	if f.eng.State() != StateIdle || f.eng.Tool() != ToolSelect {
		t.Errorf("after up: state=%s tool=%s, want idle/select", f.eng.State(), f.eng.Tool())
	}

	f.eng.Undo()
	if len(f.eng.Elements()) != 0 {
		t.Error("one undo should remove the whole drawing gesture")
	}
}

func TestFreehandAppendOnly(t *testing.T) {
	f := newFixture(t)
	f.eng.SetTool(ToolFreehand)
	f.eng.PointerDown(pt(0, 0))
	id := f.eng.doc.Elements()[0].ID

	prev := len(f.element(t, id).Points)
	for i := 1; i <= 20; i++ {
		f.eng.PointerMove(pt(float64(i), float64(i*i)))
		n := len(f.element(t, id).Points)
		if n != prev+1 {
			t.Fatalf("move %d: %d points, want %d", i, n, prev+1)
		}
		prev = n
	}
	f.eng.PointerUp(pt(20, 400))

	if len(f.eng.Selection()) != 0 {
		t.Errorf("freehand stroke was selected: %v", f.eng.Selection())
	}
	if f.eng.Tool() != ToolFreehand {
		t.Errorf("Tool() = %s, want freehand to stay active", f.eng.Tool())
	}
	if got := len(f.element(t, id).Points); got != prev {
		t.Errorf("pointer up changed point count to %d", got)
	}
}

func TestMultiSelectDrag(t *testing.T) {
	f := newFixture(t)
	a := f.draw(ToolRectangle, pt(0, 0), pt(10, 10))
	b := f.draw(ToolEllipse, pt(20, 20), pt(30, 30))
	c := f.draw(ToolRectangle, pt(100, 100), pt(120, 120))

	// Marquee over a and b.
	f.drag(pt(-5, -5), pt(25, 25))
	if sel := f.eng.Selection(); len(sel) != 2 || sel[0] != a || sel[1] != b {
		t.Fatalf("Selection() = %v, want [%s %s]", sel, a, b)
	}

	beforeA, beforeB, beforeC := f.element(t, a), f.element(t, b), f.element(t, c)
	undoDepth, _ := f.eng.history.Depth()

	f.eng.PointerDown(pt(5, 5))
	if f.eng.State() != StateDragging {
		t.Fatalf("State() = %s, want dragging", f.eng.State())
	}
	f.eng.PointerMove(pt(8, 9))
	f.eng.PointerMove(pt(12, 2))
	f.eng.PointerMove(pt(17, 12))
	f.eng.PointerUp(pt(17, 12))

	dx, dy := 12.0, 7.0
	for _, tc := range []struct {
		before document.Element
		moved  bool
	}{{beforeA, true}, {beforeB, true}, {beforeC, false}} {
		after := f.element(t, tc.before.ID)
		for i := range after.Points {
			want := tc.before.Points[i]
			if tc.moved {
				want = want.Add(dx, dy)
			}
			if math.Abs(after.Points[i].X-want.X) > eps || math.Abs(after.Points[i].Y-want.Y) > eps {
				t.Errorf("%s point %d = %v, want %v", tc.before.ID, i, after.Points[i], want)
			}
		}
	}
	if sel := f.eng.Selection(); len(sel) != 2 {
		t.Errorf("drag collapsed the multi-selection: %v", sel)
	}
	if got, _ := f.eng.history.Depth(); got != undoDepth+1 {
		t.Errorf("drag pushed %d undo steps, want 1", got-undoDepth)
	}

	f.eng.Undo()
	if got := f.element(t, a); got.Points[0] != beforeA.Points[0] {
		t.Errorf("undo did not restore drag: %v", got.Points)
	}
}

func TestClickCollapsesSelection(t *testing.T) {
	f := newFixture(t)
	a := f.draw(ToolRectangle, pt(0, 0), pt(10, 10))
	b := f.draw(ToolRectangle, pt(20, 20), pt(30, 30))
	c := f.draw(ToolRectangle, pt(50, 50), pt(60, 60))

	f.eng.SelectAll()
	if len(f.eng.Selection()) != 3 {
		t.Fatalf("SelectAll selected %v", f.eng.Selection())
	}
	f.eng.SetSelection([]string{a, b})
	f.drag(pt(55, 55), pt(55, 55))
	if sel := f.eng.Selection(); len(sel) != 1 || sel[0] != c {
		t.Errorf("Selection() = %v, want [%s]", sel, c)
	}
}

func TestBoxSelectingLifecycle(t *testing.T) {
	f := newFixture(t)
	a := f.draw(ToolRectangle, pt(0, 0), pt(10, 10))
	f.draw(ToolRectangle, pt(20, 20), pt(30, 30))
	f.eng.history.Reset()

	f.eng.PointerDown(pt(40, 40))
	if f.eng.State() != StateBoxSelecting || len(f.eng.Selection()) != 0 {
		t.Fatalf("state=%s selection=%v", f.eng.State(), f.eng.Selection())
	}
	f.eng.PointerMove(pt(25, 25))
	if len(f.eng.Selection()) != 1 {
		t.Errorf("live selection = %v, want one element", f.eng.Selection())
	}
	if last := f.surface.last[len(f.surface.last)-1]; last.Op != OpMarquee {
		t.Errorf("last draw op = %s, want marquee", last.Op)
	}
	f.eng.PointerMove(pt(5, 5))
	f.eng.PointerUp(pt(5, 5))

	if sel := f.eng.Selection(); len(sel) != 2 || sel[0] != a {
		t.Errorf("final selection = %v", sel)
	}
	if f.eng.State() != StateIdle {
		t.Errorf("State() = %s, want idle", f.eng.State())
	}
	for _, cmd := range f.eng.Render() {
		if cmd.Op == OpMarquee {
			t.Error("marquee still rendered after pointer up")
		}
	}
	if f.eng.CanUndo() {
		t.Error("box selection pushed a history step")
	}
}

func TestResizeGesture(t *testing.T) {
	f := newFixture(t)
	id := f.draw(ToolRectangle, pt(100, 50), pt(0, 0))

	f.eng.PointerDown(pt(100, 50))
	if f.eng.State() != StateResizing {
		t.Fatalf("State() = %s, want resizing", f.eng.State())
	}
	f.eng.PointerMove(pt(150, 90))
	f.eng.PointerMove(pt(200, 120))
	f.eng.PointerUp(pt(200, 120))

	el := f.element(t, id)
	if el.Points[0] != pt(0, 0) || el.Points[1] != pt(200, 120) {
		t.Errorf("Points = %v, want [(0,0) (200,120)]", el.Points)
	}

	f.eng.Undo()
	el = f.element(t, id)
	if el.Points[0] != pt(100, 50) || el.Points[1] != pt(0, 0) {
		t.Errorf("undo restored %v", el.Points)
	}
}

func TestRotateGesture(t *testing.T) {
	f := newFixture(t)
	id := f.draw(ToolRectangle, pt(0, 0), pt(100, 50))

	handle, _ := geometry.RotationHandle(f.eng.doc.Get(id))
	f.eng.PointerDown(handle)
	if f.eng.State() != StateRotating {
		t.Fatalf("State() = %s, want rotating", f.eng.State())
	}
	// Wander around, then settle a quarter turn clockwise from the handle.
	f.eng.PointerMove(pt(120, -40))
	f.eng.PointerMove(pt(-30, 90))
	f.eng.PointerMove(pt(105, 25))
	f.eng.PointerUp(pt(105, 25))

	el := f.element(t, id)
	if math.Abs(el.Rotation-math.Pi/2) > eps {
		t.Errorf("Rotation = %v, want pi/2", el.Rotation)
	}
	if el.Points[0] != pt(0, 0) || el.Points[1] != pt(100, 50) {
		t.Errorf("rotation changed stored points: %v", el.Points)
	}

	// A pointer on the center leaves the rotation untouched.
	handle, _ = geometry.RotationHandle(f.eng.doc.Get(id))
	f.eng.PointerDown(handle)
	f.eng.PointerMove(pt(50, 25))
	f.eng.PointerUp(pt(50, 25))
	if got := f.element(t, id).Rotation; math.Abs(got-math.Pi/2) > eps || math.IsNaN(got) {
		t.Errorf("degenerate rotate changed rotation to %v", got)
	}
}

func TestDeleteKey(t *testing.T) {
	f := newFixture(t)
	a := f.draw(ToolRectangle, pt(0, 0), pt(10, 10))
	b := f.draw(ToolLine, pt(20, 20), pt(30, 30))
	f.eng.SetSelection([]string{a, b})

	f.eng.KeyDown(KeyEvent{Key: "Delete"})
	if len(f.eng.Elements()) != 0 || len(f.eng.Selection()) != 0 {
		t.Fatalf("delete left %d elements, selection %v", len(f.eng.Elements()), f.eng.Selection())
	}

	f.eng.KeyDown(KeyEvent{Key: "z", Ctrl: true})
	if len(f.eng.Elements()) != 2 {
		t.Errorf("Ctrl+Z restored %d elements, want 2", len(f.eng.Elements()))
	}
	f.eng.KeyDown(KeyEvent{Key: "Z", Meta: true, Shift: true})
	if len(f.eng.Elements()) != 0 {
		t.Errorf("Cmd+Shift+Z left %d elements, want 0", len(f.eng.Elements()))
	}
	f.eng.KeyDown(KeyEvent{Key: "z", Meta: true})
	f.eng.KeyDown(KeyEvent{Key: "y", Ctrl: true})
	if len(f.eng.Elements()) != 0 {
		t.Errorf("Ctrl+Y left %d elements, want 0", len(f.eng.Elements()))
	}

	// Backspace with nothing selected is a no-op and pushes no history.
	depth, _ := f.eng.history.Depth()
	f.eng.KeyDown(KeyEvent{Key: "Backspace"})
	if got, _ := f.eng.history.Depth(); got != depth {
		t.Error("backspace with empty selection pushed history")
	}
}

func TestUndoThenNewGestureClearsRedo(t *testing.T) {
	f := newFixture(t)
	f.draw(ToolRectangle, pt(0, 0), pt(10, 10))
	f.draw(ToolRectangle, pt(20, 20), pt(30, 30))
	f.eng.Undo()
	if !f.eng.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}
	f.draw(ToolDiamond, pt(40, 40), pt(50, 50))
	if f.eng.CanRedo() {
		t.Error("CanRedo() = true after a new gesture")
	}
	before := len(f.eng.Elements())
	f.eng.Redo()
	if len(f.eng.Elements()) != before {
		t.Error("Redo() changed the canvas after the redo stack was cleared")
	}
}

func TestTextAuthoring(t *testing.T) {
	f := newFixture(t)
	f.eng.SetTool(ToolText)
	f.eng.PointerDown(pt(10, 10))
	f.eng.PointerMove(pt(110, 40))
	f.eng.PointerUp(pt(110, 40))

	if f.eng.State() != StateEditingText {
		t.Fatalf("State() = %s, want editingText", f.eng.State())
	}
	if !f.editor.isOpen() {
		t.Fatal("text overlay not opened")
	}
	o := f.editor.lastOpened()
	if o.X != 10 || o.Y != 10 || o.Width != 100 || o.Height != 30 {
		t.Errorf("overlay = %+v", o)
	}
	for _, cmd := range f.surface.last {
		if cmd.ElementID == o.ElementID {
			t.Errorf("edited element rendered while overlay is open: %s", cmd.Op)
		}
	}

	// Undo, redo and delete belong to the overlay while editing.
	f.eng.KeyDown(KeyEvent{Key: "z", Ctrl: true})
	f.eng.Undo()
	f.eng.KeyDown(KeyEvent{Key: "Backspace"})
	if _, ok := f.eng.Element(o.ElementID); !ok {
		t.Fatal("element removed while editing")
	}

	f.eng.CommitText("hello\nworld")
	if f.eng.State() != StateIdle || f.editor.isOpen() {
		t.Fatalf("after commit: state=%s open=%v", f.eng.State(), f.editor.isOpen())
	}
	if got := f.element(t, o.ElementID).Text; got != "hello\nworld" {
		t.Errorf("Text = %q", got)
	}
	found := false
	for _, cmd := range f.eng.Render() {
		if cmd.Op == OpText && cmd.ElementID == o.ElementID {
			found = cmd.Text == "hello\nworld"
		}
	}
	if !found {
		t.Error("committed text not rendered")
	}

	f.eng.Undo()
	if len(f.eng.Elements()) != 0 {
		t.Error("one undo should remove the authored text element")
	}
}

func TestTextEditExisting(t *testing.T) {
	f := newFixture(t)
	id := f.draw(ToolText, pt(0, 0), pt(100, 30)) // committed as "text"

	f.eng.DoubleClick(pt(50, 15))
	if f.eng.State() != StateEditingText {
		t.Fatalf("State() = %s, want editingText", f.eng.State())
	}
	if got := f.editor.lastOpened().Text; got != "text" {
		t.Errorf("overlay initial text = %q", got)
	}
	f.eng.CommitText("changed")
	if got := f.element(t, id).Text; got != "changed" {
		t.Fatalf("Text = %q", got)
	}
	f.eng.Undo()
	if got := f.element(t, id).Text; got != "text" {
		t.Errorf("undo restored %q, want %q", got, "text")
	}

	f.eng.DoubleClick(pt(50, 15))
	f.eng.KeyDown(KeyEvent{Key: "Escape"})
	if f.eng.State() != StateIdle || f.element(t, id).Text != "text" {
		t.Error("escape should cancel without changes")
	}
}

func TestEmptyTextIsRemoved(t *testing.T) {
	f := newFixture(t)
	f.eng.SetTool(ToolText)
	f.eng.PointerDown(pt(0, 0))
	f.eng.PointerUp(pt(0, 0))
	f.eng.CommitText("")
	if len(f.eng.Elements()) != 0 {
		t.Errorf("empty text element kept: %+v", f.eng.Elements())
	}

	// Clicking away from a fresh, untouched text box discards it too.
	f.eng.SetTool(ToolText)
	f.eng.PointerDown(pt(0, 0))
	f.eng.PointerUp(pt(0, 0))
	f.eng.PointerDown(pt(500, 500))
	f.eng.PointerUp(pt(500, 500))
	if len(f.eng.Elements()) != 0 {
		t.Errorf("abandoned text element kept: %+v", f.eng.Elements())
	}
}

func TestIdleMoveDoesNothing(t *testing.T) {
	f := newFixture(t)
	f.eng.PointerMove(pt(10, 10))
	f.eng.PointerUp(pt(10, 10))
	if f.surface.draws != 0 {
		t.Errorf("surface drawn %d times outside a gesture", f.surface.draws)
	}
}

func TestUndoMidGesture(t *testing.T) {
	f := newFixture(t)
	id := f.draw(ToolRectangle, pt(0, 0), pt(100, 100))

	f.eng.PointerDown(pt(50, 50))
	f.eng.PointerMove(pt(60, 50))
	f.eng.Undo() // reverts the drag's pre-gesture snapshot
	f.eng.PointerMove(pt(70, 50))
	f.eng.PointerUp(pt(70, 50))

	el := f.element(t, id)
	if el.Points[0] != pt(10, 0) {
		t.Errorf("Points[0] = %v, want (10,0): moves continue from the restored state", el.Points[0])
	}
}

func TestStaleElementIsNoOp(t *testing.T) {
	f := newFixture(t)
	id := f.draw(ToolRectangle, pt(0, 0), pt(100, 100))

	f.eng.PointerDown(pt(100, 100))
	if f.eng.State() != StateResizing {
		t.Fatalf("State() = %s, want resizing", f.eng.State())
	}
	f.eng.doc.Delete(id)
	f.eng.PointerMove(pt(200, 200))
	f.eng.PointerUp(pt(200, 200))
	if f.eng.State() != StateIdle {
		t.Errorf("State() = %s, want idle", f.eng.State())
	}
}

func TestRenderSelectionDecorations(t *testing.T) {
	f := newFixture(t)
	rect := f.draw(ToolRectangle, pt(0, 0), pt(100, 50))
	line := f.draw(ToolLine, pt(200, 0), pt(300, 50))
	f.eng.SetTool(ToolFreehand)
	f.eng.PointerDown(pt(0, 200))
	f.eng.PointerMove(pt(50, 250))
	f.eng.PointerUp(pt(50, 250))
	stroke := f.eng.doc.Elements()[2].ID

	f.eng.SelectAll()
	counts := map[string]map[Op]int{}
	for _, cmd := range f.eng.Render() {
		if counts[cmd.ElementID] == nil {
			counts[cmd.ElementID] = map[Op]int{}
		}
		counts[cmd.ElementID][cmd.Op]++
	}

	tests := []struct {
		id                         string
		outline, anchors, handles int
	}{
		{rect, 1, 8, 1},
		{line, 0, 2, 1},
		{stroke, 0, 0, 0},
	}
	for _, tt := range tests {
		c := counts[tt.id]
		if c[OpOutline] != tt.outline || c[OpAnchor] != tt.anchors || c[OpRotationHandle] != tt.handles {
			t.Errorf("%s: outline=%d anchors=%d handles=%d, want %d/%d/%d",
				tt.id, c[OpOutline], c[OpAnchor], c[OpRotationHandle], tt.outline, tt.anchors, tt.handles)
		}
	}
	if counts[stroke][OpPolyline] != 1 {
		t.Error("freehand stroke not rendered as polyline")
	}
}

func TestRenderAnchorsMatchHitTest(t *testing.T) {
	f := newFixture(t)
	id := f.draw(ToolDiamond, pt(0, 0), pt(100, 60))
	f.eng.doc.Get(id).Rotation = 0.6

	for _, cmd := range f.eng.Render() {
		if cmd.Op != OpAnchor {
			continue
		}
		if got := geometry.HitAnchor(f.eng.doc.Get(id), cmd.Points[0]); got != cmd.AnchorIndex {
			t.Errorf("rendered anchor %d at %v hit-tests as %d", cmd.AnchorIndex, cmd.Points[0], got)
		}
	}
}

func TestAnchorZeroIsSerialized(t *testing.T) {
	f := newFixture(t)
	f.draw(ToolRectangle, pt(0, 0), pt(100, 60))

	var first []DrawCommand
	for _, cmd := range f.eng.Render() {
		if cmd.Op == OpAnchor && cmd.AnchorIndex == 0 {
			first = append(first, cmd)
		}
	}
	if len(first) != 1 {
		t.Fatalf("found %d commands for anchor 0, want 1", len(first))
	}
	out, err := DrawCommandsToJSON(first)
	if err != nil {
		t.Fatalf("DrawCommandsToJSON() error = %v", err)
	}
	if !strings.Contains(out, `"anchorIndex":0`) {
		t.Errorf("DrawCommandsToJSON() = %s, want anchorIndex 0 present", out)
	}
}

func TestSelectionStyle(t *testing.T) {
	f := newFixture(t)
	a := f.draw(ToolRectangle, pt(0, 0), pt(10, 10))
	f.eng.SetSelectionColor("#00ff00")
	f.eng.SetSelectionStrokeWidth(7)
	el := f.element(t, a)
	if el.Color != "#00ff00" || el.StrokeWidth != 7 {
		t.Errorf("style = %s/%v", el.Color, el.StrokeWidth)
	}
	if f.eng.Color() != "#00ff00" || f.eng.StrokeWidth() != 7 {
		t.Error("selection style should also become the current style")
	}
	f.eng.Undo()
	if got := f.element(t, a).StrokeWidth; got == 7 {
		t.Error("undo did not revert stroke width")
	}
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	f.draw(ToolRectangle, pt(0, 0), pt(10, 10))
	f.eng.SelectAll()
	f.eng.Clear()
	if len(f.eng.Elements()) != 0 || len(f.eng.Selection()) != 0 {
		t.Error("Clear() left elements or selection")
	}
	f.eng.Undo()
	if len(f.eng.Elements()) != 1 {
		t.Error("undo did not restore cleared canvas")
	}
}

func TestLoadElementsSkipsInvalid(t *testing.T) {
	f := newFixture(t)
	dup := func(x float64) document.Element {
		el := document.NewElement("dup", document.ElementRectangle, pt(x, x), "#000000", 1)
		el.Points[1] = pt(x+10, x+10)
		return el
	}
	f.eng.LoadElements([]document.Element{
		dup(0),
		dup(100),
		{ID: "", Type: "bogus", Points: []document.Point{pt(0, 0), pt(1, 1)}},
	})

	els := f.eng.Elements()
	if len(els) != 1 || els[0].ID != "dup" || els[0].Points[0] != pt(0, 0) {
		t.Fatalf("Elements() after load = %+v, want the first dup only", els)
	}

	f.eng.SelectAll()
	f.eng.DeleteSelection()
	if n := len(f.eng.Elements()); n != 0 {
		t.Errorf("len(Elements()) = %d after delete all, want 0", n)
	}
	if id := f.eng.HitTest(105, 105); id != "" {
		t.Errorf("HitTest() = %q on the dropped duplicate, want none", id)
	}
}

func TestClickWithoutChangeAddsNoUndoStep(t *testing.T) {
	tests := []struct {
		name      string
		at        document.Point
		wantState State
	}{
		{name: "body", at: pt(50, 50), wantState: StateDragging},
		{name: "anchor", at: pt(100, 100), wantState: StateResizing},
		{name: "rotation handle", at: pt(50, -30), wantState: StateRotating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := f.draw(ToolRectangle, pt(0, 0), pt(100, 100))
			before, _ := f.eng.history.Depth()

			f.eng.PointerDown(tt.at)
			if f.eng.State() != tt.wantState {
				t.Fatalf("State() = %s, want %s", f.eng.State(), tt.wantState)
			}
			f.eng.PointerMove(tt.at)
			f.eng.PointerUp(tt.at)

			if after, _ := f.eng.history.Depth(); after != before {
				t.Errorf("undo depth = %d after a plain click, want %d", after, before)
			}
			f.eng.Undo()
			if _, ok := f.eng.Element(id); ok {
				t.Errorf("Undo() after a plain click did not undo the drawing")
			}
		})
	}
}
