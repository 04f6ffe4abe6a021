package engine

import (
	"encoding/json"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/geometry"
)

// Op names a draw operation.
type Op string

const (
	OpRectangle      Op = "rectangle"
	OpEllipse        Op = "ellipse"
	OpDiamond        Op = "diamond"
	OpLine           Op = "line"
	OpPolyline       Op = "polyline"
	OpText           Op = "text"
	OpOutline        Op = "outline"
	OpAnchor         Op = "anchor"
	OpRotationHandle Op = "rotationHandle"
	OpMarquee        Op = "marquee"
)

// DrawCommand represents a single drawing operation for the render surface.
// Shape ops carry the element's unrotated points plus the transform that
// rotates them into place; selection decorations carry canvas-space points
// computed with the same center/rotation math used for hit testing.
type DrawCommand struct {
	Op          Op                  `json:"op"`
	ElementID   string              `json:"elementId,omitempty"`   // For hit correlation
	Transform   []float64           `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Points      []document.Point    `json:"points,omitempty"`      // Shape points or decoration positions
	Stroke      string              `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64             `json:"strokeWidth,omitempty"` // Stroke width
	Text        string              `json:"text,omitempty"`        // For text ops
	AnchorKind  geometry.AnchorKind `json:"anchorKind,omitempty"`  // For anchor ops
	AnchorIndex int                 `json:"anchorIndex"` // For anchor ops
}

// CompileDrawCommands generates a draw command buffer from the document.
// Commands are in painter's order (back to front): every element, then the
// selection decorations, then the marquee if one is given. The element with
// id editingID is skipped because the text overlay draws it.
func CompileDrawCommands(doc *document.Document, editingID string, marquee *geometry.Rect) []DrawCommand {
	if doc == nil {
		return nil
	}

	elements := doc.Elements()
	commands := make([]DrawCommand, 0, len(elements))
	for _, el := range elements {
		if el.ID == editingID {
			continue
		}
		if cmd, ok := compileElement(el); ok {
			commands = append(commands, cmd)
		}
	}

	for _, el := range elements {
		if el.ID == editingID || !doc.IsSelected(el.ID) {
			continue
		}
		compileSelection(el, &commands)
	}

	if marquee != nil {
		commands = append(commands, DrawCommand{
			Op:     OpMarquee,
			Points: []document.Point{marquee.Min(), marquee.Max()},
		})
	}
	return commands
}

// compileElement emits the shape op for one element.
func compileElement(el *document.Element) (DrawCommand, bool) {
	if len(el.Points) < 2 {
		return DrawCommand{}, false
	}
	cmd := DrawCommand{
		ElementID:   el.ID,
		Stroke:      el.Color,
		StrokeWidth: el.StrokeWidth,
	}
	if t := geometry.ElementTransform(el); !t.IsIdentity() {
		cmd.Transform = t.ToSlice()
	}

	b := geometry.Bounds(el)
	box := []document.Point{b.Min(), b.Max()}

	switch el.Type {
	case document.ElementRectangle:
		cmd.Op = OpRectangle
		cmd.Points = box
	case document.ElementEllipse:
		cmd.Op = OpEllipse
		cmd.Points = box
	case document.ElementDiamond:
		cmd.Op = OpDiamond
		cmd.Points = box
	case document.ElementText:
		cmd.Op = OpText
		cmd.Points = box
		cmd.Text = el.Text
	case document.ElementLine:
		cmd.Op = OpLine
		cmd.Points = []document.Point{el.Points[0], el.Points[1]}
	case document.ElementFreehand:
		cmd.Op = OpPolyline
		cmd.Points = make([]document.Point, len(el.Points))
		copy(cmd.Points, el.Points)
	default:
		return DrawCommand{}, false
	}
	return cmd, true
}

// compileSelection emits the outline, anchors and rotation handle of a
// selected element. Freehand strokes get none of them.
func compileSelection(el *document.Element, commands *[]DrawCommand) {
	if el.Type == document.ElementFreehand {
		return
	}

	if el.Type != document.ElementLine {
		outline := geometry.Outline(el)
		*commands = append(*commands, DrawCommand{
			Op:        OpOutline,
			ElementID: el.ID,
			Points:    outline[:],
		})
	}

	for _, a := range geometry.Anchors(el) {
		*commands = append(*commands, DrawCommand{
			Op:          OpAnchor,
			ElementID:   el.ID,
			Points:      []document.Point{a.Pos},
			AnchorKind:  a.Kind,
			AnchorIndex: a.Index,
		})
	}

	if handle, ok := geometry.RotationHandle(el); ok {
		b := geometry.Bounds(el)
		stem := geometry.RotatePoint(document.Point{X: b.X + b.Width/2, Y: b.Y}, b.Center(), geometry.Angle(el))
		*commands = append(*commands, DrawCommand{
			Op:        OpRotationHandle,
			ElementID: el.ID,
			Points:    []document.Point{handle, stem},
		})
	}
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
