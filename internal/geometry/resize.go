package geometry

import (
	"math"

	"github.com/inamate/sketchpad/internal/document"
)

// MinSize is the smallest width or height a box shape can be resized to.
const MinSize = 10.0

// Resize computes the points an element would have after dragging anchor to
// p, starting from orig (the element as it was when the gesture began).
//
// Box shapes keep the opposite anchor fixed and return (min-corner,
// max-corner). Lines move one endpoint and keep the other. For rotated
// elements p is mapped into the element's local frame, the same solve runs
// there, and the result is translated so the fixed anchor stays put on the
// canvas. The returned points are always unrotated.
//
// ok is false for freehand strokes, unknown anchors or non-finite results.
func Resize(orig *document.Element, anchor int, p document.Point) (points []document.Point, ok bool) {
	if orig == nil || len(orig.Points) < 2 {
		return nil, false
	}
	c0 := Center(orig)
	theta := Angle(orig)
	local := UnrotatePoint(p, c0, theta)

	var fixed document.Point
	switch orig.Type {
	case document.ElementLine:
		if anchor != AnchorLineStart && anchor != AnchorLineEnd {
			return nil, false
		}
		fixed = orig.Points[1-anchor]
		points = []document.Point{orig.Points[0], orig.Points[1]}
		points[anchor] = local

	case document.ElementRectangle, document.ElementEllipse, document.ElementDiamond, document.ElementText:
		if anchor < 0 || anchor > 7 {
			return nil, false
		}
		box := Bounds(orig)
		fixed = boxAnchorPoints(box)[Opposite(anchor)]
		lo, hi := resizeBox(box, anchor, local)
		points = []document.Point{lo, hi}

	default:
		return nil, false
	}

	if theta != 0 {
		before := RotatePoint(fixed, c0, theta)
		c1 := RectFromCorners(points[0], points[1]).Center()
		after := RotatePoint(fixed, c1, theta)
		dx, dy := before.X-after.X, before.Y-after.Y
		for i := range points {
			points[i] = points[i].Add(dx, dy)
		}
	}

	for _, q := range points {
		if !finite(q.X) || !finite(q.Y) {
			return nil, false
		}
	}
	return points, true
}

// resizeBox moves the sides of box controlled by anchor to p. A moving side
// never crosses the fixed side and stays at least MinSize away from it.
func resizeBox(box Rect, anchor int, p document.Point) (document.Point, document.Point) {
	minX, minY := box.X, box.Y
	maxX, maxY := box.X+box.Width, box.Y+box.Height

	switch anchor {
	case AnchorTopLeft, AnchorLeft, AnchorBottomLeft:
		minX = math.Min(p.X, maxX-MinSize)
	case AnchorTopRight, AnchorRight, AnchorBottomRight:
		maxX = math.Max(p.X, minX+MinSize)
	}
	switch anchor {
	case AnchorTopLeft, AnchorTop, AnchorTopRight:
		minY = math.Min(p.Y, maxY-MinSize)
	case AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
		maxY = math.Max(p.Y, minY+MinSize)
	}
	return document.Point{X: minX, Y: minY}, document.Point{X: maxX, Y: maxY}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
