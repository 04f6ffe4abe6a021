package geometry

import (
	"math"

	"github.com/inamate/sketchpad/internal/document"
)

// StrokeHitThreshold is the maximum distance in pixels between a pointer and
// a line or freehand stroke for the stroke to count as hit.
const StrokeHitThreshold = 8.0

// Contains reports whether p hits the element. The point is mapped into the
// element's unrotated frame before the shape-specific test.
func Contains(p document.Point, e *document.Element) bool {
	if e == nil || len(e.Points) < 2 {
		return false
	}
	local := ToLocal(e, p)

	switch e.Type {
	case document.ElementRectangle, document.ElementText:
		return Bounds(e).Contains(local.X, local.Y)

	case document.ElementEllipse:
		b := Bounds(e)
		rx, ry := b.Width/2, b.Height/2
		if rx == 0 || ry == 0 {
			return false
		}
		c := b.Center()
		dx, dy := (local.X-c.X)/rx, (local.Y-c.Y)/ry
		return dx*dx+dy*dy <= 1

	case document.ElementDiamond:
		b := Bounds(e)
		hw, hh := b.Width/2, b.Height/2
		if hw == 0 || hh == 0 {
			return false
		}
		c := b.Center()
		return math.Abs(local.X-c.X)/hw+math.Abs(local.Y-c.Y)/hh <= 1

	case document.ElementLine:
		a, b := e.Points[0], e.Points[1]
		if a == b {
			return false
		}
		return distToSegment(local, a, b) < StrokeHitThreshold

	case document.ElementFreehand:
		for i := 1; i < len(e.Points); i++ {
			if distToSegment(local, e.Points[i-1], e.Points[i]) < StrokeHitThreshold {
				return true
			}
		}
		return false
	}
	return false
}

// HitTest returns the topmost element containing p, or nil.
// Elements are tested in reverse z-order and the first hit wins.
func HitTest(elements []*document.Element, p document.Point) *document.Element {
	for i := len(elements) - 1; i >= 0; i-- {
		if Contains(p, elements[i]) {
			return elements[i]
		}
	}
	return nil
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b document.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
