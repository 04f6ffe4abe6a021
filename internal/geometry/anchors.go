package geometry

import (
	"math"

	"github.com/inamate/sketchpad/internal/document"
)

const (
	// AnchorHitRadius is the half-size of a corner anchor's square hit region
	// and the radius of an edge or endpoint anchor's circular one.
	AnchorHitRadius = 8.0
	// RotationHandleOffset is the distance of the rotation handle above the
	// top edge of the unrotated bounding box.
	RotationHandleOffset = 30.0
	// RotationHandleRadius is the hit radius of the rotation handle.
	RotationHandleRadius = 10.0
)

// Box anchor indices, clockwise from the top-left corner.
// The anchor opposite index i is (i+4) mod 8.
const (
	AnchorTopLeft = iota
	AnchorTop
	AnchorTopRight
	AnchorRight
	AnchorBottomRight
	AnchorBottom
	AnchorBottomLeft
	AnchorLeft
)

// Line anchor indices.
const (
	AnchorLineStart = 0
	AnchorLineEnd   = 1
)

// NoAnchor is returned when no anchor is under the pointer.
const NoAnchor = -1

type AnchorKind string

const (
	AnchorCorner   AnchorKind = "corner"
	AnchorEdge     AnchorKind = "edge"
	AnchorEndpoint AnchorKind = "endpoint"
)

// Anchor is a resize handle in canvas space.
type Anchor struct {
	Index int            `json:"index"`
	Kind  AnchorKind     `json:"kind"`
	Pos   document.Point `json:"pos"`
}

// Opposite returns the index of the anchor held fixed while dragging i.
func Opposite(i int) int {
	return (i + 4) % 8
}

// boxAnchorPoints returns the 8 anchor positions of r in its own frame.
func boxAnchorPoints(r Rect) [8]document.Point {
	minX, minY := r.X, r.Y
	maxX, maxY := r.X+r.Width, r.Y+r.Height
	midX, midY := r.X+r.Width/2, r.Y+r.Height/2
	return [8]document.Point{
		{X: minX, Y: minY},
		{X: midX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: midY},
		{X: maxX, Y: maxY},
		{X: midX, Y: maxY},
		{X: minX, Y: maxY},
		{X: minX, Y: midY},
	}
}

func isCorner(i int) bool {
	return i%2 == 0
}

// LocalAnchors returns the element's anchors in its unrotated frame.
func LocalAnchors(e *document.Element) []Anchor {
	if e == nil || len(e.Points) < 2 {
		return nil
	}
	switch e.Type {
	case document.ElementLine:
		return []Anchor{
			{Index: AnchorLineStart, Kind: AnchorEndpoint, Pos: e.Points[0]},
			{Index: AnchorLineEnd, Kind: AnchorEndpoint, Pos: e.Points[1]},
		}
	case document.ElementRectangle, document.ElementEllipse, document.ElementDiamond, document.ElementText:
		pts := boxAnchorPoints(Bounds(e))
		anchors := make([]Anchor, len(pts))
		for i, p := range pts {
			kind := AnchorEdge
			if isCorner(i) {
				kind = AnchorCorner
			}
			anchors[i] = Anchor{Index: i, Kind: kind, Pos: p}
		}
		return anchors
	case document.ElementFreehand:
		return nil
	}
	return nil
}

// Anchors returns the element's resize anchors in canvas space: 8 for box
// shapes, 2 for lines and none for freehand strokes.
func Anchors(e *document.Element) []Anchor {
	anchors := LocalAnchors(e)
	if len(anchors) == 0 {
		return nil
	}
	c := Center(e)
	theta := Angle(e)
	for i := range anchors {
		anchors[i].Pos = RotatePoint(anchors[i].Pos, c, theta)
	}
	return anchors
}

// HitAnchor returns the index of the anchor under p, or NoAnchor.
// Corner anchors are tested as squares aligned with the element, edge and
// endpoint anchors as circles. Lower indices win when regions overlap.
func HitAnchor(e *document.Element, p document.Point) int {
	anchors := LocalAnchors(e)
	if len(anchors) == 0 {
		return NoAnchor
	}
	local := ToLocal(e, p)
	for _, a := range anchors {
		dx, dy := local.X-a.Pos.X, local.Y-a.Pos.Y
		if a.Kind == AnchorCorner {
			if math.Abs(dx) <= AnchorHitRadius && math.Abs(dy) <= AnchorHitRadius {
				return a.Index
			}
			continue
		}
		if math.Hypot(dx, dy) <= AnchorHitRadius {
			return a.Index
		}
	}
	return NoAnchor
}

// RotationHandle returns the rotation handle position in canvas space.
// Freehand strokes have no handle.
func RotationHandle(e *document.Element) (document.Point, bool) {
	if e == nil || len(e.Points) < 2 || e.Type == document.ElementFreehand || !e.Type.Valid() {
		return document.Point{}, false
	}
	b := Bounds(e)
	local := document.Point{X: b.X + b.Width/2, Y: b.Y - RotationHandleOffset}
	return RotatePoint(local, b.Center(), Angle(e)), true
}

// HitRotationHandle reports whether p is on the element's rotation handle.
func HitRotationHandle(e *document.Element, p document.Point) bool {
	h, ok := RotationHandle(e)
	if !ok {
		return false
	}
	return math.Hypot(p.X-h.X, p.Y-h.Y) <= RotationHandleRadius
}
