package geometry

import (
	"math"

	"github.com/inamate/sketchpad/internal/document"
)

// Angle returns the element's rotation, treating non-finite values as 0.
func Angle(e *document.Element) float64 {
	if math.IsNaN(e.Rotation) || math.IsInf(e.Rotation, 0) {
		return 0
	}
	return e.Rotation
}

// Center returns the midpoint of the element's unrotated bounding box,
// recomputed from its current points. For a line this is the midpoint of
// its endpoints.
func Center(e *document.Element) document.Point {
	return Bounds(e).Center()
}

// RotatePoint rotates p around c by theta radians.
func RotatePoint(p, c document.Point, theta float64) document.Point {
	if theta == 0 {
		return p
	}
	x, y := RotateAbout(theta, c.X, c.Y).TransformPoint(p.X, p.Y)
	return document.Point{X: x, Y: y}
}

// UnrotatePoint is the inverse of RotatePoint.
func UnrotatePoint(p, c document.Point, theta float64) document.Point {
	return RotatePoint(p, c, -theta)
}

// ToLocal maps a canvas point into the element's unrotated frame.
func ToLocal(e *document.Element, p document.Point) document.Point {
	x, y := ElementTransform(e).Invert().TransformPoint(p.X, p.Y)
	return document.Point{X: x, Y: y}
}

// ToWorld maps a point in the element's unrotated frame back to canvas space.
func ToWorld(e *document.Element, p document.Point) document.Point {
	x, y := ElementTransform(e).TransformPoint(p.X, p.Y)
	return document.Point{X: x, Y: y}
}

// ElementTransform returns the matrix a render surface applies to the
// element's stored (unrotated) points.
func ElementTransform(e *document.Element) Matrix2D {
	theta := Angle(e)
	if theta == 0 {
		return Identity()
	}
	c := Center(e)
	return RotateAbout(theta, c.X, c.Y)
}

// Outline returns the four corners of the element's bounding box in canvas
// space, clockwise from top-left.
func Outline(e *document.Element) [4]document.Point {
	b := Bounds(e)
	c := b.Center()
	theta := Angle(e)
	corners := [4]document.Point{
		{X: b.X, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y + b.Height},
		{X: b.X, Y: b.Y + b.Height},
	}
	for i := range corners {
		corners[i] = RotatePoint(corners[i], c, theta)
	}
	return corners
}

// RotationAngle computes the rotation for an in-progress rotate gesture:
// the angle swept from start to current around center, added to the
// rotation captured when the gesture began. ok is false when either pointer
// position coincides with the center, in which case startRotation is returned.
func RotationAngle(center, start, current document.Point, startRotation float64) (angle float64, ok bool) {
	sx, sy := start.X-center.X, start.Y-center.Y
	cx, cy := current.X-center.X, current.Y-center.Y
	if (sx == 0 && sy == 0) || (cx == 0 && cy == 0) {
		return startRotation, false
	}
	angle = startRotation + math.Atan2(cy, cx) - math.Atan2(sy, sx)
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return startRotation, false
	}
	return normalizeAngle(angle), true
}

// normalizeAngle wraps a into [-pi, pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
