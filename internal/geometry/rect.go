package geometry

import (
	"math"

	"github.com/inamate/sketchpad/internal/document"
)

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromCorners builds a normalized rect from two opposite corners given in any order.
func RectFromCorners(a, b document.Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the axis-aligned bounding box over all of the element's
// points, ignoring rotation.
func Bounds(e *document.Element) Rect {
	if len(e.Points) == 0 {
		return Rect{}
	}
	minX, minY := e.Points[0].X, e.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range e.Points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Min returns the top-left corner.
func (r Rect) Min() document.Point {
	return document.Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() document.Point {
	return document.Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Contains checks if a point is inside the rect (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether r and other overlap. Touching edges count.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width && other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height && other.Y <= r.Y+r.Height
}

// Center returns the center point of the rect.
func (r Rect) Center() document.Point {
	return document.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
