package geometry

import "github.com/inamate/sketchpad/internal/document"

// BoxSelect returns the ids, in z-order, of every element whose unrotated
// bounding box overlaps the rectangle spanned by a and b. Partial overlap is
// enough; touching edges count.
func BoxSelect(elements []*document.Element, a, b document.Point) []string {
	box := RectFromCorners(a, b)
	var ids []string
	for _, e := range elements {
		if len(e.Points) == 0 {
			continue
		}
		if Bounds(e).Intersects(box) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// SelectionBounds returns the smallest rect containing the unrotated
// bounding boxes of all given elements.
func SelectionBounds(elements []*document.Element) Rect {
	if len(elements) == 0 {
		return Rect{}
	}
	first := Bounds(elements[0])
	lo, hi := first.Min(), first.Max()
	for _, e := range elements[1:] {
		b := Bounds(e)
		lo.X, lo.Y = min(lo.X, b.X), min(lo.Y, b.Y)
		hi.X, hi.Y = max(hi.X, b.X+b.Width), max(hi.Y, b.Y+b.Height)
	}
	return RectFromCorners(lo, hi)
}
