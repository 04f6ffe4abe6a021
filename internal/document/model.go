package document

// Point is a position in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

type ElementType string

const (
	ElementRectangle ElementType = "rectangle"
	ElementEllipse   ElementType = "ellipse"
	ElementDiamond   ElementType = "diamond"
	ElementLine      ElementType = "line"
	ElementFreehand  ElementType = "freehand"
	ElementText      ElementType = "text"
)

// Valid reports whether t is one of the known element kinds.
func (t ElementType) Valid() bool {
	switch t {
	case ElementRectangle, ElementEllipse, ElementDiamond, ElementLine, ElementFreehand, ElementText:
		return true
	}
	return false
}

// IsBox reports whether the element's two points span a bounding box
// (as opposed to a line's endpoints or a freehand polyline).
func (t ElementType) IsBox() bool {
	switch t {
	case ElementRectangle, ElementEllipse, ElementDiamond, ElementText:
		return true
	}
	return false
}

// Element is a single drawable shape.
// Points holds (start, end) for every kind except freehand, where it is the
// sampled polyline. Start is not necessarily the top-left corner.
type Element struct {
	ID          string      `json:"id"`
	Type        ElementType `json:"type"`
	Points      []Point     `json:"points"`
	Color       string      `json:"color"`
	StrokeWidth float64     `json:"strokeWidth"`
	Rotation    float64     `json:"rotation"` // radians about the unrotated bounding-box center
	Text        string      `json:"text,omitempty"`
}

// Clone returns a deep copy of e. The copy owns its own Points slice.
func (e *Element) Clone() Element {
	c := *e
	c.Points = make([]Point, len(e.Points))
	copy(c.Points, e.Points)
	return c
}

// Start returns the first point, or the zero point if there is none.
func (e *Element) Start() Point {
	if len(e.Points) == 0 {
		return Point{}
	}
	return e.Points[0]
}

// End returns the last point, or the zero point if there is none.
func (e *Element) End() Point {
	if len(e.Points) == 0 {
		return Point{}
	}
	return e.Points[len(e.Points)-1]
}

// Translate moves every point by (dx, dy).
func (e *Element) Translate(dx, dy float64) {
	for i := range e.Points {
		e.Points[i] = e.Points[i].Add(dx, dy)
	}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Points      []Point  `json:"points,omitempty"`
	Color       *string  `json:"color,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Rotation    *float64 `json:"rotation,omitempty"`
	Text        *string  `json:"text,omitempty"`
}

// Apply merges the patch into e. A Points value with fewer than two points
// is ignored so the element never drops below its minimum point count.
func (p Patch) Apply(e *Element) {
	if len(p.Points) >= 2 {
		e.Points = make([]Point, len(p.Points))
		copy(e.Points, p.Points)
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.StrokeWidth != nil {
		e.StrokeWidth = *p.StrokeWidth
	}
	if p.Rotation != nil {
		e.Rotation = *p.Rotation
	}
	if p.Text != nil && e.Type == ElementText {
		e.Text = *p.Text
	}
}

// NewElement creates an element of the given kind with both initial points at p.
func NewElement(id string, t ElementType, p Point, color string, strokeWidth float64) Element {
	return Element{
		ID:          id,
		Type:        t,
		Points:      []Point{p, p},
		Color:       color,
		StrokeWidth: strokeWidth,
		Rotation:    0,
	}
}
