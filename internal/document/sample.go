package document

import (
	"math"

	"github.com/inamate/sketchpad/internal/typeid"
)

// NewSampleDocument returns a document pre-populated with one element of every kind.
func NewSampleDocument() *Document {
	doc := New()

	rect := NewElement(typeid.NewElementID(), ElementRectangle, Point{X: 80, Y: 80}, "#e94560", 2)
	rect.Points[1] = Point{X: 280, Y: 200}

	ellipse := NewElement(typeid.NewElementID(), ElementEllipse, Point{X: 360, Y: 90}, "#0f3460", 2)
	ellipse.Points[1] = Point{X: 520, Y: 210}

	diamond := NewElement(typeid.NewElementID(), ElementDiamond, Point{X: 600, Y: 80}, "#16213e", 3)
	diamond.Points[1] = Point{X: 720, Y: 220}
	diamond.Rotation = math.Pi / 12

	line := NewElement(typeid.NewElementID(), ElementLine, Point{X: 80, Y: 300}, "#533483", 4)
	line.Points[1] = Point{X: 420, Y: 380}

	freehand := NewElement(typeid.NewElementID(), ElementFreehand, Point{X: 480, Y: 320}, "#222222", 2)
	freehand.Points = freehand.Points[:1]
	for i := 1; i <= 24; i++ {
		x := 480 + float64(i)*10
		y := 340 + 20*math.Sin(float64(i)/3)
		freehand.Points = append(freehand.Points, Point{X: x, Y: y})
	}

	text := NewElement(typeid.NewElementID(), ElementText, Point{X: 80, Y: 440}, "#222222", 1)
	text.Points[1] = Point{X: 360, Y: 500}
	text.Text = "Sketchpad\nDouble-click to edit"

	for _, e := range []Element{rect, ellipse, diamond, line, freehand, text} {
		doc.Add(e)
	}
	return doc
}
