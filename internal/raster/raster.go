// Package raster paints engine draw command buffers into images with gg.
// It backs the server's PNG preview and the replay CLI.
package raster

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/geometry"
)

const (
	FontSize   = 20.0
	LineHeight = 1.25

	selectionColor  = "#4a90d9"
	anchorFill      = "#ffffff"
	anchorSize      = 8.0
	handleRadius    = 5.0
	decorationWidth = 1.0
)

// Options controls the canvas a Renderer paints into.
type Options struct {
	Width      int
	Height     int
	Background string
}

// Renderer turns draw commands into pixels. Concurrent renders are
// serialized.
type Renderer struct {
	mu   sync.Mutex
	opts Options
	face text.Face
}

// New creates a renderer with the embedded Go Regular font.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: must be positive", opts.Width, opts.Height)
	}
	if opts.Background == "" {
		opts.Background = "#ffffff"
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{opts: opts, face: source.Face(FontSize)}, nil
}

// Paint draws commands onto a fresh context. The caller owns the result
// and must Close it.
func (r *Renderer) Paint(commands []engine.DrawCommand) (*gg.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	dc.ClearWithColor(gg.Hex(r.opts.Background))
	dc.SetFont(r.face)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for i := range commands {
		if err := r.paintCommand(dc, &commands[i]); err != nil {
			dc.Close()
			return nil, fmt.Errorf("paint %s %s: %w", commands[i].Op, commands[i].ElementID, err)
		}
	}
	return dc, nil
}

// EncodePNG paints commands and writes the result as PNG.
func (r *Renderer) EncodePNG(w io.Writer, commands []engine.DrawCommand) error {
	dc, err := r.Paint(commands)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG paints commands and writes the result to path.
func (r *Renderer) SavePNG(path string, commands []engine.DrawCommand) error {
	dc, err := r.Paint(commands)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) paintCommand(dc *gg.Context, cmd *engine.DrawCommand) error {
	switch cmd.Op {
	case engine.OpOutline:
		return strokeOutline(dc, cmd.Points)
	case engine.OpAnchor:
		return paintAnchor(dc, cmd)
	case engine.OpRotationHandle:
		return paintRotationHandle(dc, cmd.Points)
	case engine.OpMarquee:
		return paintMarquee(dc, cmd.Points)
	}

	dc.Push()
	defer dc.Pop()
	if len(cmd.Transform) == 6 {
		dc.Transform(toMatrix(cmd.Transform))
	}
	dc.SetHexColor(cmd.Stroke)
	dc.SetLineWidth(cmd.StrokeWidth)

	switch cmd.Op {
	case engine.OpRectangle:
		b := box(cmd.Points)
		dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	case engine.OpEllipse:
		b := box(cmd.Points)
		c := b.Center()
		dc.DrawEllipse(c.X, c.Y, b.Width/2, b.Height/2)
	case engine.OpDiamond:
		b := box(cmd.Points)
		c := b.Center()
		dc.MoveTo(c.X, b.Y)
		dc.LineTo(b.X+b.Width, c.Y)
		dc.LineTo(c.X, b.Y+b.Height)
		dc.LineTo(b.X, c.Y)
		dc.ClosePath()
	case engine.OpLine, engine.OpPolyline:
		if len(cmd.Points) < 2 {
			return nil
		}
		dc.MoveTo(cmd.Points[0].X, cmd.Points[0].Y)
		for _, p := range cmd.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
	case engine.OpText:
		r.paintText(dc, box(cmd.Points), cmd.Text)
		return nil
	default:
		return nil
	}
	return dc.Stroke()
}

// paintText lays out one baseline per line starting at the top of the box.
func (r *Renderer) paintText(dc *gg.Context, b geometry.Rect, s string) {
	if s == "" {
		return
	}
	ascent := r.face.Metrics().Ascent
	for i, line := range strings.Split(s, "\n") {
		dc.DrawString(line, b.X, b.Y+ascent+float64(i)*FontSize*LineHeight)
	}
}

func strokeOutline(dc *gg.Context, points []document.Point) error {
	if len(points) < 2 {
		return nil
	}
	dc.Push()
	defer dc.Pop()
	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(decorationWidth)
	dc.SetDash(4, 4)
	defer dc.ClearDash()
	dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	return dc.Stroke()
}

func paintAnchor(dc *gg.Context, cmd *engine.DrawCommand) error {
	if len(cmd.Points) == 0 {
		return nil
	}
	p := cmd.Points[0]
	dc.Push()
	defer dc.Pop()
	if cmd.AnchorKind == geometry.AnchorCorner {
		dc.DrawRectangle(p.X-anchorSize/2, p.Y-anchorSize/2, anchorSize, anchorSize)
	} else {
		dc.DrawCircle(p.X, p.Y, anchorSize/2)
	}
	dc.SetHexColor(anchorFill)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(decorationWidth)
	return dc.Stroke()
}

// paintRotationHandle draws the stem from the top edge to the handle, then
// the handle itself. Points are [handle, stem].
func paintRotationHandle(dc *gg.Context, points []document.Point) error {
	if len(points) < 2 {
		return nil
	}
	handle, stem := points[0], points[1]
	dc.Push()
	defer dc.Pop()
	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(decorationWidth)
	dc.DrawLine(stem.X, stem.Y, handle.X, handle.Y)
	if err := dc.Stroke(); err != nil {
		return err
	}
	dc.DrawCircle(handle.X, handle.Y, handleRadius)
	dc.SetHexColor(anchorFill)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetHexColor(selectionColor)
	return dc.Stroke()
}

func paintMarquee(dc *gg.Context, points []document.Point) error {
	if len(points) < 2 {
		return nil
	}
	b := box(points)
	dc.Push()
	defer dc.Pop()
	dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	dc.SetRGBA(0.29, 0.56, 0.85, 0.1)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(decorationWidth)
	dc.SetDash(4, 4)
	defer dc.ClearDash()
	return dc.Stroke()
}

func box(points []document.Point) geometry.Rect {
	if len(points) < 2 {
		return geometry.Rect{}
	}
	return geometry.RectFromCorners(points[0], points[1])
}

// toMatrix converts a canvas-order [a, b, c, d, e, f] transform into gg's
// row-major form.
func toMatrix(t []float64) gg.Matrix {
	return gg.Matrix{
		A: t[0], B: t[2], C: t[4],
		D: t[1], E: t[3], F: t[5],
	}
}
