// Package raster is a CPU render backend built on gogpu/gg. Frames are drawn
// into an in-memory pixmap and handed to a Presenter at EndDraw.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"tridemo/internal/render"
)

// Presenter receives every completed frame. Returning
// render.ErrRecreateTarget tells the scene to rebuild its target.
type Presenter interface {
	Present(img *image.RGBA) error
}

var errClosed = errors.New("raster: resource closed")

// Factory creates gg-backed targets. A nil presenter renders offscreen.
type Factory struct {
	presenter Presenter
	closed    bool
}

func NewFactory(p Presenter) *Factory {
	return &Factory{presenter: p}
}

func (f *Factory) CreateTarget(size render.Size) (render.Target, error) {
	if f.closed {
		return nil, errClosed
	}
	if err := render.CheckSize(size); err != nil {
		return nil, err
	}
	return &Target{
		dc:        gg.NewContext(int(size.Width), int(size.Height)),
		size:      size,
		presenter: f.presenter,
	}, nil
}

func (f *Factory) CreatePathGeometry(points []render.Point) (render.Geometry, error) {
	if f.closed {
		return nil, errClosed
	}
	if err := render.CheckContour(points); err != nil {
		return nil, err
	}
	return &Geometry{points: append([]render.Point(nil), points...)}, nil
}

func (f *Factory) Close() error {
	f.closed = true
	return nil
}

// Target wraps one gg.Context sized to the surface.
type Target struct {
	dc        *gg.Context
	size      render.Size
	presenter Presenter
	drawing   bool
	err       error
	last      *image.RGBA
}

func (t *Target) Size() render.Size { return t.size }

func (t *Target) CreateSolidBrush(c render.Color) (render.Brush, error) {
	if t.dc == nil {
		return nil, errClosed
	}
	return &Brush{color: c}, nil
}

func (t *Target) BeginDraw() {
	t.drawing = true
	t.err = nil
	t.dc.Identity()
	t.dc.ClearPath()
}

func (t *Target) Clear(c render.Color) {
	t.dc.ClearWithColor(toRGBA(c))
}

func (t *Target) SetTransform(m render.Matrix) {
	t.dc.SetTransform(gg.Matrix{
		A: float64(m.A), B: float64(m.C), C: float64(m.E),
		D: float64(m.B), E: float64(m.D), F: float64(m.F),
	})
}

func (t *Target) FillGeometry(g render.Geometry, b render.Brush) {
	if !t.tracePath(g) {
		return
	}
	c := b.Color()
	t.dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
	if err := t.dc.Fill(); err != nil && t.err == nil {
		t.err = fmt.Errorf("fill: %w", err)
	}
}

func (t *Target) DrawGeometry(g render.Geometry, b render.Brush, strokeWidth float32) {
	if !t.tracePath(g) {
		return
	}
	c := b.Color()
	t.dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
	t.dc.SetLineWidth(float64(strokeWidth))
	if err := t.dc.Stroke(); err != nil && t.err == nil {
		t.err = fmt.Errorf("stroke: %w", err)
	}
}

func (t *Target) tracePath(g render.Geometry) bool {
	pts := g.Points()
	if len(pts) < 3 {
		return false
	}
	t.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		t.dc.LineTo(float64(p.X), float64(p.Y))
	}
	t.dc.ClosePath()
	return true
}

func (t *Target) EndDraw() error {
	if !t.drawing {
		return errors.New("raster: EndDraw without BeginDraw")
	}
	t.drawing = false
	if t.err != nil {
		return t.err
	}
	if err := t.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	img, ok := t.dc.Image().(*image.RGBA)
	if !ok {
		return errors.New("raster: unexpected image type")
	}
	t.last = img
	if t.presenter == nil {
		return nil
	}
	if err := t.presenter.Present(img); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Image returns the last completed frame, or nil before the first EndDraw.
func (t *Target) Image() *image.RGBA { return t.last }

func (t *Target) Close() error {
	if t.dc == nil {
		return nil
	}
	err := t.dc.Close()
	t.dc = nil
	t.last = nil
	return err
}

type Brush struct {
	color render.Color
}

func (b *Brush) Color() render.Color { return b.color }
func (b *Brush) Close() error        { return nil }

type Geometry struct {
	points []render.Point
}

func (g *Geometry) Points() []render.Point { return g.points }
func (g *Geometry) Close() error           { g.points = nil; return nil }

func toRGBA(c render.Color) gg.RGBA {
	return gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}
