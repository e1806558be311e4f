package scene

import (
	"tridemo/internal/config"
	"tridemo/internal/render"
)

// Triangle is the single drawable shape: an isosceles triangle whose apex is
// the anchor, moved by Translation while the button is held.
type Triangle struct {
	Anchor      Vec
	Translation Vec
}

// Vec is an integer point or vector in client coordinates.
type Vec struct {
	X, Y int
}

// Vertices returns apex, bottom-left and bottom-right before translation.
func (t Triangle) Vertices() [3]render.Point {
	return TriangleVertices(t.Anchor)
}

// TriangleVertices returns the contour of the fixed-size triangle whose apex
// is at anchor.
func TriangleVertices(anchor Vec) [3]render.Point {
	x, y := float32(anchor.X), float32(anchor.Y)
	const hw = config.TriangleWidth / 2
	const h = config.TriangleHeight
	return [3]render.Point{
		{X: x, Y: y},
		{X: x - hw, Y: y + h},
		{X: x + hw, Y: y + h},
	}
}

// shape owns the backend geometry for the current triangle.
type shape struct {
	Triangle
	geometry render.Geometry
}

func (s *shape) moveTo(x, y int) {
	s.Translation = Vec{X: x - s.Anchor.X, Y: y - s.Anchor.Y}
}

func (s *shape) close() error {
	if s.geometry == nil {
		return nil
	}
	err := s.geometry.Close()
	s.geometry = nil
	return err
}
