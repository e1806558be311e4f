// Package render is the device/surface abstraction the scene draws through.
//
// Resources follow a two-tier lifetime. A Factory is device independent and
// lives as long as its owner; it creates Geometry and Targets. A Target is
// bound to the current surface size and device state and may be lost at any
// frame; Brushes are created by, and die with, a Target. Every resource is
// released with Close, which is safe to call more than once.
package render

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrRecreateTarget is returned by Target.EndDraw when the surface was
	// lost and the target (and its brushes) must be recreated.
	ErrRecreateTarget = errors.New("render: target must be recreated")

	// ErrEmptySurface is returned when a target is requested for a zero-area
	// surface, e.g. a minimised window.
	ErrEmptySurface = errors.New("render: empty surface")
)

// Size is a surface size in pixels.
type Size struct {
	Width, Height uint32
}

func (s Size) Empty() bool { return s.Width == 0 || s.Height == 0 }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Factory creates device-independent resources and render targets.
type Factory interface {
	CreateTarget(size Size) (Target, error)
	// CreatePathGeometry builds a closed, filled contour through points.
	CreatePathGeometry(points []Point) (Geometry, error)
	io.Closer
}

// Target is a drawable surface. Drawing calls are only valid between
// BeginDraw and EndDraw.
type Target interface {
	Size() Size
	CreateSolidBrush(c Color) (Brush, error)

	BeginDraw()
	Clear(c Color)
	SetTransform(m Matrix)
	FillGeometry(g Geometry, b Brush)
	DrawGeometry(g Geometry, b Brush, strokeWidth float32)
	// EndDraw completes the frame. ErrRecreateTarget signals surface loss;
	// any other error is a failed frame.
	EndDraw() error

	io.Closer
}

type Brush interface {
	Color() Color
	io.Closer
}

type Geometry interface {
	Points() []Point
	io.Closer
}

// CheckSize returns ErrEmptySurface for an empty size.
func CheckSize(s Size) error {
	if s.Empty() {
		return fmt.Errorf("create target %s: %w", s, ErrEmptySurface)
	}
	return nil
}

// CheckContour validates the points of a closed contour.
func CheckContour(points []Point) error {
	if len(points) < 3 {
		return fmt.Errorf("path geometry needs at least 3 points, got %d", len(points))
	}
	return nil
}
