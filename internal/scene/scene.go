// Package scene implements the single subscriber of the window dispatcher:
// it owns the render resources and the one triangle, mutates the triangle on
// mouse events and redraws.
package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"tridemo/internal/config"
	"tridemo/internal/event"
	"tridemo/internal/logging"
	"tridemo/internal/render"
)

// Surface reports the current drawable size of the window.
type Surface interface {
	ClientSize() render.Size
}

type Option func(*Scene)

// WithLogger overrides the process logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scene) { s.log = l }
}

// WithColors overrides the background and triangle colours.
func WithColors(background, triangle render.Color) Option {
	return func(s *Scene) {
		s.background = background
		s.fill = triangle
	}
}

// Scene is not safe for concurrent use; every method runs on the window
// loop thread.
type Scene struct {
	factory    render.Factory
	surface    Surface
	dispatcher *event.Dispatcher
	log        *slog.Logger

	background render.Color
	fill       render.Color

	// target and brush are both set or both nil.
	target render.Target
	brush  render.Brush

	triangle *shape
	closed   bool
}

// New builds the scene, takes ownership of factory and subscribes to d.
// Device resources are created eagerly when possible; a failure there is
// logged and retried on the next frame.
func New(factory render.Factory, surface Surface, d *event.Dispatcher, opts ...Option) (*Scene, error) {
	if factory == nil {
		return nil, errors.New("scene: nil render factory")
	}
	if surface == nil {
		return nil, errors.New("scene: nil surface")
	}
	s := &Scene{
		factory:    factory,
		surface:    surface,
		dispatcher: d,
		log:        logging.Logger(),
		background: render.Hex(config.BackgroundColor),
		fill:       render.Hex(config.TriangleColor),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.createDeviceResources(); err != nil {
		s.log.Warn("initial device resources unavailable", "err", err)
	}
	if d != nil {
		d.Subscribe(s)
	}
	return s, nil
}

// OnEvent implements event.Subscriber.
func (s *Scene) OnEvent(e event.Event) {
	if s.closed {
		return
	}
	switch e.Code {
	case event.CodeResize:
		s.releaseDeviceResources()
		if err := s.createDeviceResources(); err != nil {
			s.log.Warn("recreate device resources after resize", "size", e.Size, "err", err)
		}
	case event.CodePaint, event.CodeWindowCreated:
		s.Render()
	case event.CodeMouse:
		s.onMouse(e.Mouse)
	case event.CodeWindowClosed:
		s.releaseDeviceResources()
	default:
		s.log.Warn("unknown event", "code", e.Code)
	}
}

func (s *Scene) onMouse(m event.MouseState) {
	switch m.Action {
	case event.ButtonDown:
		s.createTriangle(m.X, m.Y)
		s.Render()
	case event.ButtonUp:
		s.deleteTriangle()
		s.Render()
	case event.Move:
		if m.Held && s.triangle != nil {
			s.triangle.moveTo(m.X, m.Y)
		}
		s.Render()
	default:
		s.log.Warn("unexpected mouse action", "action", m.Action)
	}
}

// Triangle returns the current shape, if any.
func (s *Scene) Triangle() (Triangle, bool) {
	if s.triangle == nil {
		return Triangle{}, false
	}
	return s.triangle.Triangle, true
}

// HasDeviceResources reports whether a render target and brush are held.
func (s *Scene) HasDeviceResources() bool {
	return s.target != nil
}

func (s *Scene) createTriangle(x, y int) {
	if s.triangle != nil {
		return
	}
	s.log.Debug("create triangle", "x", x, "y", y)

	anchor := Vec{X: x, Y: y}
	pts := TriangleVertices(anchor)
	g, err := s.factory.CreatePathGeometry(pts[:])
	if err != nil {
		s.log.Warn("create triangle geometry", "err", err)
		return
	}
	s.triangle = &shape{Triangle: Triangle{Anchor: anchor}, geometry: g}
}

func (s *Scene) deleteTriangle() {
	if s.triangle == nil {
		return
	}
	if err := s.triangle.close(); err != nil {
		s.log.Warn("release triangle geometry", "err", err)
	}
	s.triangle = nil
}

func (s *Scene) createDeviceResources() error {
	if s.target != nil && s.brush != nil {
		return nil
	}
	if s.target != nil || s.brush != nil {
		s.log.Error("render target and brush out of step; releasing both")
		s.releaseDeviceResources()
	}

	size := s.surface.ClientSize()
	target, err := s.factory.CreateTarget(size)
	if err != nil {
		return fmt.Errorf("create render target: %w", err)
	}
	brush, err := target.CreateSolidBrush(s.fill)
	if err != nil {
		if cerr := target.Close(); cerr != nil {
			s.log.Warn("release render target", "err", cerr)
		}
		return fmt.Errorf("create brush: %w", err)
	}
	s.target, s.brush = target, brush
	s.log.Debug("device resources created", "size", size)
	return nil
}

func (s *Scene) releaseDeviceResources() {
	if s.brush != nil {
		if err := s.brush.Close(); err != nil {
			s.log.Warn("release brush", "err", err)
		}
		s.brush = nil
	}
	if s.target != nil {
		if err := s.target.Close(); err != nil {
			s.log.Warn("release render target", "err", err)
		}
		s.target = nil
	}
}

// Render draws one frame. Missing device resources are created first; if
// that fails the frame is skipped. A failed or lost frame drops the target
// and brush so the next call recreates them.
func (s *Scene) Render() {
	if s.closed {
		return
	}
	if err := s.createDeviceResources(); err != nil {
		s.log.Debug("skip frame", "err", err)
		return
	}

	t := s.target
	t.BeginDraw()
	t.SetTransform(render.Identity())
	t.Clear(s.background)
	if tri := s.triangle; tri != nil && tri.geometry != nil {
		t.SetTransform(render.Translation(float32(tri.Translation.X), float32(tri.Translation.Y)))
		t.DrawGeometry(tri.geometry, s.brush, config.OutlineWidth)
	}

	if err := t.EndDraw(); err != nil {
		s.releaseDeviceResources()
		if !errors.Is(err, render.ErrRecreateTarget) {
			s.log.Warn("render scene", "err", err)
		}
	}
}

// Close unsubscribes the scene and releases every resource it owns,
// including the factory. It is safe to call more than once.
func (s *Scene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.dispatcher != nil {
		s.dispatcher.Unsubscribe(s)
	}
	s.deleteTriangle()
	s.releaseDeviceResources()
	return s.factory.Close()
}
