//go:build !android

package glrender

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"tridemo/internal/render"
)

// Target draws into the default framebuffer at a fixed size. The shape
// program lives with the target and is rebuilt with it.
type Target struct {
	size render.Size
	swap Swapper

	prog        uint32
	uTransform  int32
	uResolution int32
	uColor      int32

	drawing bool
}

func newTarget(size render.Size, swap Swapper) (*Target, error) {
	// Clear stale flags so EndDraw only reports this target's errors.
	_ = drainErrors()

	prog, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	t := &Target{
		size:        size,
		swap:        swap,
		prog:        prog,
		uTransform:  uniform(prog, "uTransform"),
		uResolution: uniform(prog, "uResolution"),
		uColor:      uniform(prog, "uColor"),
	}
	if err := drainErrors(); err != nil {
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("create target: %w", err)
	}
	return t, nil
}

func (t *Target) Size() render.Size { return t.size }

func (t *Target) CreateSolidBrush(c render.Color) (render.Brush, error) {
	if t.prog == 0 {
		return nil, errClosed
	}
	return &Brush{color: c}, nil
}

func (t *Target) BeginDraw() {
	t.drawing = true
	gl.Viewport(0, 0, int32(t.size.Width), int32(t.size.Height))
	gl.UseProgram(t.prog)
	gl.Uniform2f(t.uResolution, float32(t.size.Width), float32(t.size.Height))
	t.SetTransform(render.Identity())
}

func (t *Target) Clear(c render.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (t *Target) SetTransform(m render.Matrix) {
	// Column-major mat3.
	xf := [9]float32{
		m.A, m.B, 0,
		m.C, m.D, 0,
		m.E, m.F, 1,
	}
	gl.UseProgram(t.prog)
	gl.UniformMatrix3fv(t.uTransform, 1, false, &xf[0])
}

func (t *Target) FillGeometry(g render.Geometry, b render.Brush) {
	t.draw(g, b, gl.TRIANGLE_FAN)
}

// DrawGeometry outlines g. Core profile only guarantees 1px lines, so
// strokeWidth is advisory.
func (t *Target) DrawGeometry(g render.Geometry, b render.Brush, strokeWidth float32) {
	if strokeWidth > 0 {
		gl.LineWidth(1)
	}
	t.draw(g, b, gl.LINE_LOOP)
}

func (t *Target) draw(g render.Geometry, b render.Brush, mode uint32) {
	geo, ok := g.(*Geometry)
	if !ok || geo.vao == 0 {
		return
	}
	c := b.Color()
	gl.UseProgram(t.prog)
	gl.Uniform4f(t.uColor, c.R, c.G, c.B, c.A)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindVertexArray(geo.vao)
	gl.DrawArrays(mode, 0, geo.count)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

func (t *Target) EndDraw() error {
	if !t.drawing {
		return errors.New("glrender: EndDraw without BeginDraw")
	}
	t.drawing = false
	if err := drainErrors(); err != nil {
		return err
	}
	if t.swap != nil {
		t.swap.SwapBuffers()
	}
	return nil
}

func (t *Target) Close() error {
	if t.prog != 0 {
		gl.DeleteProgram(t.prog)
		t.prog = 0
	}
	return nil
}

type Brush struct {
	color render.Color
}

func (b *Brush) Color() render.Color { return b.color }
func (b *Brush) Close() error        { return nil }
