//go:build !android

package glrender

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"tridemo/internal/render"
)

// Geometry is a closed contour uploaded once into its own VAO/VBO. It is
// bound to the GL context, not to a Target, so it survives target rebuilds.
type Geometry struct {
	points []render.Point
	vao    uint32
	vbo    uint32
	count  int32
}

func newGeometry(points []render.Point) *Geometry {
	g := &Geometry{
		points: append([]render.Point(nil), points...),
		count:  int32(len(points)),
	}
	verts := make([]float32, 0, 2*len(points))
	for _, p := range points {
		verts = append(verts, p.X, p.Y)
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)
	return g
}

func (g *Geometry) Points() []render.Point { return g.points }

func (g *Geometry) Close() error {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	return nil
}
