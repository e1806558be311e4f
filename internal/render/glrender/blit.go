//go:build !android

package glrender

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Blitter presents CPU-rendered frames: each image is uploaded to a texture
// and drawn as a full-screen quad, then the buffers are swapped.
// It satisfies raster.Presenter.
type Blitter struct {
	swap Swapper

	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32
	uTex int32

	texW, texH int
}

func NewBlitter(swap Swapper) (*Blitter, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	prog, err := linkProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		return nil, fmt.Errorf("blit program: %w", err)
	}
	b := &Blitter{swap: swap, prog: prog}

	// Unit quad (6 vertices, 2 triangles).
	quad := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	gl.GenTextures(1, &b.tex)
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.UseProgram(prog)
	b.uTex = uniform(prog, "uTex")
	gl.Uniform1i(b.uTex, 0)

	if err := drainErrors(); err != nil {
		b.Close()
		return nil, fmt.Errorf("blitter: %w", err)
	}
	return b, nil
}

// Present uploads img and swaps. A GL error is reported after the frame so
// the caller can rebuild its target.
func (b *Blitter) Present(img *image.RGBA) error {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	if w != b.texW || h != b.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		b.texW, b.texH = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.Viewport(0, 0, int32(w), int32(h))
	gl.UseProgram(b.prog)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	if err := drainErrors(); err != nil {
		b.texW, b.texH = 0, 0
		return err
	}
	if b.swap != nil {
		b.swap.SwapBuffers()
	}
	return nil
}

func (b *Blitter) Close() error {
	if b.tex != 0 {
		gl.DeleteTextures(1, &b.tex)
		b.tex = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.prog != 0 {
		gl.DeleteProgram(b.prog)
		b.prog = 0
	}
	return nil
}
