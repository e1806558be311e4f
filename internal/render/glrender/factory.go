//go:build !android

// Package glrender is the OpenGL 4.1 core render backend. Every call must run
// on the thread that owns the current GL context.
package glrender

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"tridemo/internal/logging"
	"tridemo/internal/render"
)

// Swapper presents the back buffer; *glfw.Window satisfies it.
type Swapper interface {
	SwapBuffers()
}

var errClosed = errors.New("glrender: resource closed")

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the GL entry points for the current context. Later calls
// return the first result.
func Init() error {
	initOnce.Do(func() {
		if err := gl.Init(); err != nil {
			initErr = fmt.Errorf("gl init: %w", err)
			return
		}
		logging.Logger().Info("opengl ready",
			"version", gl.GoStr(gl.GetString(gl.VERSION)),
			"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	})
	return initErr
}

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Factory is the device-independent half of the backend.
type Factory struct {
	swap   Swapper
	closed bool
}

// NewFactory initialises GL for the current context. A failure here is
// fatal to the caller.
func NewFactory(swap Swapper) (*Factory, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	return &Factory{swap: swap}, nil
}

func (f *Factory) CreateTarget(size render.Size) (render.Target, error) {
	if f.closed {
		return nil, errClosed
	}
	if err := render.CheckSize(size); err != nil {
		return nil, err
	}
	return newTarget(size, f.swap)
}

func (f *Factory) CreatePathGeometry(points []render.Point) (render.Geometry, error) {
	if f.closed {
		return nil, errClosed
	}
	if err := render.CheckContour(points); err != nil {
		return nil, err
	}
	return newGeometry(points), nil
}

func (f *Factory) Close() error {
	f.closed = true
	return nil
}

// drainErrors reads every pending GL error flag and maps the first one.
func drainErrors() error {
	var first uint32
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = code
		}
	}
	switch first {
	case 0:
		return nil
	case gl.OUT_OF_MEMORY, gl.INVALID_FRAMEBUFFER_OPERATION:
		return fmt.Errorf("gl error 0x%04x: %w", first, render.ErrRecreateTarget)
	default:
		return fmt.Errorf("gl error 0x%04x", first)
	}
}
