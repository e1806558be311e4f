//go:build !android

// Package window is the GLFW shell: it owns the native window and the event
// dispatcher, turns GLFW callbacks into typed events and runs the blocking
// message loop. Everything except Close must run on the main OS thread.
package window

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"tridemo/internal/config"
	"tridemo/internal/event"
	"tridemo/internal/input"
	"tridemo/internal/logging"
	"tridemo/internal/render"
	"tridemo/internal/window/pump"
)

type Options struct {
	Width, Height int
	Title         string
}

func DefaultOptions() Options {
	return Options{
		Width:  config.WindowWidth,
		Height: config.WindowHeight,
		Title:  config.WindowTitle,
	}
}

// Shell owns the GLFW window and the dispatcher every subscriber registers
// with. Callbacks capture the shell directly, so no per-window user pointer
// is needed.
type Shell struct {
	win        *glfw.Window
	dispatcher *event.Dispatcher
	input      *input.Translator
	pump       *pump.Pump
	log        *slog.Logger
}

// New initialises GLFW and creates the window with a current GL 4.1 core
// context. Failure is fatal to startup.
func New(opts Options) (*Shell, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	s := &Shell{
		win:        win,
		dispatcher: event.NewDispatcher(),
		input:      input.NewTranslator(),
		pump:       pump.New(glfw.PostEmptyEvent),
		log:        logging.Logger(),
	}
	s.updateScale()
	s.installCallbacks()
	return s, nil
}

func (s *Shell) Dispatcher() *event.Dispatcher { return s.dispatcher }

// Window exposes the native window; it satisfies glrender.Swapper.
func (s *Shell) Window() *glfw.Window { return s.win }

// ClientSize returns the framebuffer size in pixels.
func (s *Shell) ClientSize() render.Size {
	w, h := s.win.GetFramebufferSize()
	return render.Size{Width: uint32(max(w, 0)), Height: uint32(max(h, 0))}
}

func (s *Shell) updateScale() {
	winW, winH := s.win.GetSize()
	fbW, fbH := s.win.GetFramebufferSize()
	s.input.SetScale(winW, winH, fbW, fbH)
}

func (s *Shell) installCallbacks() {
	s.win.SetSizeCallback(func(_ *glfw.Window, _, _ int) {
		s.updateScale()
	})
	s.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.updateScale()
		s.post(input.Resize(width, height))
	})
	s.win.SetRefreshCallback(func(_ *glfw.Window) {
		s.post(event.Paint())
	})
	s.win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		cx, cy := w.GetCursorPos()
		switch action {
		case glfw.Press:
			s.post(s.input.Press(cx, cy))
		case glfw.Release:
			s.post(s.input.Release(cx, cy))
		}
	})
	s.win.SetCursorPosCallback(func(w *glfw.Window, cx, cy float64) {
		held := w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
		s.post(s.input.Move(cx, cy, held))
	})
	s.win.SetCloseCallback(func(w *glfw.Window) {
		s.log.Info("close requested")
		s.post(event.WindowClosed())
		s.Close()
	})
}

func (s *Shell) post(e event.Event) {
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug("event", "event", e)
	}
	s.dispatcher.PostEvent(e)
}

// Run shows the window, posts WindowCreated and blocks in the message loop
// until Close is called or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) {
	s.win.Show()
	s.post(event.WindowCreated())

	s.log.Info("run event loop")
	s.pump.Run(ctx, glfw.WaitEvents)
}

// Close asks the loop to stop. Safe to call from any goroutine while the
// shell is alive.
func (s *Shell) Close() {
	s.pump.Close()
}

// Destroy releases the window and terminates GLFW. Call it on the main
// thread after Run returns and after every subscriber holding GL resources
// has been closed.
func (s *Shell) Destroy() {
	if s.win == nil {
		return
	}
	// Close calls racing with teardown must not wake a terminated GLFW.
	s.pump.Detach()
	s.win.Destroy()
	s.win = nil
	glfw.Terminate()
}
