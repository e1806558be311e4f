// Package input turns raw pointer callbacks into typed mouse events.
package input

import (
	"math"

	"tridemo/internal/event"
)

// Translator converts window-space cursor positions into framebuffer
// coordinates and tracks the left button. The zero value assumes a 1:1
// window-to-framebuffer scale.
type Translator struct {
	held           bool
	scaleX, scaleY float64
}

func NewTranslator() *Translator {
	return &Translator{scaleX: 1, scaleY: 1}
}

// SetScale records the window and framebuffer sizes. On HiDPI displays the
// framebuffer is larger than the window and cursor positions must be scaled.
func (t *Translator) SetScale(winW, winH, fbW, fbH int) {
	if winW <= 0 || winH <= 0 || fbW <= 0 || fbH <= 0 {
		return
	}
	t.scaleX = float64(fbW) / float64(winW)
	t.scaleY = float64(fbH) / float64(winH)
}

// Point maps a window-space cursor position to integer client coordinates.
func (t *Translator) Point(cx, cy float64) (int, int) {
	sx, sy := t.scaleX, t.scaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return int(math.Floor(cx * sx)), int(math.Floor(cy * sy))
}

// Held reports whether the left button is currently down.
func (t *Translator) Held() bool { return t.held }

// Press records a left-button press at the cursor position.
func (t *Translator) Press(cx, cy float64) event.Event {
	t.held = true
	x, y := t.Point(cx, cy)
	return event.Mouse(event.ButtonDown, x, y, true)
}

// Release records a left-button release at the cursor position.
func (t *Translator) Release(cx, cy float64) event.Event {
	t.held = false
	x, y := t.Point(cx, cy)
	return event.Mouse(event.ButtonUp, x, y, false)
}

// Move reports a cursor move. held is the platform's current button state;
// it also resynchronises the tracked state when a release happened outside
// the window.
func (t *Translator) Move(cx, cy float64, held bool) event.Event {
	t.held = held
	x, y := t.Point(cx, cy)
	return event.Mouse(event.Move, x, y, held)
}

// Resize converts a framebuffer size callback; negative sizes clamp to 0.
func Resize(width, height int) event.Event {
	return event.Resize(clampSize(width), clampSize(height))
}

func clampSize(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
