// Package event defines the typed window events and the dispatcher that fans
// them out to subscribers.
package event

import "fmt"

// Code is the discriminant of an Event.
type Code uint8

const (
	CodeResize Code = iota
	CodePaint
	CodeMouse
	CodeWindowCreated
	CodeWindowClosed
)

func (c Code) String() string {
	switch c {
	case CodeResize:
		return "resize"
	case CodePaint:
		return "paint"
	case CodeMouse:
		return "mouse"
	case CodeWindowCreated:
		return "window-created"
	case CodeWindowClosed:
		return "window-closed"
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// MouseAction is the sub-code of a mouse event.
type MouseAction uint8

const (
	ButtonDown MouseAction = iota
	ButtonUp
	Move
)

func (a MouseAction) String() string {
	switch a {
	case ButtonDown:
		return "button-down"
	case ButtonUp:
		return "button-up"
	case Move:
		return "move"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Size is the payload of a resize event, in framebuffer pixels.
type Size struct {
	Width, Height uint32
}

// MouseState is the payload of a mouse event. X and Y are client-area
// coordinates; Held reports whether the left button is down.
type MouseState struct {
	Action MouseAction
	X, Y   int
	Held   bool
}

// Event is a closed tagged value: Code selects which payload field is
// meaningful. Events are passed by value and never mutated after
// construction.
type Event struct {
	Code  Code
	Size  Size       // CodeResize
	Mouse MouseState // CodeMouse
}

func Resize(width, height uint32) Event {
	return Event{Code: CodeResize, Size: Size{Width: width, Height: height}}
}

func Paint() Event { return Event{Code: CodePaint} }

func Mouse(action MouseAction, x, y int, held bool) Event {
	return Event{Code: CodeMouse, Mouse: MouseState{Action: action, X: x, Y: y, Held: held}}
}

func WindowCreated() Event { return Event{Code: CodeWindowCreated} }

func WindowClosed() Event { return Event{Code: CodeWindowClosed} }

func (e Event) String() string {
	switch e.Code {
	case CodeResize:
		return fmt.Sprintf("resize %dx%d", e.Size.Width, e.Size.Height)
	case CodeMouse:
		return fmt.Sprintf("mouse %s (%d,%d) held=%t", e.Mouse.Action, e.Mouse.X, e.Mouse.Y, e.Mouse.Held)
	}
	return e.Code.String()
}
