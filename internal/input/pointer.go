// internal/input/pointer.go
package input

import (
	"image"

	"mouse-droppings/internal/droppings"
	"mouse-droppings/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

// CursorSource reports the cursor position in surface coordinates.
type CursorSource interface {
	CursorPosition() (x, y int)
}

// CursorFunc adapts a plain function to CursorSource.
type CursorFunc func() (int, int)

func (f CursorFunc) CursorPosition() (int, int) {
	return f()
}

// EbitenCursor reads the position from ebiten. Only valid inside the game loop.
func EbitenCursor() CursorSource {
	return CursorFunc(ebiten.CursorPosition)
}

// PointerTracker turns polled cursor positions into PointerMoved and
// PointerExited events.
//
// ebiten only exposes the current cursor position, so motion is a change of
// position while inside the bounds, and exit is the first poll outside the
// bounds after being inside.
type PointerTracker struct {
	src        CursorSource
	dispatcher *event.Dispatcher
	bounds     image.Rectangle

	primed bool
	inside bool
	last   droppings.Point
}

func NewPointerTracker(src CursorSource, dispatcher *event.Dispatcher, width, height int) *PointerTracker {
	return &PointerTracker{
		src:        src,
		dispatcher: dispatcher,
		bounds:     image.Rect(0, 0, width, height),
	}
}

// Poll samples the cursor once. The first call only records a baseline.
func (t *PointerTracker) Poll() {
	x, y := t.src.CursorPosition()
	p := droppings.Point{X: x, Y: y}
	in := image.Pt(x, y).In(t.bounds)

	if !t.primed {
		t.primed = true
		t.inside = in
		t.last = p
		return
	}

	if !in {
		if t.inside {
			t.inside = false
			t.dispatcher.Dispatch(event.Event{Type: event.PointerExited})
		}
		t.last = p
		return
	}

	if t.inside && p == t.last {
		return
	}
	t.inside = true
	t.last = p
	t.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: p})
}

// Inside reports whether the cursor was over the surface at the last poll.
func (t *PointerTracker) Inside() bool {
	return t.inside
}

// Last returns the cursor position seen at the last poll.
func (t *PointerTracker) Last() droppings.Point {
	return t.last
}
