// internal/state/droppings_state.go
package state

import (
	"log"

	"mouse-droppings/internal/config"
	"mouse-droppings/internal/droppings"
	"mouse-droppings/internal/event"
	"mouse-droppings/internal/input"
	"mouse-droppings/internal/ui"
	"mouse-droppings/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DroppingsState — единственное состояние: поверхность с каплями
type DroppingsState struct {
	sm         *StateMachine
	dispatcher *event.Dispatcher
	surface    *droppings.Surface
	tracker    *input.PointerTracker
	overlay    *ui.Overlay
	overlayKey func() bool
}

func NewDroppingsState(sm *StateMachine, cursor input.CursorSource) *DroppingsState {
	dispatcher := event.NewDispatcher()
	return &DroppingsState{
		sm:         sm,
		dispatcher: dispatcher,
		surface:    droppings.NewSurface(),
		tracker:    input.NewPointerTracker(cursor, dispatcher, config.ScreenWidth, config.ScreenHeight),
		overlay:    ui.NewOverlay(),
		overlayKey: func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyF3) },
	}
}

func (s *DroppingsState) Enter() {
	s.dispatcher.Subscribe(s.surface, event.PointerMoved, event.PointerExited, event.OverlayToggled)
	s.dispatcher.Subscribe(s.overlay, event.OverlayToggled)
	s.surface.RequestRedraw()
	log.Println("droppings: surface ready")
}

func (s *DroppingsState) Update() {
	if s.overlayKey() {
		s.dispatcher.Dispatch(event.Event{Type: event.OverlayToggled, Data: !s.overlay.Visible})
	}
	s.tracker.Poll()
}

// Draw repaints only when something asked for it; the screen keeps the last
// frame otherwise.
func (s *DroppingsState) Draw(screen *ebiten.Image) {
	if !s.paint(render.NewImageCanvas(screen)) {
		return
	}
	s.overlay.Draw(screen, s.surface.Len(), s.tracker.Last(), s.tracker.Inside())
}

func (s *DroppingsState) paint(c render.Canvas) bool {
	if !s.surface.TakeRedraw() {
		return false
	}
	s.surface.Render(c)
	return true
}

func (s *DroppingsState) Exit() {
	s.dispatcher.Unsubscribe(s.surface, event.PointerMoved, event.PointerExited, event.OverlayToggled)
	s.dispatcher.Unsubscribe(s.overlay, event.OverlayToggled)
}

func (s *DroppingsState) Surface() *droppings.Surface {
	return s.surface
}
