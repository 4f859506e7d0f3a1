// internal/droppings/surface.go
package droppings

import (
	"image/color"
	"slices"

	"mouse-droppings/internal/config"
	"mouse-droppings/internal/event"
	"mouse-droppings/pkg/render"
)

// Point — координаты курсора в системе координат поверхности
type Point struct {
	X, Y int
}

// Surface records where the pointer has been and paints a dropping at each
// recorded position. All methods must be called from the ebiten loop.
type Surface struct {
	trail      []Point
	size       int
	color      color.Color
	background color.Color
	redraw     bool
}

type Option func(*Surface)

// WithSize sets the dropping diameter. Non-positive values are ignored.
func WithSize(size int) Option {
	return func(s *Surface) {
		if size > 0 {
			s.size = size
		}
	}
}

func WithColor(c color.Color) Option {
	return func(s *Surface) { s.color = c }
}

func WithBackground(c color.Color) Option {
	return func(s *Surface) { s.background = c }
}

// NewSurface returns a surface with an empty trail. A redraw is pending so the
// first frame paints the background.
func NewSurface(opts ...Option) *Surface {
	s := &Surface{
		size:       config.DroppingSize,
		color:      config.DroppingColor,
		background: config.BackgroundColor,
		redraw:     true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnPointerMove appends p to the trail. Duplicates are kept.
func (s *Surface) OnPointerMove(p Point) {
	s.trail = append(s.trail, p)
	s.RequestRedraw()
}

// OnPointerExit clears the trail.
func (s *Surface) OnPointerExit() {
	s.trail = s.trail[:0]
	s.RequestRedraw()
}

// OnEvent subscribes the surface to the dispatcher.
func (s *Surface) OnEvent(e event.Event) {
	switch e.Type {
	case event.PointerMoved:
		if p, ok := e.Data.(Point); ok {
			s.OnPointerMove(p)
		}
	case event.PointerExited:
		s.OnPointerExit()
	case event.OverlayToggled:
		s.RequestRedraw()
	}
}

// Render paints the background and then one dropping per trail point, in
// trail order.
func (s *Surface) Render(c render.Canvas) {
	c.Fill(s.background)

	radius := float32(s.size) / 2
	for _, p := range s.trail {
		c.FillCircle(float32(p.X), float32(p.Y), radius, s.color)
	}
}

func (s *Surface) RequestRedraw() {
	s.redraw = true
}

func (s *Surface) RedrawPending() bool {
	return s.redraw
}

// TakeRedraw reports whether a redraw was requested and resets the request,
// so any number of requests between two frames cost one repaint.
func (s *Surface) TakeRedraw() bool {
	pending := s.redraw
	s.redraw = false
	return pending
}

// Points returns a copy of the trail.
func (s *Surface) Points() []Point {
	return slices.Clone(s.trail)
}

func (s *Surface) Len() int {
	return len(s.trail)
}

func (s *Surface) Empty() bool {
	return len(s.trail) == 0
}

func (s *Surface) Size() int {
	return s.size
}
