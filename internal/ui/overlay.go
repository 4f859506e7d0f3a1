// internal/ui/overlay.go
package ui

import (
	"fmt"
	"image/color"

	"mouse-droppings/internal/config"
	"mouse-droppings/internal/droppings"
	"mouse-droppings/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Overlay — отладочная подпись поверх капель (F3)
type Overlay struct {
	Visible   bool
	fontFace  font.Face
	textColor color.Color
}

func NewOverlay() *Overlay {
	return &Overlay{
		fontFace:  basicfont.Face7x13,
		textColor: config.OverlayColor,
	}
}

// OnEvent follows OverlayToggled; the payload carries the new visibility.
func (o *Overlay) OnEvent(e event.Event) {
	if e.Type != event.OverlayToggled {
		return
	}
	if visible, ok := e.Data.(bool); ok {
		o.Visible = visible
	}
}

// Lines returns the overlay text for the given trail length and cursor.
func (o *Overlay) Lines(count int, cursor droppings.Point, inside bool) []string {
	pos := "outside"
	if inside {
		pos = fmt.Sprintf("%d,%d", cursor.X, cursor.Y)
	}
	return []string{
		fmt.Sprintf("droppings: %d", count),
		"cursor: " + pos,
	}
}

func (o *Overlay) Draw(screen *ebiten.Image, count int, cursor droppings.Point, inside bool) {
	if !o.Visible {
		return
	}
	y := config.OverlayY
	for _, line := range o.Lines(count, cursor, inside) {
		text.Draw(screen, line, o.fontFace, config.OverlayX, y, o.textColor)
		y += config.OverlayLineHeight
	}
}
