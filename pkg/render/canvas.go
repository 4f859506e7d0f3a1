// pkg/render/canvas.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the minimal drawing context the droppings surface paints into.
type Canvas interface {
	// Fill paints the whole canvas with c.
	Fill(c color.Color)
	// FillCircle draws a filled circle centered at (cx, cy).
	FillCircle(cx, cy, radius float32, c color.Color)
}

// ImageCanvas draws onto an ebiten image.
type ImageCanvas struct {
	img       *ebiten.Image
	antialias bool
}

func NewImageCanvas(img *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{img: img, antialias: true}
}

func (c *ImageCanvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

func (c *ImageCanvas) FillCircle(cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.img, cx, cy, radius, clr, c.antialias)
}

// Image returns the underlying target.
func (c *ImageCanvas) Image() *ebiten.Image {
	return c.img
}
