// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 500
	ScreenHeight = 500
	WindowTitle  = "MouseDroppings"

	DroppingSize = 10 // диаметр кружка в пикселях

	OverlayX          = 6
	OverlayY          = 16
	OverlayLineHeight = 15
)

var (
	BackgroundColor = color.RGBA{238, 238, 238, 255} // светло-серый фон панели
	DroppingColor   = color.RGBA{255, 0, 0, 255}
	OverlayColor    = color.RGBA{20, 20, 30, 255}
)
