// cmd/droppings/main.go
package main

import (
	"log"

	"mouse-droppings/internal/config"
	"mouse-droppings/internal/input"
	"mouse-droppings/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newApp() *AppGame {
	sm := state.NewStateMachine()
	sm.SetState(state.NewDroppingsState(sm, input.EbitenCursor()))
	return &AppGame{stateMachine: sm}
}

func main() {
	app := newApp()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	// кадр перерисовывается только по запросу поверхности
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
