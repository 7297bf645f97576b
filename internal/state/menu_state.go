// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena/internal/config"
	"go-arena/internal/render"
)

// MenuState — стартовый экран, Space запускает игру
type MenuState struct {
	sm       *StateMachine
	next     *GameState
	renderer *render.RenderSystem
}

func NewMenuState(sm *StateMachine, next *GameState) *MenuState {
	return &MenuState{sm: sm, next: next, renderer: next.renderer}
}

func (m *MenuState) Name() string { return "menu" }

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.renderer.DrawCentered(screen, "press SPACE to start", config.TextColor)
}

func (m *MenuState) Exit() {}
