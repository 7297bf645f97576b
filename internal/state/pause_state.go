// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var pauseShade = color.RGBA{0, 0, 0, 128}

// PauseState замораживает симуляцию и рисует поверх игры затемнение
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Name() string { return "pause" }

func (s *PauseState) Enter() {
	if !s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() || s.previousState.indicatorClicked() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, pauseShade, false)
	s.previousState.renderer.DrawCentered(screen, "PAUSED", config.TextColor)
}

// Exit снимает паузу при возврате в игру
func (s *PauseState) Exit() {
	if s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
