// internal/state/state.go
package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// State — экран игры: меню, игра или пауза
type State interface {
	Name() string
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит активный экран и пишет переходы в лог.
// Без состояния Update и Draw ничего не делают.
type StateMachine struct {
	current State
	log     *log.Logger
}

func NewStateMachine(logger *log.Logger) *StateMachine {
	return &StateMachine{log: logger}
}

// SetState завершает текущее состояние и входит в новое
func (sm *StateMachine) SetState(next State) {
	from := "none"
	if sm.current != nil {
		from = sm.current.Name()
		sm.current.Exit()
	}
	sm.current = next
	if next == nil {
		return
	}
	if sm.log != nil {
		sm.log.Debug("state changed", "from", from, "to", next.Name())
	}
	next.Enter()
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
