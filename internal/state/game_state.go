// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena/internal/app"
	"go-arena/internal/config"
	"go-arena/internal/input"
	"go-arena/internal/render"
	"go-arena/internal/ui"
	"go-arena/pkg/geom"
)

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *render.RenderSystem
	indicator *ui.StateIndicator
	debug     bool
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	indicator := ui.NewStateIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	return &GameState{
		sm:        sm,
		game:      game,
		renderer:  render.NewRenderSystem(game.ECS),
		indicator: indicator,
	}
}

func (g *GameState) Name() string { return "game" }

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if pausePressed() || g.indicatorClicked() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.game.Update(deltaTime, pollInput())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)

	hud := render.HUD{
		Tick:   g.game.Tick(),
		Stats:  g.game.Stats(),
		Paused: g.game.IsPaused(),
	}
	if pos, mov, ok := g.game.Player(); ok {
		hud.Speed = mov.Speed()
		hud.Position = pos.Vec()
	}
	g.renderer.DrawHUD(screen, hud)

	stateColor := config.RunningColor
	if g.game.IsPaused() {
		stateColor = config.PausedColor
	}
	g.indicator.Draw(screen, stateColor)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, debugLine(), 0, config.ScreenHeight-16)
	}
}

func (g *GameState) Exit() {}

// indicatorClicked — клик левой кнопкой по лампе состояния
func (g *GameState) indicatorClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	dx := float32(x) - g.indicator.X
	dy := float32(y) - g.indicator.Y
	return dx*dx+dy*dy <= g.indicator.Radius*g.indicator.Radius
}

// pollInput собирает снимок клавиатуры и курсора за текущий тик.
// Курсор за пределами окна считается отсутствующим.
func pollInput() input.Snapshot {
	cx, cy := ebiten.CursorPosition()
	return input.Snapshot{
		Up:        anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:      anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:      anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:     anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Cursor:    geom.V(float64(cx), float64(cy)),
		HasCursor: cx >= 0 && cy >= 0 && cx < config.ScreenWidth && cy < config.ScreenHeight,
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func debugLine() string {
	return fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
}
