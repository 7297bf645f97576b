// internal/app/game.go
package app

import (
	"go-arena/internal/arena"
	"go-arena/internal/component"
	"go-arena/internal/config"
	"go-arena/internal/entity"
	"go-arena/internal/event"
	"go-arena/internal/input"
	"go-arena/internal/logger"
	"go-arena/internal/system"
	"go-arena/internal/telemetry"
	"go-arena/internal/types"
	"go-arena/internal/utils"
	"go-arena/pkg/geom"

	"github.com/charmbracelet/log"
)

// Минимальное расстояние от игрока для случайно расставленных врагов
const randomSpawnClearance = 150.0

// Options — внешние зависимости игры. Нулевые значения допустимы.
type Options struct {
	Logger   *log.Logger
	Recorder *telemetry.Recorder
	Seed     int64 // 0: взять из настроек, а если и там 0, то от времени
}

// Game holds the main game state and logic.
type Game struct {
	ECS                 *entity.ECS
	Settings            config.Settings
	Bounds              arena.Bounds
	PlayerControlSystem *system.PlayerControlSystem
	EnemyControlSystem  *system.EnemyControlSystem
	SightlineSystem     *system.SightlineSystem
	StatsSystem         *system.StatsSystem
	EventDispatcher     *event.Dispatcher
	Rng                 *utils.PRNGService
	PlayerID            types.EntityID // ID сущности игрока

	logger   *log.Logger
	recorder *telemetry.Recorder
	tick     int
	gameTime float64
	isPaused bool
}

// NewGame создаёт игру и расставляет сцену. Настройки должны быть уже проверены.
func NewGame(settings config.Settings, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = settings.Seed
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	bounds := settings.Arena.Bounds()
	g := &Game{
		ECS:             ecs,
		Settings:        settings,
		Bounds:          bounds,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
		logger:          opts.Logger,
		recorder:        opts.Recorder,
	}
	g.PlayerControlSystem = system.NewPlayerControlSystem(ecs, settings.Player.Movement, bounds, eventDispatcher)
	g.EnemyControlSystem = system.NewEnemyControlSystem(ecs, settings.Enemy.Movement, eventDispatcher)
	g.SightlineSystem = system.NewSightlineSystem(ecs, config.ScreenWidth, config.ScreenHeight)
	g.StatsSystem = system.NewStatsSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener,
		event.PlayerSpawned,
		event.EnemySpawned,
		event.PlayerHitWall,
		event.EnemyTargetLost,
		event.SceneReset,
	)

	g.logger.Info("game created", "seed", g.Rng.Seed(), "arena", bounds)
	g.spawnScene()
	return g
}

// Update выполняет один тик симуляции. deltaTime приводится к [0, MaxDeltaTime].
func (g *Game) Update(deltaTime float64, in input.Snapshot) {
	if g.isPaused {
		return
	}
	dt := ClampDelta(deltaTime)

	g.PlayerControlSystem.Update(dt, in)
	g.EnemyControlSystem.Update(dt)
	g.SightlineSystem.Update(in)
	g.StatsSystem.Update(dt)

	g.tick++
	g.gameTime += dt
	g.recorder.Tick(g.tick, dt, g.EntityStates())
}

// ClampDelta отсекает отрицательные и слишком большие шаги времени.
func ClampDelta(deltaTime float64) float64 {
	return geom.ClampF(deltaTime, 0, config.MaxDeltaTime)
}

// Reset пересоздаёт сцену. Статистика сессии сохраняется.
func (g *Game) Reset() {
	g.ECS.Clear()
	g.EventDispatcher.Dispatch(event.Event{Type: event.SceneReset})
	g.spawnScene()
}

// TogglePause ставит или снимает паузу.
func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
	g.logger.Debug("pause toggled", "paused", g.isPaused)
}

func (g *Game) IsPaused() bool       { return g.isPaused }
func (g *Game) GetGameTime() float64 { return g.gameTime }
func (g *Game) Tick() int            { return g.tick }

// Stats возвращает показатели сессии.
func (g *Game) Stats() system.Stats {
	return g.StatsSystem.Snapshot()
}

// Player возвращает позицию и кинематику игрока, если он есть.
func (g *Game) Player() (*component.Position, *component.Movable, bool) {
	pos, hasPos := g.ECS.Positions[g.PlayerID]
	mov, hasMov := g.ECS.Movables[g.PlayerID]
	return pos, mov, hasPos && hasMov
}

// EntityStates собирает снимок всех движущихся сущностей в порядке id.
func (g *Game) EntityStates() []telemetry.EntityState {
	ids := entity.SortedIDs(g.ECS.Movables)
	states := make([]telemetry.EntityState, 0, len(ids))
	for _, id := range ids {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		mov := g.ECS.Movables[id]
		kind := "movable"
		if _, ok := g.ECS.Players[id]; ok {
			kind = "player"
		} else if _, ok := g.ECS.Enemies[id]; ok {
			kind = "enemy"
		}
		states = append(states, telemetry.EntityState{
			ID:   uint64(id),
			Kind: kind,
			X:    pos.X,
			Y:    pos.Y,
			VX:   mov.Velocity.X,
			VY:   mov.Velocity.Y,
		})
	}
	return states
}
