// internal/system/player_control.go
package system

import (
	"go-arena/internal/arena"
	"go-arena/internal/config"
	"go-arena/internal/entity"
	"go-arena/internal/event"
	"go-arena/internal/input"
	"go-arena/pkg/geom"
)

// PlayerControlSystem двигает игрока по клавиатурному вводу и держит его внутри арены.
type PlayerControlSystem struct {
	ecs             *entity.ECS
	tunables        config.Tunables
	bounds          arena.Bounds
	eventDispatcher *event.Dispatcher
}

func NewPlayerControlSystem(ecs *entity.ECS, tunables config.Tunables, bounds arena.Bounds, eventDispatcher *event.Dispatcher) *PlayerControlSystem {
	return &PlayerControlSystem{
		ecs:             ecs,
		tunables:        tunables,
		bounds:          bounds,
		eventDispatcher: eventDispatcher,
	}
}

// Update выполняет один тик. Без игрока тик пропускается.
func (s *PlayerControlSystem) Update(deltaTime float64, in input.Snapshot) {
	for _, id := range entity.SortedIDs(s.ecs.Players) {
		player := s.ecs.Players[id]
		mov, hasMov := s.ecs.Movables[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasMov || !hasPos {
			continue
		}

		direction := in.Direction()
		stepMovable(id, mov, pos, direction, s.tunables, deltaTime)

		// Ограничение по стенам правит только позицию: скорость может смотреть в стену
		attempted := pos.Vec()
		interior := s.bounds.Interior(player.Diameter / 2)
		clamped, changed := interior.Clamp(attempted)
		if !changed {
			continue
		}
		pos.X, pos.Y = clamped.X, clamped.Y
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerHitWall,
			Data: event.WallHitData{
				ID:        id,
				Walls:     touchedWalls(interior, attempted),
				Attempted: attempted,
				Clamped:   clamped,
			},
		})
	}
}

// touchedWalls определяет, за какие стены вышла точка.
func touchedWalls(r arena.Rect, p geom.Vec2) []arena.WallLocation {
	var walls []arena.WallLocation
	if p.X < r.MinX {
		walls = append(walls, arena.Left)
	}
	if p.X > r.MaxX {
		walls = append(walls, arena.Right)
	}
	if p.Y < r.MinY {
		walls = append(walls, arena.Bottom)
	}
	if p.Y > r.MaxY {
		walls = append(walls, arena.Top)
	}
	return walls
}
