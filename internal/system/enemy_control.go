// internal/system/enemy_control.go
package system

import (
	"go-arena/internal/config"
	"go-arena/internal/entity"
	"go-arena/internal/event"
)

// EnemyControlSystem ведёт врагов прямо к их цели.
type EnemyControlSystem struct {
	ecs             *entity.ECS
	tunables        config.Tunables
	eventDispatcher *event.Dispatcher
}

func NewEnemyControlSystem(ecs *entity.ECS, tunables config.Tunables, eventDispatcher *event.Dispatcher) *EnemyControlSystem {
	return &EnemyControlSystem{
		ecs:             ecs,
		tunables:        tunables,
		eventDispatcher: eventDispatcher,
	}
}

// Update выполняет один тик для каждого врага независимо.
// Вектор к цели не нормализуется здесь: это делает ApplyAcceleration,
// поэтому враг разгоняется с полным ускорением на любом расстоянии.
// Границы арены на врагов не действуют.
func (s *EnemyControlSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		mov, hasMov := s.ecs.Movables[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasMov || !hasPos {
			continue
		}

		target, hasTarget := s.ecs.Positions[enemy.TargetID]
		if !hasTarget {
			if !enemy.TargetLost {
				enemy.TargetLost = true
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.EnemyTargetLost,
					Data: event.TargetLostData{EnemyID: id, TargetID: enemy.TargetID},
				})
			}
			continue
		}
		enemy.TargetLost = false

		toTarget := target.Vec().Sub(pos.Vec())
		stepMovable(id, mov, pos, toTarget, s.tunables, deltaTime)
	}
}
