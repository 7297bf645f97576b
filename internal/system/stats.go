// internal/system/stats.go
package system

import (
	"go-arena/internal/entity"
	"go-arena/internal/event"
	"go-arena/pkg/geom"
)

// Stats — накопленные за сессию показатели игрока.
type Stats struct {
	Ticks          int
	Elapsed        float64 // Суммарное время симуляции, с
	PlayerDistance float64
	PeakSpeed      float64
	WallHits       int
	TargetLosses   int
}

// StatsSystem считает показатели сессии. Подписывается на события движения.
type StatsSystem struct {
	ecs     *entity.ECS
	stats   Stats
	lastPos geom.Vec2
	hasLast bool
}

func NewStatsSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{ecs: ecs}
	eventDispatcher.Subscribe(s, event.PlayerHitWall, event.EnemyTargetLost, event.SceneReset)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerHitWall:
		s.stats.WallHits++
	case event.EnemyTargetLost:
		s.stats.TargetLosses++
	case event.SceneReset:
		s.hasLast = false
	}
}

// Update вызывается после систем движения.
func (s *StatsSystem) Update(deltaTime float64) {
	s.stats.Ticks++
	s.stats.Elapsed += deltaTime

	id, ok := s.ecs.PlayerID()
	p, hasPos := s.ecs.Positions[id]
	if !ok || !hasPos {
		s.hasLast = false
		return
	}
	pos := p.Vec()
	if s.hasLast {
		s.stats.PlayerDistance += pos.Sub(s.lastPos).Len()
	}
	s.lastPos, s.hasLast = pos, true

	if mov, ok := s.ecs.Movables[id]; ok {
		s.stats.PeakSpeed = max(s.stats.PeakSpeed, mov.Speed())
	}
}

// Snapshot возвращает копию текущих показателей.
func (s *StatsSystem) Snapshot() Stats {
	return s.stats
}
