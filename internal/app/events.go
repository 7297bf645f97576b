// internal/app/events.go
package app

import (
	"go-arena/internal/event"

	"go.uber.org/zap"
)

// GameEventListener пишет события движения в лог и трассу.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.PlayerSpawned, event.EnemySpawned:
		data, _ := e.Data.(event.SpawnData)
		g.logger.Debug("spawned", "kind", string(e.Type), "id", data.ID, "x", data.Position.X, "y", data.Position.Y)
		g.recorder.Event(string(e.Type), zap.Uint64("id", uint64(data.ID)))
	case event.PlayerHitWall:
		data, _ := e.Data.(event.WallHitData)
		g.logger.Debug("player held at wall", "id", data.ID, "walls", data.Walls, "x", data.Clamped.X, "y", data.Clamped.Y)
		g.recorder.Event(string(e.Type),
			zap.Int("tick", g.tick),
			zap.Float64("attempted_x", data.Attempted.X),
			zap.Float64("attempted_y", data.Attempted.Y),
		)
	case event.EnemyTargetLost:
		data, _ := e.Data.(event.TargetLostData)
		g.logger.Warn("enemy lost its target", "enemy", data.EnemyID, "target", data.TargetID)
		g.recorder.Event(string(e.Type), zap.Uint64("enemy", uint64(data.EnemyID)))
	case event.SceneReset:
		g.logger.Info("scene reset", "tick", g.tick)
		g.recorder.Event(string(e.Type), zap.Int("tick", g.tick))
	}
}
