// internal/app/spawn.go
package app

import (
	"go-arena/internal/arena"
	"go-arena/internal/config"
	"go-arena/internal/event"
	"go-arena/pkg/geom"
)

// spawnScene расставляет стены, игрока, линию прицела и врагов.
func (g *Game) spawnScene() {
	for _, loc := range arena.Locations {
		g.ECS.SpawnWall(loc, g.Bounds, config.WallZ, config.WallColor)
	}
	g.createPlayerEntity()

	interior := g.Bounds.Interior(g.Settings.Enemy.Diameter / 2)
	for _, p := range g.Settings.Enemy.Spawns {
		pos := geom.V(p.X, p.Y)
		// Стены врагов не держат, поэтому точку за стеной не сдвигаем
		if !interior.Contains(pos) {
			g.logger.Warn("enemy spawn outside arena", "x", pos.X, "y", pos.Y)
		}
		g.spawnEnemy(pos)
	}
	start := geom.V(g.Settings.Player.Start.X, g.Settings.Player.Start.Y)
	for i := 0; i < g.Settings.Enemy.RandomCount; i++ {
		g.spawnEnemy(g.Rng.PointAwayFrom(interior, start, randomSpawnClearance, 32))
	}
}

func (g *Game) createPlayerEntity() {
	p := g.Settings.Player
	pos := geom.V(p.Start.X, p.Start.Y)
	g.PlayerID = g.ECS.SpawnPlayer(pos, config.PlayerZ, p.Diameter, config.PlayerColor)
	if g.Settings.Sightline.Enabled {
		g.ECS.SpawnSightline(g.PlayerID, g.Settings.Sightline.MaxLength)
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlayerSpawned,
		Data: event.SpawnData{ID: g.PlayerID, Position: pos},
	})
}

func (g *Game) spawnEnemy(pos geom.Vec2) {
	id := g.ECS.SpawnEnemy(pos, config.EnemyZ, g.Settings.Enemy.Diameter, config.EnemyColor, g.PlayerID)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.SpawnData{ID: id, Position: pos},
	})
}
