// internal/event/types.go
package event

import (
	"go-arena/internal/arena"
	"go-arena/internal/types"
	"go-arena/pkg/geom"
)

const (
	PlayerSpawned   EventType = "PlayerSpawned"
	EnemySpawned    EventType = "EnemySpawned"
	PlayerHitWall   EventType = "PlayerHitWall"   // Позицию игрока вернули внутрь арены
	EnemyTargetLost EventType = "EnemyTargetLost" // У врага пропала цель, тик пропущен
	SceneReset      EventType = "SceneReset"
)

// SpawnData — данные для PlayerSpawned и EnemySpawned.
type SpawnData struct {
	ID       types.EntityID
	Position geom.Vec2
}

// WallHitData — данные для PlayerHitWall.
type WallHitData struct {
	ID        types.EntityID
	Walls     []arena.WallLocation
	Attempted geom.Vec2 // Позиция до ограничения
	Clamped   geom.Vec2
}

// TargetLostData — данные для EnemyTargetLost.
type TargetLostData struct {
	EnemyID  types.EntityID
	TargetID types.EntityID
}
