// internal/entity/spawn.go
package entity

import (
	"image/color"

	"go-arena/internal/arena"
	"go-arena/internal/component"
	"go-arena/internal/types"
	"go-arena/pkg/geom"
)

// SpawnMovable — единственный способ создать сущность с кинематическим состоянием.
// Вместе с Movable всегда создаются Position и Renderable.
func (ecs *ECS) SpawnMovable(pos geom.Vec2, z, diameter float64, c color.RGBA) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y, Z: z}
	ecs.Movables[id] = component.NewMovable()
	ecs.Renderables[id] = &component.Renderable{Color: c, Radius: float32(diameter / 2)}
	return id
}

// SpawnPlayer создаёт игрока.
func (ecs *ECS) SpawnPlayer(pos geom.Vec2, z, diameter float64, c color.RGBA) types.EntityID {
	id := ecs.SpawnMovable(pos, z, diameter, c)
	ecs.Players[id] = &component.Player{Diameter: diameter}
	return id
}

// SpawnEnemy создаёт преследователя, который гонится за target.
func (ecs *ECS) SpawnEnemy(pos geom.Vec2, z, diameter float64, c color.RGBA, target types.EntityID) types.EntityID {
	id := ecs.SpawnMovable(pos, z, diameter, c)
	ecs.Enemies[id] = &component.Enemy{Diameter: diameter, TargetID: target}
	return id
}

// SpawnWall создаёт статичную стену; кинематики у неё нет.
func (ecs *ECS) SpawnWall(loc arena.WallLocation, bounds arena.Bounds, z float64, c color.RGBA) types.EntityID {
	id := ecs.NewEntity()
	center := bounds.WallPosition(loc)
	size := bounds.WallSize(loc)
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y, Z: z}
	ecs.Walls[id] = &component.Wall{Location: loc, Width: size.X, Height: size.Y, Color: c}
	return id
}

// SpawnSightline прикрепляет линию прицела к parent.
func (ecs *ECS) SpawnSightline(parent types.EntityID, maxLength float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Sightlines[id] = &component.Sightline{ParentID: parent, MaxLength: maxLength}
	return id
}
