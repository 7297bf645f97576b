// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-arena/internal/component"
	"go-arena/internal/types"
)

// ECS хранит компоненты всех сущностей по их идентификаторам.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Movables    map[types.EntityID]*component.Movable
	Players     map[types.EntityID]*component.Player
	Enemies     map[types.EntityID]*component.Enemy
	Renderables map[types.EntityID]*component.Renderable
	Walls       map[types.EntityID]*component.Wall
	Sightlines  map[types.EntityID]*component.Sightline
}

func NewECS() *ECS {
	ecs := &ECS{}
	ecs.Clear()
	return ecs
}

// Clear удаляет все сущности. Указатель на ECS остаётся прежним,
// поэтому системы, которые его держат, продолжают работать.
func (ecs *ECS) Clear() {
	ecs.NextID = 1
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Movables = make(map[types.EntityID]*component.Movable)
	ecs.Players = make(map[types.EntityID]*component.Player)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.Walls = make(map[types.EntityID]*component.Wall)
	ecs.Sightlines = make(map[types.EntityID]*component.Sightline)
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// PlayerID возвращает игрока. Предполагаем, что он только один;
// при нескольких берётся с наименьшим id, чтобы результат не зависел от порядка map.
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	var found types.EntityID
	for id := range ecs.Players {
		if found == 0 || id < found {
			found = id
		}
	}
	return found, found != 0
}

// SortedIDs возвращает ключи map по возрастанию для детерминированного обхода.
func SortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
