// internal/system/sightline.go
package system

import (
	"math"

	"go-arena/internal/component"
	"go-arena/internal/entity"
	"go-arena/internal/input"
	"go-arena/pkg/geom"
)

// SightlineSystem поворачивает линию прицела игрока в сторону курсора.
// Иерархия игрок -> опора -> отрезок собирается явно через geom.Affine.
type SightlineSystem struct {
	ecs          *entity.ECS
	screenWidth  float64
	screenHeight float64
}

func NewSightlineSystem(ecs *entity.ECS, screenWidth, screenHeight float64) *SightlineSystem {
	return &SightlineSystem{ecs: ecs, screenWidth: screenWidth, screenHeight: screenHeight}
}

// Update поворачивает линию к курсору и прикрепляет её к текущей позиции игрока.
// Без курсора угол и длина остаются прежними, а концы линии всё равно следуют за игроком.
func (s *SightlineSystem) Update(in input.Snapshot) {
	var cursor geom.Vec2
	if in.HasCursor {
		cursor = input.ScreenToWorld(in.Cursor, s.screenWidth, s.screenHeight)
	}
	for _, line := range s.ecs.Sightlines {
		pos, hasPos := s.ecs.Positions[line.ParentID]
		if !hasPos {
			continue
		}
		if in.HasCursor {
			delta := cursor.Sub(pos.Vec())
			line.Angle = delta.Angle()
			line.Length = math.Min(delta.Len(), line.MaxLength)
			line.HasCursor = true
		}
		if !line.HasCursor {
			continue
		}
		diameter := 1.0
		if player, ok := s.ecs.Players[line.ParentID]; ok && player.Diameter > 0 {
			diameter = player.Diameter
		}
		world := sightlineWorld(pos, diameter, line)
		line.Start = world.Apply(geom.V(-0.5, 0))
		line.End = world.Apply(geom.V(0.5, 0))
	}
}

// sightlineWorld = мир родителя × опора × отрезок единичной длины.
// Опора снимает масштаб родителя, чтобы длина отрезка была в мировых единицах.
func sightlineWorld(parent *component.Position, diameter float64, line *component.Sightline) geom.Affine {
	parentWorld := geom.Translate(parent.X, parent.Y).Mul(geom.ScaleXY(diameter, diameter))
	pivotLocal := geom.Rotate(line.Angle).Mul(geom.ScaleXY(1/diameter, 1/diameter))
	meshLocal := geom.Translate(line.Length/2, 0).Mul(geom.ScaleXY(line.Length, 1))
	return parentWorld.Mul(pivotLocal).Mul(meshLocal)
}
