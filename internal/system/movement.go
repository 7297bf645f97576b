// internal/system/movement.go
package system

import (
	"go-arena/internal/component"
	"go-arena/internal/config"
	"go-arena/internal/types"
	"go-arena/pkg/geom"
)

// stepMovable выполняет один тик кинематики в фиксированном порядке:
// ускорение -> затухание по осям -> ограничение скорости -> интегрирование позиции.
func stepMovable(id types.EntityID, mov *component.Movable, pos *component.Position, direction geom.Vec2, t config.Tunables, dt float64) {
	mov.ApplyAcceleration(direction, t.Acceleration, dt)
	mov.ApplyAxisDamping(direction, t.Damping, dt)
	mov.ClampMaxSpeed(t.MaxSpeed)
	mov.IntegratePosition(pos, dt)

	assertFinite(id, "velocity", mov.Velocity)
	assertFinite(id, "position", pos.Vec())
}
