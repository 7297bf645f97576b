// internal/component/movement.go
package component

import (
	"go-arena/internal/config"
	"go-arena/pkg/geom"
)

// Position — компонент позиции в мировых координатах (ось Y направлена вверх).
// Z используется только для порядка отрисовки.
type Position struct {
	X, Y, Z float64
}

// Vec возвращает плоскую часть позиции.
func (p *Position) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

// Movable — кинематическое состояние сущности: скорость в единицах в секунду.
// Создаётся только через entity.ECS.SpawnMovable с нулевой скоростью.
type Movable struct {
	Velocity geom.Vec2
}

// NewMovable возвращает покоящееся состояние.
func NewMovable() *Movable {
	return &Movable{}
}

// ApplyAcceleration добавляет к скорости ускорение вдоль direction.
// Направление нормализуется здесь же; нулевой вектор означает «нет ввода».
func (m *Movable) ApplyAcceleration(direction geom.Vec2, acceleration, dt float64) {
	accel := direction.NormalizeOrZero().Scale(acceleration)
	m.Velocity = m.Velocity.Add(accel.Scale(dt))
}

// ApplyAxisDamping гасит скорость по осям, на которых нет желаемого направления.
// Активные оси не трогаются. Малые значения обнуляются, а не затухают бесконечно.
func (m *Movable) ApplyAxisDamping(direction geom.Vec2, damping, dt float64) {
	factor := max(0, 1-damping*dt)
	if direction.X == 0 {
		m.Velocity.X = dampAxis(m.Velocity.X, factor)
	}
	if direction.Y == 0 {
		m.Velocity.Y = dampAxis(m.Velocity.Y, factor)
	}
}

func dampAxis(v, factor float64) float64 {
	v *= factor
	if v > -config.VelocitySnapThreshold && v < config.VelocitySnapThreshold {
		return 0
	}
	return v
}

// ClampMaxSpeed ограничивает модуль скорости, сохраняя направление.
func (m *Movable) ClampMaxSpeed(maxSpeed float64) {
	speed := m.Velocity.Len()
	if speed > maxSpeed {
		m.Velocity = geom.Vec2{
			X: m.Velocity.X / speed * maxSpeed,
			Y: m.Velocity.Y / speed * maxSpeed,
		}
	}
}

// IntegratePosition сдвигает позицию на velocity*dt. Границы арены здесь не учитываются.
func (m *Movable) IntegratePosition(pos *Position, dt float64) {
	pos.X += m.Velocity.X * dt
	pos.Y += m.Velocity.Y * dt
}

// Speed — текущий модуль скорости.
func (m *Movable) Speed() float64 {
	return m.Velocity.Len()
}
