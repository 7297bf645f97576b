// internal/input/input.go
package input

import "go-arena/pkg/geom"

// Snapshot — состояние ввода на один тик. Заполняется платформенным слоем
// и передаётся в системы явно, без глобального состояния.
type Snapshot struct {
	Up, Down, Left, Right bool

	Cursor    geom.Vec2 // Экранные пиксели, ось Y вниз
	HasCursor bool
}

// Raw собирает вектор из четырёх сигналов: каждый даёт ±1 по своей оси,
// противоположные взаимно гасятся.
func (s Snapshot) Raw() geom.Vec2 {
	var d geom.Vec2
	if s.Up {
		d.Y += 1
	}
	if s.Down {
		d.Y -= 1
	}
	if s.Left {
		d.X -= 1
	}
	if s.Right {
		d.X += 1
	}
	return d
}

// Direction — желаемое направление игрока: единичный вектор или ноль.
func (s Snapshot) Direction() geom.Vec2 {
	return s.Raw().NormalizeOrZero()
}

// ScreenToWorld переводит экранные координаты курсора в мировые
// (начало координат в центре экрана, ось Y вверх).
func ScreenToWorld(p geom.Vec2, screenW, screenH float64) geom.Vec2 {
	return geom.V(p.X-screenW/2, screenH/2-p.Y)
}

// WorldToScreen — обратное преобразование.
func WorldToScreen(p geom.Vec2, screenW, screenH float64) geom.Vec2 {
	return geom.V(p.X+screenW/2, screenH/2-p.Y)
}
