// internal/component/sightline.go
package component

import (
	"go-arena/internal/types"
	"go-arena/pkg/geom"
)

// Sightline — линия прицела, дочерняя к игроку. Сама ничего не двигает.
type Sightline struct {
	ParentID  types.EntityID
	MaxLength float64

	// Угол и длина в системе координат игрока; без курсора сохраняются
	Angle  float64
	Length float64
	// Концы линии в мире, пересчитываются от позиции игрока каждый тик
	Start     geom.Vec2
	End       geom.Vec2
	HasCursor bool // Был ли хоть раз известен курсор
}
