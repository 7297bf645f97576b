// internal/arena/arena.go
package arena

import (
	"errors"
	"fmt"

	"go-arena/pkg/geom"
)

// WallLocation — сторона арены, у которой стоит стена.
type WallLocation int

const (
	Left WallLocation = iota
	Right
	Bottom
	Top
)

// Locations перечисляет все стены в порядке создания.
var Locations = []WallLocation{Left, Right, Bottom, Top}

func (l WallLocation) String() string {
	switch l {
	case Left:
		return "left"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	}
	return fmt.Sprintf("WallLocation(%d)", int(l))
}

// Bounds — координаты осевых линий стен и их толщина.
type Bounds struct {
	Left, Right   float64 // x
	Bottom, Top   float64 // y
	WallThickness float64
}

var (
	ErrEmptyWidth  = errors.New("arena: right wall must be to the right of left wall")
	ErrEmptyHeight = errors.New("arena: top wall must be above bottom wall")
)

// Validate проверяет, что арена не вырождена.
func (b Bounds) Validate() error {
	if b.Right-b.Left <= 0 {
		return ErrEmptyWidth
	}
	if b.Top-b.Bottom <= 0 {
		return ErrEmptyHeight
	}
	if b.WallThickness < 0 {
		return fmt.Errorf("arena: negative wall thickness %v", b.WallThickness)
	}
	return nil
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// WallPosition — центр стены.
func (b Bounds) WallPosition(l WallLocation) geom.Vec2 {
	switch l {
	case Left:
		return geom.V(b.Left, 0)
	case Right:
		return geom.V(b.Right, 0)
	case Bottom:
		return geom.V(0, b.Bottom)
	default:
		return geom.V(0, b.Top)
	}
}

// WallSize — размеры стены. Стены удлинены на толщину, чтобы углы были закрыты.
func (b Bounds) WallSize(l WallLocation) geom.Vec2 {
	switch l {
	case Left, Right:
		return geom.V(b.WallThickness, b.Height()+b.WallThickness)
	default:
		return geom.V(b.Width()+b.WallThickness, b.WallThickness)
	}
}

// Rect — прямоугольник, в который должен помещаться центр сущности.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Interior возвращает допустимую область для центра круга радиуса radius.
func (b Bounds) Interior(radius float64) Rect {
	half := b.WallThickness / 2
	return Rect{
		MinX: b.Left + half + radius,
		MaxX: b.Right - half - radius,
		MinY: b.Bottom + half + radius,
		MaxY: b.Top - half - radius,
	}
}

// Clamp возвращает точку внутри области и признак того, что её пришлось сдвинуть.
func (r Rect) Clamp(p geom.Vec2) (geom.Vec2, bool) {
	c := geom.V(geom.ClampF(p.X, r.MinX, r.MaxX), geom.ClampF(p.Y, r.MinY, r.MaxY))
	return c, c != p
}

// Contains — лежит ли точка внутри (включая границу).
func (r Rect) Contains(p geom.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}
