// internal/component/wall.go
package component

import (
	"image/color"

	"go-arena/internal/arena"
)

// Wall — статичная стена арены. Размер хранится в мировых единицах.
type Wall struct {
	Location arena.WallLocation
	Width    float64
	Height   float64
	Color    color.RGBA
}
