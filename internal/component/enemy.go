// internal/component/enemy.go
package component

import "go-arena/internal/types"

// Enemy — преследователь. TargetID указывает, за кем он гонится.
type Enemy struct {
	Diameter float64
	TargetID types.EntityID
	// TargetLost выставляется, пока цели нет, чтобы событие ушло только один раз
	TargetLost bool
}
