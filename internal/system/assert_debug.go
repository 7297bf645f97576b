//go:build debug

// internal/system/assert_debug.go
package system

import (
	"fmt"

	"go-arena/internal/types"
	"go-arena/pkg/geom"
)

// assertFinite падает, если в состояние попал NaN или бесконечность.
// Включается сборкой с -tags debug.
func assertFinite(id types.EntityID, what string, v geom.Vec2) {
	if !v.IsFinite() {
		panic(fmt.Sprintf("entity %d: non-finite %s %v", id, what, v))
	}
}
