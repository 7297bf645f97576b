//go:build !debug

// internal/system/assert_release.go
package system

import (
	"go-arena/internal/types"
	"go-arena/pkg/geom"
)

func assertFinite(types.EntityID, string, geom.Vec2) {}
