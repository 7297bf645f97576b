// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 700
	WindowTitle  = "Arena"

	TicksPerSecond = 60
	FixedDeltaTime = 1.0 / TicksPerSecond
	MaxDeltaTime   = 0.06

	// Ниже этого модуля скорость по оси без ввода обнуляется
	VelocitySnapThreshold = 1.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	HUDFontSize = 13
	HUDMarginX  = 10
	HUDMarginY  = 20

	PlayerZ    = 1.0
	EnemyZ     = 1.0
	SightlineZ = 2.0
	WallZ      = 0.0
)

var (
	BackgroundColor = color.RGBA{230, 230, 230, 255}
	WallColor       = color.RGBA{204, 204, 204, 255}
	PlayerColor     = color.RGBA{255, 128, 128, 255}
	EnemyColor      = color.RGBA{255, 128, 128, 255}
	SightlineColor  = color.RGBA{128, 128, 128, 255}
	TextColor       = color.RGBA{20, 20, 30, 255}
	RunningColor    = color.RGBA{70, 130, 180, 220}
	PausedColor     = color.RGBA{220, 60, 60, 220}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	SightlineWidth  = float32(1.0)
)
