// internal/render/render.go
package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-arena/internal/config"
	"go-arena/internal/entity"
	"go-arena/internal/input"
	"go-arena/internal/system"
	"go-arena/internal/types"
	"go-arena/pkg/geom"
)

// RenderSystem рисует сцену: стены, круги сущностей и линию прицела.
type RenderSystem struct {
	ecs    *entity.ECS
	face   text.Face
	width  float64
	height float64
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{
		ecs:    ecs,
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  config.ScreenWidth,
		height: config.ScreenHeight,
	}
}

func (s *RenderSystem) toScreen(p geom.Vec2) (float32, float32) {
	sp := input.WorldToScreen(p, s.width, s.height)
	return float32(sp.X), float32(sp.Y)
}

// Draw рисует всё, что есть в ECS.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	// Стены: центр и размеры в мировых единицах, ось Y вверх
	for _, id := range entity.SortedIDs(s.ecs.Walls) {
		wall := s.ecs.Walls[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := s.toScreen(geom.V(pos.X-wall.Width/2, pos.Y+wall.Height/2))
		vector.DrawFilledRect(screen, x, y, float32(wall.Width), float32(wall.Height), wall.Color, false)
	}

	// Круги в порядке глубины
	ids := entity.SortedIDs(s.ecs.Renderables)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.depth(ids[i]) < s.depth(ids[j])
	})
	for _, id := range ids {
		r := s.ecs.Renderables[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := s.toScreen(pos.Vec())
		vector.DrawFilledCircle(screen, x, y, r.Radius, r.Color, true)
	}

	// Линия прицела поверх всего
	for _, line := range s.ecs.Sightlines {
		if !line.HasCursor || line.Length == 0 {
			continue
		}
		x0, y0 := s.toScreen(line.Start)
		x1, y1 := s.toScreen(line.End)
		vector.StrokeLine(screen, x0, y0, x1, y1, config.SightlineWidth, config.SightlineColor, true)
	}
}

func (s *RenderSystem) depth(id types.EntityID) float64 {
	if pos, ok := s.ecs.Positions[id]; ok {
		return pos.Z
	}
	return 0
}

// HUD — данные для строки состояния.
type HUD struct {
	Speed    float64
	Position geom.Vec2
	Tick     int
	Stats    system.Stats
	Paused   bool
}

// DrawHUD выводит скорость, позицию и подсказки по управлению.
func (s *RenderSystem) DrawHUD(screen *ebiten.Image, hud HUD) {
	lines := []string{
		fmt.Sprintf("speed %5.1f  pos (%6.1f, %6.1f)  tick %d", hud.Speed, hud.Position.X, hud.Position.Y, hud.Tick),
		fmt.Sprintf("distance %.0f  peak %.0f  wall hits %d", hud.Stats.PlayerDistance, hud.Stats.PeakSpeed, hud.Stats.WallHits),
		"WASD/arrows move  P/Esc pause  R reset",
	}
	if hud.Paused {
		lines = append(lines, "PAUSED")
	}
	s.drawLines(screen, lines, config.HUDMarginX, config.HUDMarginY, config.TextColor)
}

func (s *RenderSystem) drawLines(screen *ebiten.Image, lines []string, x, y float64, c color.Color) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i*(config.HUDFontSize+4))-config.HUDFontSize)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, line, s.face, op)
	}
}

// DrawCentered выводит одну строку по центру экрана (меню, пауза).
func (s *RenderSystem) DrawCentered(screen *ebiten.Image, msg string, c color.Color) {
	w, _ := text.Measure(msg, s.face, 0)
	s.drawLines(screen, []string{msg}, (s.width-w)/2, s.height/2, c)
}
