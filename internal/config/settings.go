// internal/config/settings.go
package config

import (
	"errors"
	"fmt"

	"go-arena/internal/arena"
)

// Tunables — параметры движения для одного вида сущностей.
type Tunables struct {
	Acceleration float64 `yaml:"acceleration"` // ед/с²
	MaxSpeed     float64 `yaml:"max_speed"`    // ед/с
	Damping      float64 `yaml:"damping"`      // 1/с, применяется к осям без ввода
}

// Validate отклоняет отрицательные значения.
func (t Tunables) Validate() error {
	if t.Acceleration < 0 {
		return fmt.Errorf("acceleration must be >= 0, got %v", t.Acceleration)
	}
	if t.MaxSpeed < 0 {
		return fmt.Errorf("max_speed must be >= 0, got %v", t.MaxSpeed)
	}
	if t.Damping < 0 {
		return fmt.Errorf("damping must be >= 0, got %v", t.Damping)
	}
	return nil
}

// ArenaSettings — геометрия стен.
type ArenaSettings struct {
	LeftWall      float64 `yaml:"left_wall"`
	RightWall     float64 `yaml:"right_wall"`
	BottomWall    float64 `yaml:"bottom_wall"`
	TopWall       float64 `yaml:"top_wall"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Bounds переводит настройки в геометрию арены.
func (a ArenaSettings) Bounds() arena.Bounds {
	return arena.Bounds{
		Left:          a.LeftWall,
		Right:         a.RightWall,
		Bottom:        a.BottomWall,
		Top:           a.TopWall,
		WallThickness: a.WallThickness,
	}
}

// Point — точка в мировых координатах.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerSettings — стартовое состояние и движение игрока.
type PlayerSettings struct {
	Start    Point    `yaml:"start"`
	Diameter float64  `yaml:"diameter"`
	Movement Tunables `yaml:"movement"`
}

// EnemySettings — общие параметры врагов и их стартовые точки.
type EnemySettings struct {
	Spawns      []Point  `yaml:"spawns"`
	RandomCount int      `yaml:"random_count"`
	Diameter    float64  `yaml:"diameter"`
	Movement    Tunables `yaml:"movement"`
}

// SightlineSettings — линия прицела.
type SightlineSettings struct {
	Enabled   bool    `yaml:"enabled"`
	MaxLength float64 `yaml:"max_length"`
}

// Settings — всё, что можно переопределить YAML-файлом.
type Settings struct {
	Arena     ArenaSettings     `yaml:"arena"`
	Player    PlayerSettings    `yaml:"player"`
	Enemy     EnemySettings     `yaml:"enemy"`
	Sightline SightlineSettings `yaml:"sightline"`
	Seed      int64             `yaml:"seed"`
}

// Validate проверяет настройки целиком.
func (s *Settings) Validate() error {
	var errs []error
	if err := s.Arena.Bounds().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := s.Player.Movement.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := s.Enemy.Movement.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("enemy: %w", err))
	}
	if s.Player.Diameter <= 0 {
		errs = append(errs, fmt.Errorf("player: diameter must be > 0, got %v", s.Player.Diameter))
	}
	if s.Enemy.Diameter <= 0 {
		errs = append(errs, fmt.Errorf("enemy: diameter must be > 0, got %v", s.Enemy.Diameter))
	}
	if s.Enemy.RandomCount < 0 {
		errs = append(errs, fmt.Errorf("enemy: random_count must be >= 0, got %d", s.Enemy.RandomCount))
	}
	if s.Sightline.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("sightline: max_length must be >= 0, got %v", s.Sightline.MaxLength))
	}
	return errors.Join(errs...)
}

// DefaultSettings — захардкоженные значения на случай, если встроенный YAML не разобрался.
func DefaultSettings() Settings {
	return Settings{
		Arena: ArenaSettings{
			LeftWall:      -450,
			RightWall:     450,
			BottomWall:    -300,
			TopWall:       300,
			WallThickness: 10,
		},
		Player: PlayerSettings{
			Start:    Point{X: 0, Y: 0},
			Diameter: 50,
			Movement: Tunables{Acceleration: 600, MaxSpeed: 400, Damping: 2.0},
		},
		Enemy: EnemySettings{
			Spawns:   []Point{{X: 200, Y: 200}},
			Diameter: 40,
			Movement: Tunables{Acceleration: 400, MaxSpeed: 250, Damping: 2.0},
		},
		Sightline: SightlineSettings{
			Enabled:   true,
			MaxLength: 200,
		},
	}
}
