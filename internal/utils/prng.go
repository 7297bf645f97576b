// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-arena/internal/arena"
	"go-arena/pkg/geom"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид (для воспроизведения сессии).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Between возвращает случайное число в [min, max).
func (s *PRNGService) Between(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// PointIn выбирает случайную точку внутри прямоугольника.
func (s *PRNGService) PointIn(r arena.Rect) geom.Vec2 {
	return geom.V(s.Between(r.MinX, r.MaxX), s.Between(r.MinY, r.MaxY))
}

// PointAwayFrom выбирает точку внутри r не ближе minDist к avoid.
// После maxAttempts неудачных попыток возвращает последнюю выбранную точку.
func (s *PRNGService) PointAwayFrom(r arena.Rect, avoid geom.Vec2, minDist float64, maxAttempts int) geom.Vec2 {
	p := s.PointIn(r)
	for i := 1; i < maxAttempts && p.Sub(avoid).Len() < minDist; i++ {
		p = s.PointIn(r)
	}
	return p
}
