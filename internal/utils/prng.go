// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
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

// Seed возвращает фактически использованный сид (удобно для логов и повторов).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Chance выполняет испытание Бернулли для события с частотой rate (раз в секунду)
// на интервале dt. Вероятность 1-exp(-rate*dt) не зависит от частоты кадров.
func (s *PRNGService) Chance(rate, dt float64) bool {
	if rate <= 0 || dt <= 0 {
		return false
	}
	return s.Float64() < EventProbability(rate, dt)
}

// EventProbability - вероятность хотя бы одного события пуассоновского потока
// с частотой rate за время dt.
func EventProbability(rate, dt float64) float64 {
	return 1 - math.Exp(-rate*dt)
}
