// internal/app/clock.go
package app

import (
	"time"

	"go-galaxy-raid/pkg/geom"
)

// FrameDelta возвращает шаг симуляции между двумя отметками времени,
// ограниченный сверху maxDelta. Часы, идущие назад, дают ноль.
func FrameDelta(prev, now time.Time, maxDelta float64) float64 {
	return geom.Clamp(now.Sub(prev).Seconds(), 0, maxDelta)
}
