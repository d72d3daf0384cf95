// internal/component/movement.go
package component

import "go-galaxy-raid/pkg/geom"

// Position - центр сущности
type Position struct {
	X, Y float64
}

// Velocity - скорость в пикселях в секунду
type Velocity struct {
	VX, VY float64
}

// Size - полные ширина и высота хитбокса
type Size struct {
	W, H float64
}

// Bounds возвращает прямоугольник хитбокса с центром в p.
func Bounds(p Position, s Size) geom.Rect {
	return geom.RectFromCenter(p.X, p.Y, s.W, s.H)
}
