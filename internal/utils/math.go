// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// QuadBezier возвращает точку квадратичной кривой Безье с опорной точкой ctrl.
// При t == 1 результат ровно равен end, при t == 0 - ровно start.
func QuadBezier(start, ctrl, end, t float64) float64 {
	if t >= 1 {
		return end
	}
	if t <= 0 {
		return start
	}
	// де Кастельжо: интерполяция между двумя линейными отрезками
	return Lerp(Lerp(start, ctrl, t), Lerp(ctrl, end, t), t)
}

// Normalize возвращает единичный вектор направления (dx, dy).
// Нулевой вектор даёт (0, 1): стреляем вниз.
func Normalize(dx, dy float64) (float64, float64) {
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 0, 1
	}
	return dx / mag, dy / mag
}
