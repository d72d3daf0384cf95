// internal/component/formation.go
package component

// Formation - общее смещение строя. Используется только при отрисовке
// и никогда не участвует в расчёте столкновений.
type Formation struct {
	Dir     float64 // +1 вправо, -1 влево
	OffsetX float64
	OffsetY float64
	Clock   float64 // накопленное время для покачивания
}

// Reset возвращает строй в исходное положение.
func (f *Formation) Reset() {
	*f = Formation{Dir: 1}
}
