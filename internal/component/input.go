// internal/component/input.go
package component

// Intent - логические клавиши, удерживаемые в текущем кадре.
// Источник (ebiten, терминал, тест) не важен.
type Intent struct {
	Left, Right, Up, Down bool
	Fire                  bool
	Pause                 bool
}
