package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-galaxy-raid/internal/component"
)

// DefaultHoldWindow - сколько клавиша считается удержанной после последнего
// нажатия. Терминал не присылает отпускание клавиш, только автоповтор.
const DefaultHoldWindow = 250 * time.Millisecond

type key int

const (
	keyLeft key = iota
	keyRight
	keyUp
	keyDown
	keyFire
	keyCount
)

// KeyState превращает поток нажатий терминала в component.Intent.
type KeyState struct {
	HoldWindow time.Duration
	lastSeen   [keyCount]time.Time
	pause      bool
}

func NewKeyState() *KeyState {
	return &KeyState{HoldWindow: DefaultHoldWindow}
}

// Press регистрирует нажатие. Возвращает false, если клавиша не игровая.
func (k *KeyState) Press(ev *tcell.EventKey, at time.Time) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.lastSeen[keyLeft] = at
	case tcell.KeyRight:
		k.lastSeen[keyRight] = at
	case tcell.KeyUp:
		k.lastSeen[keyUp] = at
	case tcell.KeyDown:
		k.lastSeen[keyDown] = at
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.lastSeen[keyFire] = at
		case 'p', 'P':
			k.pause = true
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Intent возвращает клавиши, удерживаемые на момент now. Пауза отдаётся
// один раз на каждое нажатие.
func (k *KeyState) Intent(now time.Time) component.Intent {
	held := func(i key) bool {
		t := k.lastSeen[i]
		return !t.IsZero() && now.Sub(t) <= k.HoldWindow
	}
	in := component.Intent{
		Left:  held(keyLeft),
		Right: held(keyRight),
		Up:    held(keyUp),
		Down:  held(keyDown),
		Fire:  held(keyFire),
		Pause: k.pause,
	}
	k.pause = false
	return in
}

// Clear забывает все нажатия.
func (k *KeyState) Clear() {
	*k = KeyState{HoldWindow: k.HoldWindow}
}
