package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-galaxy-raid/internal/app"
	"go-galaxy-raid/internal/scene"
)

// FrameInterval - период кадра терминального цикла (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// Frontend связывает tcell-экран с игрой. Все методы вызываются из одной
// горутины: Run читает события из канала, а не из PollEvent напрямую.
type Frontend struct {
	game     *app.Game
	screen   tcell.Screen
	keys     *KeyState
	builder  *scene.Builder
	renderer *Renderer
}

func NewFrontend(game *app.Game, screen tcell.Screen) *Frontend {
	return &Frontend{
		game:     game,
		screen:   screen,
		keys:     NewKeyState(),
		builder:  scene.NewBuilder(scene.DefaultPalette()),
		renderer: NewRenderer(screen),
	}
}

// HandleEvent обрабатывает событие терминала. Возвращает false, если
// игрок попросил выйти.
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyEnter:
			f.game.Start()
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			f.game.Reset()
			f.keys.Clear()
		default:
			f.keys.Press(ev, now)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// Tick продвигает игру до now и перерисовывает экран.
func (f *Frontend) Tick(now time.Time) {
	f.game.Frame(now, f.keys.Intent(now))
	f.renderer.Draw(f.builder.Build(f.game.World))
}

// Run крутит цикл кадров до выхода игрока или отмены ctx.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				// экран закрыт через Fini
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	f.Tick(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			f.Tick(now)
		}
	}
}
