package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	seen []EventType
}

func (c *counter) OnEvent(e Event) {
	c.seen = append(c.seen, e.Type)
}

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyHit, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyHit, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: EnemyHit})
	d.Dispatch(Event{Type: PlayerHit})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubscribeAllAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	c := &counter{}
	d.SubscribeAll(c, WaveCleared, GameOver)

	d.Dispatch(Event{Type: WaveCleared, Data: WaveData{Wave: 2, Cols: 10, Rows: 5}})
	d.Dispatch(Event{Type: GameOver})
	d.Unsubscribe(GameOver, c)
	d.Dispatch(Event{Type: GameOver})

	assert.Equal(t, []EventType{WaveCleared, GameOver}, c.seen)
}
