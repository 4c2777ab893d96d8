package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	events []Event
}

func (l *countingListener) OnEvent(e Event) { l.events = append(l.events, e) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyDestroyed, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyDestroyed, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: EnemyDestroyed})
	d.Dispatch(Event{Type: EnemySunk})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &countingListener{}, &countingListener{}
	d.Subscribe(PlayerHit, a)
	d.Subscribe(PlayerHit, b)
	d.Unsubscribe(PlayerHit, a)

	d.Dispatch(Event{Type: PlayerHit, Data: HitData{HealthLeft: 80}})

	assert.Empty(t, a.events)
	if assert.Len(t, b.events, 1) {
		assert.Equal(t, 80, b.events[0].Data.(HitData).HealthLeft)
	}
}

func TestNilDispatcherDrops(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: MatchEnded}) })
}
