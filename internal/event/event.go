// internal/event/event.go
package event

// EventType задаёт вид события
type EventType string

// Event доставляется синхронно всем подписчикам своего типа
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc превращает обычную функцию в Listener
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher раздаёт события подписчикам. Вызывается только из игрового
// цикла, не потокобезопасен.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe снимает первую подписку listener на eventType.
// ListenerFunc сравнить нельзя, такие подписки остаются навсегда.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			kept := make([]Listener, 0, len(listeners)-1)
			kept = append(kept, listeners[:i]...)
			d.listeners[eventType] = append(kept, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch доставляет событие в порядке подписки. nil-диспетчер молча
// отбрасывает события
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
