// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие с необязательной нагрузкой
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. It is not safe for concurrent use; everything runs on
// the ebiten update loop.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for every given event type.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe removes listener from every given event type. Listeners must be
// comparable (pointer receivers).
func (d *Dispatcher) Unsubscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		current := d.listeners[t]
		kept := current[:0]
		for _, l := range current {
			if l != listener {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			delete(d.listeners, t)
			continue
		}
		d.listeners[t] = kept
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Listeners reports how many listeners are subscribed to t.
func (d *Dispatcher) Listeners(t EventType) int {
	return len(d.listeners[t])
}
