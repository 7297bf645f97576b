// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие тика. Data зависит от Type, см. types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher доставляет события синхронно, внутри того же тика,
// в порядке подписки. Подписка живёт столько же, сколько игра.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe подписывает listener сразу на несколько типов событий.
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch рассылает событие. На nil-диспетчере ничего не делает,
// так что системы можно собирать без него.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
