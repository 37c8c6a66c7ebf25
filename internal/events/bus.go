package events

// Listener receives published events.
type Listener func(Event)

// Bus delivers events synchronously to its listeners, in subscription order.
// A nil *Bus discards everything.
type Bus struct {
	listeners []Listener
}

// NewBus creates a bus with the given listeners already subscribed.
func NewBus(listeners ...Listener) *Bus {
	return &Bus{listeners: listeners}
}

// Subscribe adds a listener.
func (b *Bus) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Publish hands e to every listener before returning.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, l := range b.listeners {
		l(e)
	}
}

// Recorder is a Listener that keeps every event it sees.
type Recorder struct {
	Events []Event
}

// Listen records e.
func (r *Recorder) Listen(e Event) {
	r.Events = append(r.Events, e)
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
