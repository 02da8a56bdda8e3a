package joystick

import (
	"sync"
)

// Bus fans events out to any number of subscribers. A subscriber that falls
// behind loses events rather than stalling the frame loop.
type Bus[I comparable] struct {
	mu     sync.Mutex
	subs   map[int]chan Event[I]
	nextID int
	closed bool
}

func NewBus[I comparable]() *Bus[I] {
	return &Bus[I]{subs: map[int]chan Event[I]{}}
}

// Subscribe returns a channel of events and a function that cancels the
// subscription and closes the channel.
func (b *Bus[I]) Subscribe(buffer int) (<-chan Event[I], func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event[I], buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
}

// Publish delivers events to every subscriber without blocking. It returns
// how many deliveries were dropped because a subscriber's buffer was full.
func (b *Bus[I]) Publish(events []Event[I]) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	dropped := 0
	for _, ch := range b.subs {
		for _, ev := range events {
			select {
			case ch <- ev:
			default:
				dropped++
			}
		}
	}
	return dropped
}

// Close closes every subscriber channel. Later publishes do nothing.
func (b *Bus[I]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
