// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the event marker type and a synchronous
// subscription list used to announce state changes.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Handler receives events in the order they are emitted.
type Handler func(e Event)

// Subscribers is a list of Handlers. The zero value is an empty list
// ready to use. Subscribers is not safe for concurrent use.
type Subscribers struct {
	next     int
	handlers []subscription
}

type subscription struct {
	id int
	h  Handler
}

// Subscribe adds h to the list and returns a function that removes it.
// Calling the returned function more than once has no effect.
func (s *Subscribers) Subscribe(h Handler) (cancel func()) {
	if h == nil {
		return func() {}
	}
	s.next++
	id := s.next
	// Copy on write so that an Emit in progress keeps its snapshot.
	hs := make([]subscription, len(s.handlers), len(s.handlers)+1)
	copy(hs, s.handlers)
	s.handlers = append(hs, subscription{id: id, h: h})
	return func() { s.remove(id) }
}

func (s *Subscribers) remove(id int) {
	for i, sub := range s.handlers {
		if sub.id != id {
			continue
		}
		hs := make([]subscription, 0, len(s.handlers)-1)
		hs = append(hs, s.handlers[:i]...)
		s.handlers = append(hs, s.handlers[i+1:]...)
		return
	}
}

// Len returns the number of subscribed handlers.
func (s *Subscribers) Len() int {
	return len(s.handlers)
}

// Emit delivers e to every handler subscribed when Emit is called.
// Handlers added or removed by a handler take effect from the next Emit.
func (s *Subscribers) Emit(e Event) {
	for _, sub := range s.handlers {
		sub.h(e)
	}
}
