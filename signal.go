package firstx

import "slices"

type signalListener[T any] struct {
	id int
	fn func(T)
}

// Signal is a list of listeners. Listeners added or removed while
// emitting take effect from the next Emit.
type Signal[T any] struct {
	listeners []signalListener[T]
	idMax     int
}

// Listen adds fn. The returned cancel func can be called any number of times.
func (s *Signal[T]) Listen(fn func(T)) (cancel func()) {
	s.idMax++
	id := s.idMax

	s.listeners = append(s.listeners, signalListener[T]{id: id, fn: fn})

	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(l signalListener[T]) bool {
			return l.id == id
		})
	}
}

func (s *Signal[T]) Emit(v T) {
	listeners := slices.Clone(s.listeners)
	for _, l := range listeners {
		l.fn(v)
	}
}

func (s *Signal[T]) Len() int {
	return len(s.listeners)
}
