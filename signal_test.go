package firstx

import "testing"

func TestSignal(t *testing.T) {
	var s Signal[int]
	var a, b []int

	cancelA := s.Listen(func(v int) { a = append(a, v) })
	s.Listen(func(v int) { b = append(b, v) })

	s.Emit(1)
	cancelA()
	cancelA()
	s.Emit(2)

	if len(a) != 1 || a[0] != 1 {
		t.Errorf("a got %v, want [1]", a)
	}
	if len(b) != 2 {
		t.Errorf("b got %v, want [1 2]", b)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSignalCancelWhileEmitting(t *testing.T) {
	var s Signal[struct{}]
	calls := 0

	var cancel func()
	cancel = s.Listen(func(struct{}) {
		calls++
		cancel()
	})
	s.Listen(func(struct{}) { calls++ })

	s.Emit(struct{}{})
	s.Emit(struct{}{})

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
