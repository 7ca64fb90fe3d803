package firstx

import "testing"

func TestHoverSpringSettles(t *testing.T) {
	s := NewHoverSpringFPS(60)

	if s.Update() {
		t.Fatalf("spring at rest moved")
	}

	s.SetHovered(true)

	peak := 0.0
	steps := 0
	for ; steps < 600 && s.Update(); steps++ {
		peak = max(peak, s.Pos)
	}

	if !s.AtRest() {
		t.Fatalf("spring still moving after %d steps", steps)
	}
	if s.Pos != 1 {
		t.Errorf("settled at %v, want 1", s.Pos)
	}
	// under damped, so it overshoots a little
	if peak <= 1 || peak > 1.3 {
		t.Errorf("peak = %v, want a small overshoot", peak)
	}

	s.SetHovered(false)
	for steps = 0; steps < 600 && s.Update(); steps++ {
	}
	if s.Pos != 0 || !s.AtRest() {
		t.Errorf("did not return to rest: pos %v vel %v", s.Pos, s.Vel)
	}
}
