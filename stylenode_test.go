package firstx

import (
	"testing"
	"time"
)

func TestStyleNodeFloat(t *testing.T) {
	n := NewStyleNode("test")
	n.SetStyleVar("--plain", "0.420")
	n.SetStyleVar("--px", "140.0px")
	n.SetStyleVar("--deg", "12.50deg")
	n.SetStyleVar("--percent", "35%")
	n.SetStyleVar("--negative", "-60.0px")
	n.SetStyleVar("--spaced", " 1.000 ")
	n.SetStyleVar("--garbage", "auto")

	tests := []struct {
		name     string
		fallback float64
		want     float64
	}{
		{"--plain", 0, 0.42},
		{"--px", 0, 140},
		{"--deg", 0, 12.5},
		{"--percent", 0, 35},
		{"--negative", 0, -60},
		{"--spaced", 0, 1},
		{"--garbage", 7, 7},
		{"--missing", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Float(tt.name, tt.fallback); got != tt.want {
				t.Errorf("Float(%q, %v) = %v, want %v", tt.name, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestStyleNodeSetStyleVarRedraw(t *testing.T) {
	n := NewStyleNode("test")

	redraw = false
	n.SetStyleVar("--a", "1")
	if !redraw {
		t.Errorf("new value did not ask for a redraw")
	}

	redraw = false
	n.SetStyleVar("--a", "1")
	if redraw {
		t.Errorf("same value asked for a redraw")
	}
}

func TestStyleNodeHintTimeout(t *testing.T) {
	var timeouts TimeoutQueue
	n := NewStyleNode("test")

	n.RaiseHint("transform", 2*time.Second, &timeouts)
	if n.Hint() != "transform" {
		t.Fatalf("hint = %q after raise", n.Hint())
	}

	timeouts.Advance(1 * time.Second)
	if n.Hint() != "transform" {
		t.Fatalf("hint cleared early")
	}

	// raising again restarts the timer
	n.RaiseHint("transform", 2*time.Second, &timeouts)
	timeouts.Advance(2500 * time.Millisecond)
	if n.Hint() != "transform" {
		t.Fatalf("hint cleared by the first timeout")
	}
	if timeouts.Pending() != 1 {
		t.Fatalf("pending timeouts = %d, want 1", timeouts.Pending())
	}

	timeouts.Advance(3 * time.Second)
	if n.Hint() != "" {
		t.Errorf("hint = %q after timeout", n.Hint())
	}
}

func TestStyleNodeDropHint(t *testing.T) {
	var timeouts TimeoutQueue
	n := NewStyleNode("test")

	n.RaiseHint("transform", time.Second, &timeouts)
	n.DropHint()

	if n.Hint() != "" {
		t.Errorf("hint = %q after drop", n.Hint())
	}
	if timeouts.Pending() != 0 {
		t.Errorf("drop left %d timeouts pending", timeouts.Pending())
	}
}

func TestStyleNodeDetach(t *testing.T) {
	var timeouts TimeoutQueue
	n := NewStyleNode("test")

	n.RaiseHint("transform", time.Second, &timeouts)
	n.Detach()

	if !n.Detached() {
		t.Fatalf("not detached")
	}
	if n.Hint() != "" || timeouts.Pending() != 0 {
		t.Errorf("detach kept hint %q with %d timeouts", n.Hint(), timeouts.Pending())
	}

	n.RaiseHint("transform", time.Second, &timeouts)
	if n.Hint() != "" {
		t.Errorf("detached node took a hint")
	}

	// a timeout firing after detach must not touch the node
	timeouts.Advance(time.Hour)
}
