package firstx

import (
	"math"

	"github.com/charmbracelet/harmonica"
	eb "github.com/hajimehoshi/ebiten/v2"
)

const springRestEpsilon = 0.001

// HoverSpring eases a value between 0 and 1 as a pointer enters and
// leaves something.
type HoverSpring struct {
	Pos    float64
	Vel    float64
	Target float64

	spring harmonica.Spring
}

func NewHoverSpring() *HoverSpring {
	return NewHoverSpringFPS(eb.TPS())
}

func NewHoverSpringFPS(fps int) *HoverSpring {
	s := new(HoverSpring)
	s.spring = harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 7, 0.55)
	return s
}

// Update advances the spring one tick and reports whether it moved.
func (s *HoverSpring) Update() bool {
	if s.AtRest() {
		return false
	}

	s.Pos, s.Vel = s.spring.Update(s.Pos, s.Vel, s.Target)

	if math.Abs(s.Pos-s.Target) < springRestEpsilon && math.Abs(s.Vel) < springRestEpsilon {
		s.Pos = s.Target
		s.Vel = 0
	}

	return true
}

func (s *HoverSpring) AtRest() bool {
	return s.Pos == s.Target && s.Vel == 0
}

// SetHovered moves the target to 1 or 0.
func (s *HoverSpring) SetHovered(hovered bool) {
	if hovered {
		s.Target = 1
	} else {
		s.Target = 0
	}
}
