package scroll

import "math"

type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// State is the scroll record shared by the sampler and the tick loop.
//
// Only the sampler writes Target and only the tick loop writes Current.
type State struct {
	Target    float64
	Current   float64
	Direction Direction
}

func NewState(offset float64) State {
	return State{
		Target:    offset,
		Current:   offset,
		Direction: Forward,
	}
}

// Sample stores a new scroll offset as the target.
// It reports false when offset is within epsilon of the current target.
func (s *State) Sample(offset, epsilon float64) bool {
	delta := offset - s.Target
	if math.Abs(delta) < epsilon {
		return false
	}

	s.Target = offset
	s.Direction = directionOf(delta, s.Direction)

	return true
}

// Step moves Current toward Target by damping times the remaining gap.
// Once the gap is below epsilon Current snaps to Target and Step reports false.
func (s *State) Step(damping, epsilon float64) bool {
	diff := s.Target - s.Current
	if math.Abs(diff) < epsilon {
		s.Current = s.Target
		return false
	}

	s.Current += diff * damping
	s.Direction = directionOf(diff, s.Direction)

	return true
}

func (s *State) Converged(epsilon float64) bool {
	return math.Abs(s.Target-s.Current) < epsilon
}

func directionOf(delta float64, prev Direction) Direction {
	if delta > 0 {
		return Forward
	} else if delta < 0 {
		return Backward
	}
	return prev
}
