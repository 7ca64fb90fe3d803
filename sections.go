package firstx

import (
	"math"
	"time"
)

const (
	contentMaxWidth = 1120
	contentPadding  = 32
)

// ContentColumn is the centered column sections lay their content in.
func ContentColumn(rect FRectangle) FRectangle {
	width := min(rect.Dx()-contentPadding*2, contentMaxWidth)
	width = max(width, 0)
	x := rect.Min.X + (rect.Dx()-width)*0.5
	return FRect(x, rect.Min.Y, x+width, rect.Max.Y)
}

// StickyY keeps a block of height h centered in the viewport
// while it still fits inside the section rect.
func StickyY(rect FRectangle, viewportHeight, h float64) float64 {
	y := viewportHeight*0.5 - h*0.5
	return Clamp(y, rect.Min.Y, max(rect.Min.Y, rect.Max.Y-h))
}

// Reveal is a one shot css like transition from hidden to shown.
type Reveal struct {
	Shown   bool
	ShownAt time.Duration
}

const revealDuration = 600 * time.Millisecond

func (r *Reveal) Show() {
	if r.Shown {
		return
	}
	r.Shown = true
	r.ShownAt = GlobalTimerNow()
	SetRedraw()
}

// Progress is the eased transition progress in [0, 1].
func (r *Reveal) Progress() float64 {
	if !r.Shown {
		return 0
	}
	t := f64(TimeSinceNow(r.ShownAt)) / f64(revealDuration)
	t = Clamp(t, 0, 1)
	// ease-out cubic
	return 1 - math.Pow(1-t, 3)
}

func (r *Reveal) Animating() bool {
	return r.Shown && TimeSinceNow(r.ShownAt) < revealDuration
}
