package scroll

import "slices"

// Entry is what visibility observers receive.
type Entry struct {
	ID     SectionID
	Active bool
	Ratio  float64
}

// IsNearViewport reports whether [top, bottom] intersects the viewport
// grown by margin*viewportHeight on both sides.
func IsNearViewport(top, bottom, viewportHeight, margin float64) bool {
	bandTop := -margin * viewportHeight
	bandBottom := (1 + margin) * viewportHeight

	return bottom >= bandTop && top <= bandBottom
}

// IntersectionRatio is the fraction of [top, bottom] inside the viewport.
func IntersectionRatio(top, bottom, viewportHeight float64) float64 {
	height := bottom - top
	if height <= 0 {
		return 0
	}

	visible := min(bottom, viewportHeight) - max(top, 0)
	if visible <= 0 {
		return 0
	}

	return Clamp(visible/height, 0, 1)
}

type visibilityObserver struct {
	id int
	fn func(Entry)
}

// Tracker keeps the activity flag of every section it was told about.
type Tracker struct {
	margin     float64
	thresholds []float64

	flags   map[SectionID]bool
	ratios  map[SectionID]float64
	buckets map[SectionID]int

	observers     []visibilityObserver
	observerIdMax int
}

func NewTracker(margin float64, thresholds []float64) *Tracker {
	t := new(Tracker)
	t.margin = margin
	t.thresholds = slices.Clone(thresholds)
	slices.Sort(t.thresholds)
	t.flags = make(map[SectionID]bool)
	t.ratios = make(map[SectionID]float64)
	t.buckets = make(map[SectionID]int)
	return t
}

// AddThresholds lets observers that care about other ratios be notified too.
func (t *Tracker) AddThresholds(thresholds ...float64) {
	for _, th := range thresholds {
		if !slices.Contains(t.thresholds, th) {
			t.thresholds = append(t.thresholds, th)
		}
	}
	slices.Sort(t.thresholds)
}

// Observe registers fn for flag flips and threshold crossings.
// The returned cancel func is safe to call more than once.
func (t *Tracker) Observe(fn func(Entry)) (cancel func()) {
	t.observerIdMax++
	id := t.observerIdMax

	t.observers = append(t.observers, visibilityObserver{id: id, fn: fn})

	return func() {
		t.observers = slices.DeleteFunc(t.observers, func(o visibilityObserver) bool {
			return o.id == id
		})
	}
}

// Update records a section's viewport span and reports whether it just
// became active.
func (t *Tracker) Update(id SectionID, top, bottom, viewportHeight float64) bool {
	return t.set(id,
		IsNearViewport(top, bottom, viewportHeight, t.margin),
		IntersectionRatio(top, bottom, viewportHeight),
	)
}

// UpdateScrolling is Update for a page that is drawn at drawnY while the
// host already scrolled to targetY. The section is active if it is near the
// viewport at either offset. The ratio is measured where it is drawn.
func (t *Tracker) UpdateScrolling(id SectionID, g Geometry, drawnY, targetY float64) bool {
	vh := g.ViewportHeight

	top, bottom := g.ViewportSpan(drawnY)
	active := IsNearViewport(top, bottom, vh, t.margin)
	ratio := IntersectionRatio(top, bottom, vh)

	if !active {
		top, bottom = g.ViewportSpan(targetY)
		active = IsNearViewport(top, bottom, vh, t.margin)
	}

	return t.set(id, active, ratio)
}

func (t *Tracker) set(id SectionID, active bool, ratio float64) bool {
	bucket := t.bucketOf(ratio)

	prevActive, seen := t.flags[id]
	prevBucket := t.buckets[id]

	t.flags[id] = active
	t.ratios[id] = ratio
	t.buckets[id] = bucket

	if !seen || prevActive != active || prevBucket != bucket {
		t.notify(Entry{ID: id, Active: active, Ratio: ratio})
	}

	return active && (!seen || !prevActive)
}

func (t *Tracker) Active(id SectionID) bool {
	return t.flags[id]
}

func (t *Tracker) Ratio(id SectionID) float64 {
	return t.ratios[id]
}

// Forget makes a section inactive, as if it was never observed.
func (t *Tracker) Forget(id SectionID) {
	delete(t.flags, id)
	delete(t.ratios, id)
	delete(t.buckets, id)
}

func (t *Tracker) Reset() {
	clear(t.flags)
	clear(t.ratios)
	clear(t.buckets)
	t.observers = nil
}

// bucketOf returns how many thresholds ratio has reached.
// A zero threshold only counts once something is actually visible.
func (t *Tracker) bucketOf(ratio float64) int {
	bucket := 0
	for _, th := range t.thresholds {
		if ratio > th || (th > 0 && ratio == th) {
			bucket++
		}
	}
	return bucket
}

func (t *Tracker) notify(e Entry) {
	// observers may cancel themselves while being notified
	observers := slices.Clone(t.observers)
	for _, o := range observers {
		o.fn(e)
	}
}
