package scroll

import (
	"math"
	"strconv"
)

// Node is a section root that consumes style variables.
type Node interface {
	SetStyleVar(name, value string)
}

// Param is a named animation parameter and its write policy.
type Param struct {
	Name      string
	Precision int
	Threshold float64
	Unit      string
}

func (p Param) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', p.Precision, 64) + p.Unit
}

type Value struct {
	Param Param
	V     float64
}

var (
	HeroScale     = Param{Name: "--hero-scale", Precision: 3, Threshold: 0.001}
	HeroOpacity   = Param{Name: "--hero-opacity", Precision: 3, Threshold: 0.002}
	HeroTranslate = Param{Name: "--hero-translate", Precision: 1, Threshold: 0.5, Unit: "px"}

	FinMindScale     = Param{Name: "--finmind-scale", Precision: 3, Threshold: 0.001}
	FinMindOpacity   = Param{Name: "--finmind-opacity", Precision: 3, Threshold: 0.002}
	FinMindTranslate = Param{Name: "--finmind-translate", Precision: 1, Threshold: 0.5, Unit: "px"}
	FinMindBackdrop  = Param{Name: "--finmind-backdrop", Precision: 3, Threshold: 0.005}
	BridgeOpacity    = Param{Name: "--bridge-opacity", Precision: 3, Threshold: 0.005}

	WorkflowOpacity = Param{Name: "--workflow-opacity", Precision: 3, Threshold: 0.002}
	CapOpacity      = Param{Name: "--cap-opacity", Precision: 3, Threshold: 0.005}

	TechStackOpacity = Param{Name: "--techstack-opacity", Precision: 3, Threshold: 0.002}

	BgAngle       = Param{Name: "--bg-angle", Precision: 2, Threshold: 0.05, Unit: "deg"}
	BgDarkness    = Param{Name: "--bg-darkness", Precision: 3, Threshold: 0.002}
	BgRed         = Param{Name: "--bg-red", Precision: 3, Threshold: 0.002}
	BgReveal      = Param{Name: "--bg-reveal", Precision: 3, Threshold: 0.002}
	BgWordOpacity = Param{Name: "--bg-word-opacity", Precision: 3, Threshold: 0.001}
)

// Writer applies computed parameters to their nodes, skipping values that
// moved less than the parameter's threshold since the last write.
type Writer struct {
	caches map[SectionID]map[string]float64

	Writes  int
	Skipped int
}

func NewWriter() *Writer {
	return &Writer{
		caches: make(map[SectionID]map[string]float64),
	}
}

// Apply returns how many values were written to node.
func (w *Writer) Apply(id SectionID, node Node, values []Value) int {
	if node == nil {
		return 0
	}

	cache, ok := w.caches[id]
	if !ok {
		cache = make(map[string]float64)
		w.caches[id] = cache
	}

	written := 0

	for _, v := range values {
		cached, ok := cache[v.Param.Name]
		if !ok {
			cached = math.NaN()
		}

		// NaN never compares below the threshold so first values always go through
		if math.Abs(v.V-cached) < v.Param.Threshold {
			w.Skipped++
			continue
		}

		node.SetStyleVar(v.Param.Name, v.Param.Format(v.V))
		cache[v.Param.Name] = v.V
		written++
	}

	w.Writes += written

	return written
}

// Cached returns the last value written for a parameter.
func (w *Writer) Cached(id SectionID, name string) (float64, bool) {
	v, ok := w.caches[id][name]
	return v, ok
}

// Forget drops a section's cache so its next values are written unconditionally.
func (w *Writer) Forget(id SectionID) {
	delete(w.caches, id)
}
