package firstx

import (
	"strconv"
	"strings"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

const DefaultHintTimeout = 2 * time.Second

// StyleNode is the root of a section. The scroll engine writes style
// variables into it and the section reads them back when drawing.
type StyleNode struct {
	Name string

	vars map[string]string

	// render hint, like css will-change
	hint      string
	clearHint func()
	detached  bool

	// offscreen layer used to fade and scale the whole section at once
	layer *eb.Image
}

func NewStyleNode(name string) *StyleNode {
	n := new(StyleNode)
	n.Name = name
	n.vars = make(map[string]string)
	return n
}

func (n *StyleNode) SetStyleVar(name, value string) {
	if n.vars[name] == value {
		return
	}
	n.vars[name] = value
	SetRedraw()
}

func (n *StyleNode) StyleVar(name string) (string, bool) {
	v, ok := n.vars[name]
	return v, ok
}

// Float reads a numeric style variable the way var(name, fallback) would.
// Unit suffixes like px or deg are ignored.
func (n *StyleNode) Float(name string, fallback float64) float64 {
	str, ok := n.vars[name]
	if !ok {
		return fallback
	}

	str = strings.TrimSpace(str)
	str = strings.TrimRightFunc(str, func(r rune) bool {
		return r == '%' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	})

	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fallback
	}

	return f
}

// RaiseHint sets a render hint that clears itself after timeout.
// Raising it again restarts the timeout.
func (n *StyleNode) RaiseHint(property string, timeout time.Duration, timeouts *TimeoutQueue) {
	if n.detached {
		return
	}

	if n.clearHint != nil {
		n.clearHint()
	}

	n.hint = property
	n.clearHint = timeouts.SetTimeout(timeout, func() {
		// the node may be gone by the time this fires
		if n.detached {
			return
		}
		n.hint = ""
		n.clearHint = nil
	})
}

// DropHint clears the render hint right away and cancels its timeout.
func (n *StyleNode) DropHint() {
	if n.clearHint != nil {
		n.clearHint()
		n.clearHint = nil
	}
	n.hint = ""
}

func (n *StyleNode) Hint() string {
	return n.hint
}

// Detach marks the node removed from the page.
func (n *StyleNode) Detach() {
	n.DropHint()
	n.ReleaseLayer()
	n.detached = true
}

func (n *StyleNode) Detached() bool {
	return n.detached
}

// Layer returns an offscreen image at least w by h, cleared.
func (n *StyleNode) Layer(w, h int) *eb.Image {
	w = max(w, 1)
	h = max(h, 1)

	if n.layer != nil {
		size := n.layer.Bounds().Size()
		if size.X != w || size.Y != h {
			n.layer.Deallocate()
			n.layer = nil
		}
	}

	if n.layer == nil {
		n.layer = eb.NewImage(w, h)
	} else {
		n.layer.Clear()
	}

	return n.layer
}

func (n *StyleNode) HasLayer() bool {
	return n.layer != nil
}

func (n *StyleNode) ReleaseLayer() {
	if n.layer != nil {
		n.layer.Deallocate()
		n.layer = nil
	}
}
